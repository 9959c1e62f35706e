package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/supporttools/homedash/pkg/config"
	"github.com/supporttools/homedash/pkg/healthcheck"
)

var checkLinksCmd = &cobra.Command{
	Use:   "check-links",
	Short: "Probe every configured link once and print the results",
	RunE:  runCheckLinks,
}

func init() {
	rootCmd.AddCommand(checkLinksCmd)
}

func runCheckLinks(cmd *cobra.Command, args []string) error {
	loader := config.NewLoader(flagConfig)
	if err := loader.Load(); err != nil {
		return err
	}
	cfg := loader.Config()

	urls := healthcheck.ExtractURLs(cfg)
	if len(urls) == 0 {
		fmt.Println("No links to check")
		return nil
	}

	checker := healthcheck.NewChecker(cfg.Display.HealthCheck.TimeoutDuration())
	results := checker.CheckAll(context.Background(), urls)

	failed := 0
	for _, url := range urls {
		r := results[url]
		switch r.Status {
		case healthcheck.StatusHealthy:
			fmt.Printf("  ok    %-50s %4dms\n", url, r.ResponseTime)
		default:
			failed++
			detail := r.Error
			if detail == "" {
				detail = fmt.Sprintf("HTTP %d", r.StatusCode)
			}
			fmt.Printf("  FAIL  %-50s %s\n", url, detail)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d link(s) unhealthy", failed, len(urls))
	}
	fmt.Printf("All %d link(s) healthy\n", len(urls))
	return nil
}
