package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/supporttools/homedash/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file and exit",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	loader := config.NewLoader(flagConfig)

	raw, err := os.ReadFile(loader.Path())
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", loader.Path(), err)
	}

	cfg, err := config.Parse(raw)
	if err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			fmt.Fprintf(os.Stderr, "%s: %d problem(s)\n", loader.Path(), len(verrs))
			for _, ve := range verrs {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", ve.Path, ve.Message)
			}
			return fmt.Errorf("configuration is invalid")
		}
		return err
	}

	fmt.Printf("%s is valid: %d section(s), %d widget(s)\n", loader.Path(), len(cfg.Sections), len(cfg.Widgets))
	return nil
}
