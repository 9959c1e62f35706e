package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/supporttools/homedash/pkg/config"
	"github.com/supporttools/homedash/pkg/healthcheck"
	"github.com/supporttools/homedash/pkg/logger"
	"github.com/supporttools/homedash/pkg/server"
)

var (
	flagBind  string
	flagPort  int
	flagWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagBind, "bind", "0.0.0.0", "address to bind")
	serveCmd.Flags().IntVar(&flagPort, "port", 8080, "port to listen on")
	serveCmd.Flags().BoolVar(&flagWatch, "watch", true, "reload the configuration file when it changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := config.NewLoader(flagConfig)
	if err := loader.Load(); err != nil {
		return err
	}
	cfg := loader.Config()

	checker := healthcheck.NewChecker(cfg.Display.HealthCheck.TimeoutDuration())

	srv, err := server.NewServer(&server.Config{
		BindAddress: flagBind,
		Port:        flagPort,
	}, loader, checker)
	if err != nil {
		return err
	}

	if err := srv.Start(ctx); err != nil {
		return err
	}

	var watcher *config.Watcher
	if flagWatch {
		watcher, err = config.NewWatcher(loader, 500*time.Millisecond, func(newCfg *config.DashboardConfig) {
			checker.SetTimeout(newCfg.Display.HealthCheck.TimeoutDuration())
			checker.Clear()
		})
		if err != nil {
			logger.WithError(err).Warn("Configuration watching unavailable")
		} else if err := watcher.Start(ctx); err != nil {
			logger.WithError(err).Warn("Failed to start configuration watcher")
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.WithField("signal", sig.String()).Info("Shutting down")

	if watcher != nil {
		watcher.Stop()
	}
	cancel()
	return srv.Stop()
}
