package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"river-stream/internal/app"
	"river-stream/pkg/config"
	"river-stream/pkg/global"
	"river-stream/pkg/logger"
)

func newServeCmd(opts *options) *cobra.Command {
	var socket string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer layout requests on a unix socket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bootLog, err := opts.consoleLogger()
			if err != nil {
				return err
			}

			cfg, err := config.FindConfig(opts.configPath, bootLog)
			if err != nil {
				bootLog.Error("Failed to load configuration", err, "provided_path", opts.configPath)
				return err
			}

			log, err := serveLogger(cfg, opts.debug)
			if err != nil {
				return err
			}
			defer log.Close()

			logStartup(log, opts)
			log.Info("Configuration loaded",
				"path", cfg.Path(),
				"namespace", cfg.Namespace,
				"remainder", cfg.Layout.Remainder,
				"tier_count", len(cfg.Layout.Tiers))

			global.InitGlobals(cfg, log)

			var daemonOpts []app.DaemonOption
			if socket != "" {
				daemonOpts = append(daemonOpts, app.WithSocketPath(socket))
			}
			daemon, err := app.NewDaemon(cfg, log, daemonOpts...)
			if err != nil {
				log.Error("Failed to create daemon", err)
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := daemon.Run(ctx); err != nil {
				log.Error("Daemon error", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&socket, "socket", "", "socket path (overrides socket_path in the config)")
	return cmd
}

func serveLogger(cfg *config.Config, debug bool) (*logger.Logger, error) {
	level, err := cfg.GetLogLevel()
	if err != nil {
		return nil, err
	}
	if debug {
		level = zerolog.DebugLevel
	}

	logOpts := []logger.Option{logger.WithConsole(), logger.WithLevel(level)}
	if cfg.Log.File != "" {
		logOpts = append(logOpts, logger.WithFile(cfg.Log.File))
	}

	log, err := logger.NewLogger(logOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}
