package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"river-stream/pkg/config"
	"river-stream/pkg/logger"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

type options struct {
	configPath string
	debug      bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "river-stream",
		Short:        "Main-plus-stack layout generator for river",
		Long:         "river-stream centers one main view on each output and splits the remaining views into columns on either side of it.",
		Version:      version,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newPreviewCmd(opts))
	root.AddCommand(newSendCmd(opts))

	return root
}

// consoleLogger is used by the one-shot commands: stderr only, warnings and
// up unless --debug is set.
func (o *options) consoleLogger() (*logger.Logger, error) {
	level := zerolog.WarnLevel
	if o.debug {
		level = zerolog.DebugLevel
	}
	log, err := logger.NewLogger(
		logger.WithConsole(),
		logger.WithLevel(level),
		logger.WithoutFile(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}

// resolveConfig loads --config when given, else the default config file if
// it exists, else the built-in defaults. A default file that fails to load
// falls back to the defaults as serve does. Unlike serve it never writes a file.
func (o *options) resolveConfig(log *logger.Logger) (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFromFile(o.configPath)
	}

	path, err := config.DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); err != nil {
		log.Debug("No config file, using defaults", "path", path)
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		log.Warn("Failed to load configuration, using defaults", "path", path, "error", err.Error())
		return config.DefaultConfig(), nil
	}
	return cfg, nil
}

func logStartup(log *logger.Logger, opts *options) {
	log.Info("Starting river-stream",
		"version", version,
		"pid", os.Getpid(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"debug", opts.debug)
}
