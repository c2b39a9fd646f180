package app

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"river-stream/internal/ipc"
	"river-stream/internal/layout"
	"river-stream/pkg/config"
	"river-stream/pkg/global"
	"river-stream/pkg/logger"
	"river-stream/pkg/notify"
)

type notifier interface {
	Show(message string, nType notify.NotificationType) error
}

func newNotifier(cfg *config.Config) notifier {
	return notify.NewNotifyService(cfg.NotifyCommand, global.GetLogger())
}

// Daemon serves layout requests and follows config changes. The config the
// current engine was built from lives in pkg/global.
type Daemon struct {
	log            *logger.Logger
	notifierFor    func(*config.Config) notifier
	socketPath     string
	socketOverride string
	configPath     string

	engine atomic.Pointer[layout.Engine]
}

type DaemonOption func(*Daemon)

// WithSocketPath serves on path regardless of socket_path in the config,
// including configs loaded by later reloads.
func WithSocketPath(path string) DaemonOption {
	return func(d *Daemon) {
		d.socketOverride = path
	}
}

func NewDaemon(cfg *config.Config, log *logger.Logger, opts ...DaemonOption) (*Daemon, error) {
	d := &Daemon{
		log:         log,
		notifierFor: newNotifier,
		configPath:  cfg.Path(),
	}
	for _, opt := range opts {
		opt(d)
	}

	cfg = d.effective(cfg)
	engine, err := cfg.NewEngine()
	if err != nil {
		return nil, fmt.Errorf("failed to build layout engine: %w", err)
	}
	d.socketPath = cfg.GetSocketPath()
	d.engine.Store(engine)
	global.SetConfig(cfg)

	log.Debug("Layout engine ready",
		"namespace", engine.Namespace(),
		"remainder", engine.Remainder().String(),
		"tiers", len(engine.Tiers()))
	return d, nil
}

// effective applies command line overrides to a loaded config.
func (d *Daemon) effective(cfg *config.Config) *config.Config {
	if d.socketOverride == "" || cfg.SocketPath == d.socketOverride {
		return cfg
	}
	c := *cfg
	c.SocketPath = d.socketOverride
	return &c
}

// Engine returns the engine currently answering requests.
func (d *Daemon) Engine() *layout.Engine {
	return d.engine.Load()
}

// Config returns the config the current engine was built from.
func (d *Daemon) Config() *config.Config {
	return global.GetConfig()
}

func (d *Daemon) SocketPath() string {
	return d.socketPath
}

// Run blocks until ctx is cancelled or the server fails.
func (d *Daemon) Run(ctx context.Context) error {
	return d.run(ctx, nil)
}

func (d *Daemon) run(ctx context.Context, ready chan<- struct{}) error {
	server := ipc.NewServer(d.socketPath, func() layout.Provider { return d.Engine() }, d.log)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Serve(ctx)
	})
	if d.configPath != "" {
		g.Go(func() error {
			return config.Watch(ctx, d.configPath, d.log, d.applyConfig)
		})
	}
	if ready != nil {
		go func() {
			select {
			case <-server.Ready():
				close(ready)
			case <-ctx.Done():
			}
		}()
	}

	d.log.Info("Layout daemon running",
		"namespace", d.Engine().Namespace(),
		"socket", d.socketPath)
	return g.Wait()
}

// applyConfig swaps in a fresh engine built from a reloaded config. A bad
// config keeps the previous engine in service.
func (d *Daemon) applyConfig(cfg *config.Config, err error) {
	if err == nil {
		cfg = d.effective(cfg)
		var engine *layout.Engine
		engine, err = cfg.NewEngine()
		if err == nil {
			if cfg.GetSocketPath() != d.socketPath {
				d.log.Warn("Socket path change needs a restart", "current", d.socketPath, "configured", cfg.GetSocketPath())
			}
			d.engine.Store(engine)
			global.SetConfig(cfg)
			d.log.Info("Configuration reloaded",
				"namespace", engine.Namespace(),
				"remainder", engine.Remainder().String(),
				"tiers", len(engine.Tiers()))
			return
		}
	}

	d.log.Error("Failed to reload configuration", err, "path", d.configPath)
	// notify_command comes from the last config that loaded
	n := d.notifierFor(d.Config())
	if nerr := n.Show(fmt.Sprintf("config not reloaded: %v", err), notify.Error); nerr != nil {
		d.log.Debug("Notification not shown", "reason", nerr.Error())
	}
}
