package wm

import (
	"fmt"
	"os"

	"river-stream/pkg/core"
)

// Manager picks an output source based on the session type
type Manager struct {
	source OutputSource
}

// NewManager creates a new output manager based on the session type
func NewManager(log core.Logger) (*Manager, error) {
	source, err := detect(log, os.Getenv)
	if err != nil {
		return nil, err
	}
	log.Info("Output source initialized", "name", source.Name())
	return &Manager{source: source}, nil
}

func detect(log core.Logger, getenv func(string) string) (OutputSource, error) {
	sessionType := getenv("XDG_SESSION_TYPE")
	log.Info("Session type detected", "session", sessionType)

	switch {
	case getenv("HYPRLAND_INSTANCE_SIGNATURE") != "":
		log.Debug("Initializing compositor support", "type", "Hyprland")
		src, err := NewHyprland(log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Hyprland support: %w", err)
		}
		return src, nil
	case getenv("SWAYSOCK") != "":
		log.Debug("Initializing compositor support", "type", "Sway")
		src, err := NewSway(log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Sway support: %w", err)
		}
		return src, nil
	case sessionType == "x11":
		log.Debug("Initializing compositor support", "type", "X11")
		src, err := NewX11()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize X11 support: %w", err)
		}
		return src, nil
	case sessionType == "wayland":
		return nil, fmt.Errorf("%w: cannot query outputs of this Wayland compositor, pass --width and --height", ErrUnsupportedSession)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSession, sessionType)
	}
}

// Outputs wraps the underlying source's Outputs method
func (m *Manager) Outputs() ([]Output, error) {
	return m.source.Outputs()
}

// Output returns the named output, or the first one when name is empty.
func (m *Manager) Output(name string) (Output, error) {
	outputs, err := m.Outputs()
	if err != nil {
		return Output{}, err
	}
	if len(outputs) == 0 {
		return Output{}, fmt.Errorf("no active outputs")
	}
	if name == "" {
		return outputs[0], nil
	}
	for _, o := range outputs {
		if o.Name == name {
			return o, nil
		}
	}
	return Output{}, fmt.Errorf("output %q not found", name)
}

// Name returns the name of the current compositor
func (m *Manager) Name() string {
	return m.source.Name()
}
