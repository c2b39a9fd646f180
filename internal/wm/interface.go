package wm

import (
	"errors"
	"os/exec"
)

var ErrUnsupportedSession = errors.New("unsupported session")

// OutputSource lists the outputs of the running compositor.
type OutputSource interface {
	// Outputs returns every active output with its usable area
	Outputs() ([]Output, error)
	// Name returns the compositor name for logging/display
	Name() string
}

// Output is one monitor and the area available to tiled views on it.
type Output struct {
	Name   string
	Width  uint32
	Height uint32
}

// runner executes an external command and returns its stdout.
type runner func(name string, args ...string) ([]byte, error)

func execRunner(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}
