package wm

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

type X11 struct {
	run runner
}

func NewX11() (OutputSource, error) {
	// Check if xdotool is available
	if _, err := exec.LookPath("xdotool"); err != nil {
		return nil, fmt.Errorf("xdotool is required for X11 support but was not found: %w", err)
	}
	return &X11{run: execRunner}, nil
}

func (x *X11) Name() string {
	return "X11"
}

// Outputs reports the whole X screen as a single output.
func (x *X11) Outputs() ([]Output, error) {
	out, err := x.run("xdotool", "getdisplaygeometry")
	if err != nil {
		return nil, fmt.Errorf("failed to get display geometry: %w", err)
	}
	o, err := parseDisplayGeometry(out)
	if err != nil {
		return nil, err
	}
	return []Output{o}, nil
}

func parseDisplayGeometry(data []byte) (Output, error) {
	fields := strings.Fields(string(data))
	if len(fields) != 2 {
		return Output{}, fmt.Errorf("unexpected display geometry %q", strings.TrimSpace(string(data)))
	}
	w, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return Output{}, fmt.Errorf("invalid display width: %w", err)
	}
	h, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return Output{}, fmt.Errorf("invalid display height: %w", err)
	}
	return Output{Name: "X11", Width: uint32(w), Height: uint32(h)}, nil
}
