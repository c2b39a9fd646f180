package wm

import (
	"encoding/json"
	"fmt"
	"math"
	"os/exec"

	"river-stream/pkg/core"
)

type Hyprland struct {
	log core.Logger
	run runner
}

func NewHyprland(log core.Logger) (*Hyprland, error) {
	// Check if hyprctl is available
	path, err := exec.LookPath("hyprctl")
	if err != nil {
		log.Error("hyprctl not found in PATH", err)
		return nil, fmt.Errorf("hyprctl not found in PATH: %w", err)
	}
	log.Debug("Found hyprctl", "path", path)

	return &Hyprland{log: log, run: execRunner}, nil
}

func (h *Hyprland) Name() string {
	return "Hyprland"
}

type hyprMonitor struct {
	Name      string  `json:"name"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Scale     float64 `json:"scale"`
	Transform int     `json:"transform"`
	Disabled  bool    `json:"disabled"`
	// left, top, right, bottom
	Reserved [4]int `json:"reserved"`
}

func (h *Hyprland) Outputs() ([]Output, error) {
	output, err := h.run("hyprctl", "monitors", "-j")
	if err != nil {
		h.log.Error("Failed to execute hyprctl", err, "output", string(output))
		return nil, fmt.Errorf("hyprctl error: %w", err)
	}

	outputs, err := parseHyprMonitors(output)
	if err != nil {
		h.log.Error("Failed to parse hyprctl output", err, "output", string(output))
		return nil, err
	}
	h.log.Debug("Listed Hyprland monitors", "count", len(outputs))
	return outputs, nil
}

func parseHyprMonitors(data []byte) ([]Output, error) {
	var monitors []hyprMonitor
	if err := json.Unmarshal(data, &monitors); err != nil {
		return nil, fmt.Errorf("failed to parse hyprctl output: %w", err)
	}

	outputs := make([]Output, 0, len(monitors))
	for _, m := range monitors {
		if m.Disabled {
			continue
		}
		scale := m.Scale
		if scale <= 0 {
			scale = 1
		}
		w := int(math.Round(float64(m.Width) / scale))
		h := int(math.Round(float64(m.Height) / scale))
		// odd transforms rotate by 90 or 270 degrees
		if m.Transform%2 == 1 {
			w, h = h, w
		}
		w -= m.Reserved[0] + m.Reserved[2]
		h -= m.Reserved[1] + m.Reserved[3]

		outputs = append(outputs, Output{
			Name:   m.Name,
			Width:  clampDimension(w),
			Height: clampDimension(h),
		})
	}
	return outputs, nil
}

func clampDimension(v int) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
