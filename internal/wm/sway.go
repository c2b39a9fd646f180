package wm

import (
	"encoding/json"
	"fmt"
	"os/exec"

	"river-stream/pkg/core"
)

type Sway struct {
	log core.Logger
	run runner
}

func NewSway(log core.Logger) (*Sway, error) {
	path, err := exec.LookPath("swaymsg")
	if err != nil {
		log.Error("swaymsg not found in PATH", err)
		return nil, fmt.Errorf("swaymsg not found in PATH: %w", err)
	}
	log.Debug("Found swaymsg", "path", path)

	return &Sway{log: log, run: execRunner}, nil
}

func (s *Sway) Name() string {
	return "Sway"
}

func (s *Sway) Outputs() ([]Output, error) {
	output, err := s.run("swaymsg", "-t", "get_outputs", "-r")
	if err != nil {
		s.log.Error("Failed to execute swaymsg", err, "output", string(output))
		return nil, fmt.Errorf("swaymsg error: %w", err)
	}
	return parseSwayOutputs(output)
}

func parseSwayOutputs(data []byte) ([]Output, error) {
	var raw []struct {
		Name   string `json:"name"`
		Active bool   `json:"active"`
		Rect   struct {
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"rect"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse swaymsg output: %w", err)
	}

	outputs := make([]Output, 0, len(raw))
	for _, o := range raw {
		if !o.Active {
			continue
		}
		outputs = append(outputs, Output{
			Name:   o.Name,
			Width:  clampDimension(o.Rect.Width),
			Height: clampDimension(o.Rect.Height),
		})
	}
	return outputs, nil
}
