package wm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"river-stream/pkg/logger"
)

const hyprMonitorsJSON = `[
  {"id": 0, "name": "DP-1", "width": 3840, "height": 2160, "scale": 1.00, "transform": 0, "reserved": [0, 30, 0, 0], "disabled": false},
  {"id": 1, "name": "eDP-1", "width": 2880, "height": 1800, "scale": 1.50, "transform": 0, "reserved": [0, 0, 0, 0]},
  {"id": 2, "name": "HDMI-A-1", "width": 1920, "height": 1080, "scale": 1.00, "transform": 1, "reserved": [0, 0, 0, 0]},
  {"id": 3, "name": "DP-3", "width": 1920, "height": 1080, "scale": 1.00, "transform": 0, "reserved": [0, 0, 0, 0], "disabled": true}
]`

func TestParseHyprMonitors(t *testing.T) {
	outputs, err := parseHyprMonitors([]byte(hyprMonitorsJSON))
	require.NoError(t, err)

	assert.Equal(t, []Output{
		{Name: "DP-1", Width: 3840, Height: 2130},
		{Name: "eDP-1", Width: 1920, Height: 1200},
		{Name: "HDMI-A-1", Width: 1080, Height: 1920},
	}, outputs)
}

func TestParseHyprMonitorsInvalid(t *testing.T) {
	_, err := parseHyprMonitors([]byte("not json"))
	assert.Error(t, err)
}

func TestHyprlandOutputs(t *testing.T) {
	var gotArgs []string
	h := &Hyprland{
		log: logger.NewNop(),
		run: func(name string, args ...string) ([]byte, error) {
			gotArgs = append([]string{name}, args...)
			return []byte(hyprMonitorsJSON), nil
		},
	}

	outputs, err := h.Outputs()
	require.NoError(t, err)
	assert.Len(t, outputs, 3)
	assert.Equal(t, []string{"hyprctl", "monitors", "-j"}, gotArgs)

	h.run = func(string, ...string) ([]byte, error) { return nil, errors.New("no socket") }
	_, err = h.Outputs()
	assert.Error(t, err)
}

func TestParseSwayOutputs(t *testing.T) {
	data := `[
	  {"name": "DP-1", "active": true, "rect": {"x": 0, "y": 0, "width": 2560, "height": 1440}},
	  {"name": "DP-2", "active": false, "rect": {"x": 0, "y": 0, "width": 0, "height": 0}}
	]`
	outputs, err := parseSwayOutputs([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []Output{{Name: "DP-1", Width: 2560, Height: 1440}}, outputs)
}

func TestParseDisplayGeometry(t *testing.T) {
	o, err := parseDisplayGeometry([]byte("1920 1080\n"))
	require.NoError(t, err)
	assert.Equal(t, Output{Name: "X11", Width: 1920, Height: 1080}, o)

	for _, bad := range []string{"", "1920", "a 1080", "1920 -1"} {
		_, err := parseDisplayGeometry([]byte(bad))
		assert.Error(t, err, bad)
	}
}

type staticSource []Output

func (s staticSource) Outputs() ([]Output, error) { return s, nil }
func (s staticSource) Name() string               { return "static" }

func TestManagerOutput(t *testing.T) {
	m := &Manager{source: staticSource{
		{Name: "DP-1", Width: 1920, Height: 1080},
		{Name: "DP-2", Width: 3840, Height: 2160},
	}}

	o, err := m.Output("")
	require.NoError(t, err)
	assert.Equal(t, "DP-1", o.Name)

	o, err = m.Output("DP-2")
	require.NoError(t, err)
	assert.Equal(t, uint32(3840), o.Width)

	_, err = m.Output("HDMI-A-1")
	assert.Error(t, err)

	empty := &Manager{source: staticSource{}}
	_, err = empty.Output("")
	assert.Error(t, err)
	assert.Equal(t, "static", m.Name())
}

func TestDetectUnsupported(t *testing.T) {
	env := map[string]string{"XDG_SESSION_TYPE": "wayland"}
	_, err := detect(logger.NewNop(), func(k string) string { return env[k] })
	assert.True(t, errors.Is(err, ErrUnsupportedSession))

	_, err = detect(logger.NewNop(), func(string) string { return "" })
	assert.True(t, errors.Is(err, ErrUnsupportedSession))
}
