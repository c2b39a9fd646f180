package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNoViews(t *testing.T) {
	e := NewEngine()
	for _, size := range [][2]uint32{{0, 0}, {1920, 1080}, {3840, 2160}, {800, 600}} {
		got := e.Generate(0, size[0], size[1], "DP-1")
		assert.Empty(t, got.Views, "size %v", size)
	}
}

func TestGenerateSingleView(t *testing.T) {
	e := NewEngine()
	for _, size := range [][2]uint32{{0, 0}, {1920, 1080}, {3840, 2160}, {1919, 1080}} {
		got := e.Generate(1, size[0], size[1], "DP-1")
		require.Len(t, got.Views, 1)
		assert.Equal(t, SelectMain(DefaultTiers(), size[0], size[1]).Rect(), got.Views[0])
	}
}

func TestGenerateFullHDFourViews(t *testing.T) {
	got := NewEngine().Generate(4, 1920, 1080, "HDMI-A-1")

	assert.Equal(t, "stream for output HDMI-A-1", got.LayoutName)
	assert.Equal(t, []Rectangle{
		{X: 320, Y: 180, Width: 1280, Height: 720},
		{X: 0, Y: 0, Width: 320, Height: 1080},
		{X: 1600, Y: 0, Width: 320, Height: 540},
		{X: 1600, Y: 540, Width: 320, Height: 540},
	}, got.Views)
}

func TestGenerateUHDSixViews(t *testing.T) {
	got := NewEngine().Generate(6, 3840, 2160, "DP-2")

	require.Len(t, got.Views, 6)
	assert.Equal(t, Rectangle{X: 960, Y: 540, Width: 1920, Height: 1080}, got.Views[0])
	// two left, three right
	assert.Equal(t, Rectangle{X: 0, Y: 0, Width: 960, Height: 1080}, got.Views[1])
	assert.Equal(t, Rectangle{X: 0, Y: 1080, Width: 960, Height: 1080}, got.Views[2])
	assert.Equal(t, Rectangle{X: 2880, Y: 0, Width: 960, Height: 720}, got.Views[3])
	assert.Equal(t, Rectangle{X: 2880, Y: 720, Width: 960, Height: 720}, got.Views[4])
	assert.Equal(t, Rectangle{X: 2880, Y: 1440, Width: 960, Height: 720}, got.Views[5])
}

func TestGenerateFullAreaDropsStack(t *testing.T) {
	got := NewEngine().Generate(3, 2560, 1440, "eDP-1")

	assert.Equal(t, []Rectangle{{X: 0, Y: 0, Width: 2560, Height: 1440}}, got.Views)
}

func TestGenerateIsIdempotent(t *testing.T) {
	e := NewEngine(WithRemainder(RemainderDistribute))
	for n := uint32(0); n < 12; n++ {
		a := e.Generate(n, 3840, 2157, "DP-1")
		b := e.Generate(n, 3840, 2157, "DP-1")
		assert.Equal(t, a, b, "view count %d", n)
	}
}

func TestGenerateViewCountOnUHD(t *testing.T) {
	e := NewEngine()
	for n := uint32(0); n <= 40; n++ {
		got := e.Generate(n, 3840, 2160, "DP-1")
		assert.Len(t, got.Views, int(n), "view count %d", n)
	}
}

func TestGenerateLayoutIgnoresTags(t *testing.T) {
	e := NewEngine()
	a, err := e.GenerateLayout(5, 1920, 1080, 1, "DP-1")
	require.NoError(t, err)
	b, err := e.GenerateLayout(5, 1920, 1080, 0xffffffff, "DP-1")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestUserCmdAlwaysSucceeds(t *testing.T) {
	e := NewEngine()
	tags := uint32(4)
	assert.NoError(t, e.UserCmd("main-ratio +0.05", nil, "DP-1"))
	assert.NoError(t, e.UserCmd("", &tags, ""))
}

func TestEngineOptions(t *testing.T) {
	custom := []Tier{{Name: "any", Match: AtLeast, MainWidth: 10, MainHeight: 10}}
	e := NewEngine(WithNamespace("tiles"), WithTiers(custom), WithRemainder(RemainderDistribute))

	assert.Equal(t, "tiles", e.Namespace())
	assert.Equal(t, custom, e.Tiers())
	assert.Equal(t, RemainderDistribute, e.Remainder())

	custom[0].MainWidth = 99
	assert.Equal(t, uint32(10), e.Tiers()[0].MainWidth, "engine keeps its own copy")

	defaults := NewEngine(WithNamespace(""), WithTiers(nil))
	assert.Equal(t, DefaultNamespace, defaults.Namespace())
	assert.Equal(t, DefaultTiers(), defaults.Tiers())
}

var _ Provider = (*Engine)(nil)
