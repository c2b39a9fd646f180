package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectMain(t *testing.T) {
	tests := []struct {
		name   string
		width  uint32
		height uint32
		want   MainArea
	}{
		{
			name:   "4k exact",
			width:  3840,
			height: 2160,
			want:   MainArea{Width: 1920, Height: 1080, X: 960, Y: 540},
		},
		{
			name:   "wider than 4k",
			width:  4096,
			height: 2160,
			want:   MainArea{Width: 1920, Height: 1080, X: 1088, Y: 540},
		},
		{
			name:   "4k wide but short falls through",
			width:  3840,
			height: 1600,
			want:   MainArea{Width: 3840, Height: 1600},
		},
		{
			name:   "full hd exact",
			width:  1920,
			height: 1080,
			want:   MainArea{Width: 1280, Height: 720, X: 320, Y: 180},
		},
		{
			name:   "one pixel narrower than full hd fills the area",
			width:  1919,
			height: 1080,
			want:   MainArea{Width: 1919, Height: 1080},
		},
		{
			name:   "qhd is not a tier",
			width:  2560,
			height: 1440,
			want:   MainArea{Width: 2560, Height: 1440},
		},
		{
			name:   "zero area",
			width:  0,
			height: 0,
			want:   MainArea{},
		},
		{
			name:   "odd remainder biases toward origin",
			width:  3841,
			height: 2161,
			want:   MainArea{Width: 1920, Height: 1080, X: 960, Y: 540},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectMain(DefaultTiers(), tt.width, tt.height)
			assert.Equal(t, tt.want, got, "SelectMain(%d, %d)", tt.width, tt.height)
		})
	}
}

func TestSelectMainFirstTierWins(t *testing.T) {
	tiers := []Tier{
		{Name: "wide", Match: AtLeast, Width: 1000, Height: 500, MainWidth: 800, MainHeight: 400},
		{Name: "never", Match: AtLeast, Width: 1000, Height: 500, MainWidth: 10, MainHeight: 10},
	}

	got := SelectMain(tiers, 1200, 600)
	assert.Equal(t, MainArea{Width: 800, Height: 400, X: 200, Y: 100}, got)
}

func TestSelectMainOversizedTier(t *testing.T) {
	tiers := []Tier{
		{Name: "big", Match: Exact, Width: 100, Height: 100, MainWidth: 301, MainHeight: 150},
	}

	got := SelectMain(tiers, 100, 100)
	assert.Equal(t, int32(-100), got.X)
	assert.Equal(t, int32(-25), got.Y)
}

func TestParseTierMatch(t *testing.T) {
	m, err := ParseTierMatch("exact")
	require.NoError(t, err)
	assert.Equal(t, Exact, m)

	m, err = ParseTierMatch("")
	require.NoError(t, err)
	assert.Equal(t, AtLeast, m)

	_, err = ParseTierMatch("bigger")
	assert.Error(t, err)
}
