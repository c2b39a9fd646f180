package layout

import "fmt"

// TierMatch decides how a Tier compares the usable area to its threshold.
type TierMatch int

const (
	// AtLeast matches when both usable dimensions reach the threshold.
	AtLeast TierMatch = iota
	// Exact matches only the exact usable size.
	Exact
)

func (m TierMatch) String() string {
	switch m {
	case AtLeast:
		return "at_least"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

// ParseTierMatch converts a config string into a TierMatch.
func ParseTierMatch(s string) (TierMatch, error) {
	switch s {
	case "at_least", "":
		return AtLeast, nil
	case "exact":
		return Exact, nil
	default:
		return 0, fmt.Errorf("unknown tier match %q", s)
	}
}

// Tier maps a usable-area predicate to a fixed main area size.
type Tier struct {
	Name       string
	Match      TierMatch
	Width      uint32
	Height     uint32
	MainWidth  uint32
	MainHeight uint32
}

func (t Tier) matches(usableWidth, usableHeight uint32) bool {
	switch t.Match {
	case AtLeast:
		return usableWidth >= t.Width && usableHeight >= t.Height
	case Exact:
		return usableWidth == t.Width && usableHeight == t.Height
	default:
		return false
	}
}

// DefaultTiers is the built-in table, evaluated top-down.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: "uhd", Match: AtLeast, Width: 3840, Height: 2160, MainWidth: 1920, MainHeight: 1080},
		{Name: "fhd", Match: Exact, Width: 1920, Height: 1080, MainWidth: 1280, MainHeight: 720},
	}
}

// MainArea is the centered main rectangle chosen for an output.
type MainArea struct {
	Width  uint32
	Height uint32
	X      int32
	Y      int32
}

// Rect returns the main area as a Rectangle.
func (m MainArea) Rect() Rectangle {
	return Rectangle{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height}
}

// SelectMain picks the main area from the first matching tier. When no tier
// matches the main area fills the whole usable area.
func SelectMain(tiers []Tier, usableWidth, usableHeight uint32) MainArea {
	width, height := usableWidth, usableHeight
	for _, t := range tiers {
		if t.matches(usableWidth, usableHeight) {
			width, height = t.MainWidth, t.MainHeight
			break
		}
	}

	// Signed, truncating division: an odd remainder biases toward the origin.
	return MainArea{
		Width:  width,
		Height: height,
		X:      int32((int64(usableWidth) - int64(width)) / 2),
		Y:      int32((int64(usableHeight) - int64(height)) / 2),
	}
}
