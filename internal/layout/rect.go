// Package layout computes window placements for the main-plus-stack layout.
//
// Every call is a pure function of its inputs: the engine owns no state that
// survives between calls, so two calls with the same arguments always return
// the same rectangles.
package layout

import "fmt"

// Rectangle is one view's placement in output-local coordinates.
type Rectangle struct {
	X      int32  `json:"x"`
	Y      int32  `json:"y"`
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// GeneratedLayout is the reply to a single layout demand. Views[0] is the main
// view when present, followed by the left column and then the right column.
type GeneratedLayout struct {
	LayoutName string      `json:"layout_name"`
	Views      []Rectangle `json:"views"`
}
