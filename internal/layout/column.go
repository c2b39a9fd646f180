package layout

import "fmt"

// RemainderPolicy controls what happens to the pixels left over when the
// usable height does not divide evenly between a column's rows.
type RemainderPolicy int

const (
	// RemainderDrop leaves the leftover pixels as an empty strip at the
	// bottom of the column.
	RemainderDrop RemainderPolicy = iota
	// RemainderDistribute hands one extra pixel to each of the first rows
	// until the leftover is used up.
	RemainderDistribute
)

func (p RemainderPolicy) String() string {
	switch p {
	case RemainderDrop:
		return "drop"
	case RemainderDistribute:
		return "distribute"
	default:
		return "unknown"
	}
}

// ParseRemainderPolicy converts a config string into a RemainderPolicy. The
// empty string selects RemainderDrop.
func ParseRemainderPolicy(s string) (RemainderPolicy, error) {
	switch s {
	case "drop", "":
		return RemainderDrop, nil
	case "distribute":
		return RemainderDistribute, nil
	default:
		return 0, fmt.Errorf("unknown remainder policy %q", s)
	}
}

// PlaceColumn stacks count rows of equal height in a column of the given
// width starting at xOffset. A column with no views or no width places
// nothing; its views are not deferred to the other column.
func PlaceColumn(count, columnWidth, usableHeight uint32, xOffset int32, policy RemainderPolicy) []Rectangle {
	if count == 0 || columnWidth == 0 {
		return nil
	}

	each := usableHeight / count
	extra := uint32(0)
	if policy == RemainderDistribute {
		extra = usableHeight % count
	}

	rows := make([]Rectangle, 0, count)
	var y uint32
	for i := uint32(0); i < count; i++ {
		h := each
		if i < extra {
			h++
		}
		rows = append(rows, Rectangle{
			X:      xOffset,
			Y:      int32(y),
			Width:  columnWidth,
			Height: h,
		})
		y += h
	}
	return rows
}
