package layout

// Partition splits the stack views between the two columns flanking the main
// area.
type Partition struct {
	LeftCount  uint32
	RightCount uint32
	LeftWidth  uint32
	RightWidth uint32
}

// PartitionStack divides the viewCount-1 stack views. The right column takes
// the odd view. Column widths are the gaps on either side of the main area,
// zero when the main area touches or overhangs that edge.
func PartitionStack(viewCount uint32, mainX int32, mainWidth, usableWidth uint32) Partition {
	var p Partition
	if viewCount == 0 {
		return p
	}

	stack := viewCount - 1
	p.LeftCount = stack / 2
	p.RightCount = stack - p.LeftCount

	if mainX > 0 {
		p.LeftWidth = uint32(mainX)
	}

	mainRight := int64(mainX) + int64(mainWidth)
	if gap := int64(usableWidth) - mainRight; gap > 0 {
		p.RightWidth = uint32(gap)
	}
	return p
}
