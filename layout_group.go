package arbor

// Padding is inner spacing between a group's rect and its children.
type Padding struct {
	Left, Right, Top, Bottom float64
}

func (p Padding) start(axis Axis) float64 {
	if axis == AxisHorizontal {
		return p.Left
	}
	return p.Top
}

func (p Padding) total(axis Axis) float64 {
	if axis == AxisHorizontal {
		return p.Left + p.Right
	}
	return p.Top + p.Bottom
}

// Alignment places children on a group's cross axis.
type Alignment uint8

const (
	AlignStart   Alignment = iota // left or top
	AlignCenter                   // centered
	AlignEnd                      // right or bottom
	AlignStretch                  // fill the inner cross extent
)

// StackGroup lines its node's active children up along Direction, separated
// by Spacing. It is both a layout element (it reports the stacked size of its
// children) and a layout group (it writes their rects).
//
// Along the stacking axis each child gets its preferred size; leftover space
// is shared by flexible weight, and a shortfall shrinks children toward their
// minimum sizes. On the cross axis children take their preferred size,
// clamped to the inner extent, and are placed by Align. Children with a
// flexible weight on the cross axis always stretch.
type StackGroup struct {
	BehaviorBase
	Direction Axis
	Padding   Padding
	Spacing   float64
	Align     Alignment

	hints [2]SizeHints
	kids  []*Node // scratch: active children, reused across calls
}

// NewStackGroup returns a group stacking along dir with the given spacing.
func NewStackGroup(dir Axis, spacing float64) *StackGroup {
	return &StackGroup{Direction: dir, Spacing: spacing}
}

// ControlsChildren marks StackGroup as a LayoutGroup.
func (g *StackGroup) ControlsChildren() {}

// LayoutSize returns the hints computed by the last CalculateLayoutInput.
func (g *StackGroup) LayoutSize(axis Axis) SizeHints {
	return g.hints[axis]
}

// CalculateLayoutInput sums children along the stacking axis and takes the
// maximum across it.
func (g *StackGroup) CalculateLayoutInput(axis Axis) {
	kids := g.activeChildren()
	pad := g.Padding.total(axis)
	h := SizeHints{Min: pad, Preferred: pad}
	if axis == g.Direction {
		for i, c := range kids {
			ch := LayoutSizeOf(c, axis)
			h.Min += ch.Min
			h.Preferred += ch.Preferred
			h.Flexible += ch.Flexible
			if i > 0 {
				h.Min += g.Spacing
				h.Preferred += g.Spacing
			}
		}
	} else {
		var minC, prefC, flexC float64
		for _, c := range kids {
			ch := LayoutSizeOf(c, axis)
			minC = max(minC, ch.Min)
			prefC = max(prefC, ch.Preferred)
			flexC = max(flexC, ch.Flexible)
		}
		h.Min += minC
		h.Preferred += prefC
		h.Flexible = flexC
	}
	g.hints[axis] = h
}

// SetLayout writes the children's rects along axis from the node's rect.
func (g *StackGroup) SetLayout(axis Axis) {
	if g.node == nil {
		return
	}
	kids := g.activeChildren()
	if len(kids) == 0 {
		return
	}
	inner := g.node.Rect.Size(axis) - g.Padding.total(axis)
	start := g.Padding.start(axis)
	if axis == g.Direction {
		g.layoutMain(kids, axis, start, inner)
	} else {
		g.layoutCross(kids, axis, start, inner)
	}
}

func (g *StackGroup) layoutMain(kids []*Node, axis Axis, start, inner float64) {
	gaps := g.Spacing * float64(len(kids)-1)
	var sumMin, sumPref, sumFlex float64
	for _, c := range kids {
		ch := LayoutSizeOf(c, axis)
		sumMin += ch.Min
		sumPref += ch.Preferred
		sumFlex += ch.Flexible
	}
	avail := inner - gaps

	// Shrink factor between min (0) and preferred (1), or extra space to share.
	t := 1.0
	extra := 0.0
	switch {
	case avail < sumPref && sumPref > sumMin:
		t = max(0, (avail-sumMin)/(sumPref-sumMin))
	case avail > sumPref && sumFlex > 0:
		extra = avail - sumPref
	}

	pos := start
	for _, c := range kids {
		ch := LayoutSizeOf(c, axis)
		size := ch.Min + (ch.Preferred-ch.Min)*t
		if extra > 0 && ch.Flexible > 0 {
			size += extra * ch.Flexible / sumFlex
		}
		c.Rect.setAxis(axis, pos, size)
		pos += size + g.Spacing
	}
}

func (g *StackGroup) layoutCross(kids []*Node, axis Axis, start, inner float64) {
	for _, c := range kids {
		ch := LayoutSizeOf(c, axis)
		size := min(ch.Preferred, inner)
		if g.Align == AlignStretch || ch.Flexible > 0 {
			size = inner
		}
		size = max(size, 0)
		pos := start
		switch g.Align {
		case AlignCenter:
			pos += (inner - size) / 2
		case AlignEnd:
			pos += inner - size
		}
		c.Rect.setAxis(axis, pos, size)
	}
}

// activeChildren fills the scratch slice with the node's active children.
func (g *StackGroup) activeChildren() []*Node {
	g.kids = g.kids[:0]
	if g.node == nil {
		return g.kids
	}
	for _, c := range g.node.children {
		if c.active && !c.disposed {
			g.kids = append(g.kids, c)
		}
	}
	return g.kids
}
