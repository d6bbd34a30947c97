package arbor

// SizeHints is what a layout element asks for along one axis.
type SizeHints struct {
	Min       float64
	Preferred float64
	Flexible  float64
}

// LayoutElement contributes size hints to its parent's layout. The scheduler
// calls CalculateLayoutInput after every descendant has been calculated for
// the same axis, so an element may read its children's hints.
type LayoutElement interface {
	Behavior
	CalculateLayoutInput(axis Axis)
	LayoutSize(axis Axis) SizeHints
}

// LayoutController consumes a resolved rect along an axis. The scheduler
// calls SetLayout on a node before any of its descendants.
type LayoutController interface {
	Behavior
	SetLayout(axis Axis)
}

// LayoutGroup is a controller that positions and sizes its node's children.
// Dirty marks propagate upward through nodes carrying an active group.
type LayoutGroup interface {
	LayoutController
	ControlsChildren()
}

// SelfController is a controller that resizes its own node. On each node,
// self controllers run before the other controllers.
type SelfController interface {
	LayoutController
	ControlsSelf()
}

// LayoutSizeOf combines the hints of every active layout element on n, taking
// the largest value of each field. Preferred is never below Min. A node with
// no active elements reports its current rect size as both Min and Preferred.
func LayoutSizeOf(n *Node, axis Axis) SizeHints {
	var out SizeHints
	found := false
	if IsActiveAndEnabled(n) {
		for _, b := range n.behaviors.byCap[CapLayoutElement] {
			if !b.Enabled() {
				continue
			}
			h := b.(LayoutElement).LayoutSize(axis)
			if !found {
				out = h
				found = true
				continue
			}
			out.Min = max(out.Min, h.Min)
			out.Preferred = max(out.Preferred, h.Preferred)
			out.Flexible = max(out.Flexible, h.Flexible)
		}
	}
	if !found {
		s := n.Rect.Size(axis)
		return SizeHints{Min: s, Preferred: s}
	}
	out.Preferred = max(out.Preferred, out.Min)
	return out
}

// PreferredSize returns the combined preferred size of n along axis.
func PreferredSize(n *Node, axis Axis) float64 {
	return LayoutSizeOf(n, axis).Preferred
}

// MinSize returns the combined minimum size of n along axis.
func MinSize(n *Node, axis Axis) float64 {
	return LayoutSizeOf(n, axis).Min
}

// FlexibleSize returns the combined flexible weight of n along axis.
func FlexibleSize(n *Node, axis Axis) float64 {
	return LayoutSizeOf(n, axis).Flexible
}

// LayoutBox is a layout element with fixed hints, the usual way to give a
// leaf node a size inside a StackGroup.
type LayoutBox struct {
	BehaviorBase
	hints [2]SizeHints
}

// NewLayoutBox returns a box preferring width x height with no flexibility.
func NewLayoutBox(width, height float64) *LayoutBox {
	b := &LayoutBox{}
	b.hints[AxisHorizontal] = SizeHints{Preferred: width}
	b.hints[AxisVertical] = SizeHints{Preferred: height}
	return b
}

// CalculateLayoutInput is a no-op; a box's hints are set directly.
func (b *LayoutBox) CalculateLayoutInput(axis Axis) {}

// LayoutSize returns the hints for axis.
func (b *LayoutBox) LayoutSize(axis Axis) SizeHints {
	return b.hints[axis]
}

// SetHints replaces the hints for axis and marks layout dirty if they changed.
func (b *LayoutBox) SetHints(axis Axis, h SizeHints) {
	if b.hints[axis] == h {
		return
	}
	b.hints[axis] = h
	if b.node != nil {
		b.node.MarkLayoutDirty()
	}
}

// SetPreferred sets the preferred size for axis.
func (b *LayoutBox) SetPreferred(axis Axis, v float64) {
	h := b.hints[axis]
	h.Preferred = v
	b.SetHints(axis, h)
}

// SetMin sets the minimum size for axis.
func (b *LayoutBox) SetMin(axis Axis, v float64) {
	h := b.hints[axis]
	h.Min = v
	b.SetHints(axis, h)
}

// SetFlexible sets the flexible weight for axis.
func (b *LayoutBox) SetFlexible(axis Axis, v float64) {
	h := b.hints[axis]
	h.Flexible = v
	b.SetHints(axis, h)
}
