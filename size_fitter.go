package arbor

// FitMode selects how a SizeFitter sizes its node along one axis.
type FitMode uint8

const (
	FitUnconstrained FitMode = iota // leave the axis alone
	FitMin                          // use the node's minimum size
	FitPreferred                    // use the node's preferred size
)

// SizeFitter is a self controller that resizes its node to the node's own
// layout hints, typically those reported by a StackGroup on the same node.
type SizeFitter struct {
	BehaviorBase
	Fit [2]FitMode
}

// NewSizeFitter returns a fitter using horizontal and vertical modes h and v.
func NewSizeFitter(h, v FitMode) *SizeFitter {
	return &SizeFitter{Fit: [2]FitMode{h, v}}
}

// ControlsSelf marks SizeFitter as a SelfController.
func (f *SizeFitter) ControlsSelf() {}

// SetLayout writes the fitted size for axis into the node's rect.
func (f *SizeFitter) SetLayout(axis Axis) {
	n := f.node
	if n == nil {
		return
	}
	var size float64
	switch f.Fit[axis] {
	case FitMin:
		size = MinSize(n, axis)
	case FitPreferred:
		size = PreferredSize(n, axis)
	default:
		return
	}
	n.Rect.setAxis(axis, n.Rect.Pos(axis), size)
}

// SetFit changes the mode for axis and marks layout dirty.
func (f *SizeFitter) SetFit(axis Axis, mode FitMode) {
	if f.Fit[axis] == mode {
		return
	}
	f.Fit[axis] = mode
	if f.node != nil {
		f.node.MarkLayoutDirty()
	}
}
