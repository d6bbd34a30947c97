package arbor

// PointerState is what the router knows about one pointer.
type PointerState struct {
	ID int

	// EnteredLeaf is the deepest node the pointer is over, or nil when idle.
	EnteredLeaf *Node
	// Hovered holds every node sent an Enter without a matching Exit, in the
	// order they were entered.
	Hovered []*Node

	// Last known position in world space.
	X, Y float64

	// Press / drag bookkeeping, owned by the scene's input processing.
	down     bool
	startX   float64
	startY   float64
	pressed  *Node
	dragging bool
	button   MouseButton
}

// Idle reports whether the pointer has no entered leaf.
func (ps *PointerState) Idle() bool {
	return ps.EnteredLeaf == nil
}

// IsHovering reports whether n is in the hovered set.
func (ps *PointerState) IsHovering(n *Node) bool {
	for _, h := range ps.Hovered {
		if h == n {
			return true
		}
	}
	return false
}

func (ps *PointerState) removeHovered(n *Node) {
	for i, h := range ps.Hovered {
		if h == n {
			copy(ps.Hovered[i:], ps.Hovered[i+1:])
			ps.Hovered[len(ps.Hovered)-1] = nil
			ps.Hovered = ps.Hovered[:len(ps.Hovered)-1]
			return
		}
	}
}

func (ps *PointerState) clearHovered() {
	for i := range ps.Hovered {
		ps.Hovered[i] = nil
	}
	ps.Hovered = ps.Hovered[:0]
}

// Dispatcher delivers a hover event for node to whatever listens.
type Dispatcher func(ev EventType, node *Node, ps *PointerState)

// HoverRouter turns "the pointer is now over X" into ordered exit and enter
// events. It keeps one PointerState per pointer id.
//
// A HoverRouter is not safe for concurrent use.
type HoverRouter struct {
	dispatch Dispatcher
	states   map[int]*PointerState
}

// NewHoverRouter returns a router that reports events through dispatch.
// A nil dispatch drops events (state is still tracked).
func NewHoverRouter(dispatch Dispatcher) *HoverRouter {
	if dispatch == nil {
		dispatch = func(EventType, *Node, *PointerState) {}
	}
	return &HoverRouter{
		dispatch: dispatch,
		states:   make(map[int]*PointerState),
	}
}

// State returns the state for pointerID, creating it on first use.
func (r *HoverRouter) State(pointerID int) *PointerState {
	ps, ok := r.states[pointerID]
	if !ok {
		ps = &PointerState{ID: pointerID}
		r.states[pointerID] = ps
	}
	return ps
}

// Lookup returns the state for pointerID without creating it.
func (r *HoverRouter) Lookup(pointerID int) (*PointerState, bool) {
	ps, ok := r.states[pointerID]
	return ps, ok
}

// HandleTransition moves pointerID's hover to newTarget (nil for "over
// nothing") and emits the resulting events.
func (r *HoverRouter) HandleTransition(pointerID int, newTarget *Node) {
	r.Transition(r.State(pointerID), newTarget)
}

// Transition applies a hover change to ps:
//
//   - With no new target, or no previous leaf, every hovered node gets Exit
//     (in hovered order) and the set is cleared; a nil target then leaves
//     the pointer idle.
//   - An unchanged target emits nothing.
//   - Otherwise the old leaf and its ancestors get Exit, leaf to root, up to
//     but excluding the common root of the two chains; then the new target
//     and its ancestors get Enter the same way. With no common root both
//     chains run to the top.
//
// All exits precede all enters. A previous leaf that has been disposed is
// treated as absent.
func (r *HoverRouter) Transition(ps *PointerState, newTarget *Node) {
	if newTarget != nil && newTarget.disposed {
		newTarget = nil
	}
	if ps.EnteredLeaf != nil && ps.EnteredLeaf.disposed {
		ps.EnteredLeaf = nil
	}

	if newTarget == nil || ps.EnteredLeaf == nil {
		for _, h := range ps.Hovered {
			r.dispatch(EventPointerExit, h, ps)
		}
		ps.clearHovered()
		if newTarget == nil {
			ps.EnteredLeaf = nil
			return
		}
	}

	if ps.EnteredLeaf == newTarget {
		return
	}

	common := FindCommonRoot(ps.EnteredLeaf, newTarget)

	if ps.EnteredLeaf != nil {
		for t := ps.EnteredLeaf; t != nil && t != common; t = t.Parent {
			r.dispatch(EventPointerExit, t, ps)
			ps.removeHovered(t)
		}
	}

	ps.EnteredLeaf = newTarget
	for t := newTarget; t != nil && t != common; t = t.Parent {
		r.dispatch(EventPointerEnter, t, ps)
		ps.Hovered = append(ps.Hovered, t)
	}
}

// Reset exits everything pointerID hovers and forgets its state.
func (r *HoverRouter) Reset(pointerID int) {
	ps, ok := r.states[pointerID]
	if !ok {
		return
	}
	r.Transition(ps, nil)
	delete(r.states, pointerID)
}

// detachSubtree pulls every pointer out of sub before sub leaves its
// parent: hovered nodes inside sub get Exit and the entered leaf moves up to
// sub's parent, which keeps each hovered set a single ancestor chain.
func (r *HoverRouter) detachSubtree(sub *Node) {
	for _, ps := range r.states {
		if ps.pressed != nil && isAncestor(sub, ps.pressed) {
			ps.pressed = nil
			ps.dragging = false
		}
		if ps.EnteredLeaf != nil && isAncestor(sub, ps.EnteredLeaf) {
			r.Transition(ps, sub.Parent)
		}
	}
}

// FindCommonRoot returns the nearest node on both a's and b's ancestor
// chains (each chain includes the node itself), or nil if the chains never
// meet. The scan checks every ancestor of b against each ancestor of a in
// turn, leaf to root on both sides.
func FindCommonRoot(a, b *Node) *Node {
	if a == nil || b == nil {
		return nil
	}
	for t := a; t != nil; t = t.Parent {
		for u := b; u != nil; u = u.Parent {
			if t == u {
				return t
			}
		}
	}
	return nil
}
