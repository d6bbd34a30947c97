package arbor

// Handle is a stable reference to a Node. It is a generation-counted index
// into a package-level arena, so it stays comparable (and usable as a map
// key) after the node it names has been disposed. A handle to a disposed
// node resolves to nil.
//
// The zero Handle never resolves.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// Resolve returns the live node named by h, or nil if the node has been
// disposed or h is the zero handle.
func Resolve(h Handle) *Node {
	return nodes.resolve(h)
}

// Live reports whether h still names a live node.
func (h Handle) Live() bool {
	return nodes.resolve(h) != nil
}

type arenaSlot struct {
	node *Node
	gen  uint32
}

// nodeArena hands out handles. Plain slices, no locking: arbor is single-threaded.
type nodeArena struct {
	slots []arenaSlot
	free  []uint32
}

var nodes nodeArena

func (a *nodeArena) mint(n *Node) Handle {
	if k := len(a.free); k > 0 {
		idx := a.free[k-1]
		a.free = a.free[:k-1]
		a.slots[idx].node = n
		return Handle{index: idx, gen: a.slots[idx].gen}
	}
	a.slots = append(a.slots, arenaSlot{node: n, gen: 1})
	return Handle{index: uint32(len(a.slots) - 1), gen: 1}
}

// release invalidates h. Every outstanding copy of h stops resolving; the
// slot is recycled with a bumped generation.
func (a *nodeArena) release(h Handle) {
	if !a.owns(h) {
		return
	}
	s := &a.slots[h.index]
	s.node = nil
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	a.free = append(a.free, h.index)
}

func (a *nodeArena) resolve(h Handle) *Node {
	if !a.owns(h) {
		return nil
	}
	return a.slots[h.index].node
}

func (a *nodeArena) owns(h Handle) bool {
	return h.gen != 0 && int(h.index) < len(a.slots) && a.slots[h.index].gen == h.gen
}
