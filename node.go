package arbor

// HitShape is used for custom hit testing regions in node-local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// --- ID counter ---

// nodeIDCounter is a plain counter; arbor is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is an element of the UI tree. Its own data is limited to identity,
// hierarchy, a rect and hit-test settings; everything else (layout, pointer
// handling) lives in attached behaviors.
type Node struct {
	// Identity
	ID     uint32
	Name   string
	handle Handle

	// Hierarchy
	Parent   *Node
	children []*Node
	owner    *Scene // set only on a scene's root

	// Rect is the node's rectangle in its parent's space. Layout controllers
	// write it; hit testing reads it.
	Rect Rect

	// Visibility & interaction. A non-interactable node hides its whole
	// subtree from hit testing.
	active       bool
	Interactable bool
	HitShape     HitShape

	// Ordering among siblings for hit testing and the debug overlay.
	ZIndex int

	// Metadata
	UserData any
	EntityID uint32

	behaviors behaviorRegistry

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// NewNode creates an active, interactable node with no behaviors.
func NewNode(name string) *Node {
	n := &Node{
		ID:             nextNodeID(),
		Name:           name,
		active:         true,
		Interactable:   true,
		childrenSorted: true,
	}
	n.handle = nodes.mint(n)
	return n
}

// NewNodeRect creates an active node with the given local rect.
func NewNodeRect(name string, r Rect) *Node {
	n := NewNode(name)
	n.Rect = r
	return n
}

// Handle returns the node's stable handle. It stays valid as a key after
// Dispose but no longer resolves.
func (n *Node) Handle() Handle {
	return n.handle
}

// --- Activity ---

// SetActive switches the node on or off. Inactive nodes and their subtrees
// are skipped by layout and hit testing.
func (n *Node) SetActive(active bool) {
	if n.active == active {
		return
	}
	n.active = active
	if n.Parent != nil {
		n.Parent.MarkLayoutDirty()
	}
	n.MarkLayoutDirty()
}

// ActiveSelf reports the node's own active flag, ignoring ancestors.
func (n *Node) ActiveSelf() bool {
	return n.active
}

// ActiveInHierarchy reports whether the node and every ancestor are active.
func (n *Node) ActiveInHierarchy() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.active {
			return false
		}
	}
	return true
}

// IsActiveAndEnabled reports whether n is a live node that is active in the
// hierarchy. A nil node is not.
func IsActiveAndEnabled(n *Node) bool {
	return n != nil && !n.disposed && n.ActiveInHierarchy()
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.insertChild(child, len(n.children), "AddChild")
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if index < 0 || index > len(n.children) {
		panic("arbor: child index out of range")
	}
	n.insertChild(child, index, "AddChildAt")
}

func (n *Node) insertChild(child *Node, index int, op string) {
	if child == nil {
		panic("arbor: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, op+" (parent)")
		debugCheckDisposed(child, op+" (child)")
	}
	if isAncestor(child, n) {
		panic("arbor: adding child would create a cycle")
	}
	if old := child.Parent; old != nil {
		if s := old.scene(); s != nil {
			s.orphanSubtree(child)
		}
		old.removeChildByPtr(child)
		old.childrenSorted = false
		old.MarkLayoutDirty()
		if index > len(n.children) {
			index = len(n.children)
		}
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.childrenSorted = false
	if s := n.scene(); s != nil {
		s.adoptSubtree(child)
	}
	n.MarkLayoutDirty()
	child.MarkLayoutDirty() // for self controllers no group above reaches

	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("arbor: child's parent is not this node")
	}
	n.detachChild(child)
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChildAt")
	}
	if index < 0 || index >= len(n.children) {
		panic("arbor: child index out of range")
	}
	child := n.children[index]
	n.detachChild(child)
	return child
}

func (n *Node) detachChild(child *Node) {
	if s := n.scene(); s != nil {
		s.orphanSubtree(child)
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	n.MarkLayoutDirty()
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	s := n.scene()
	for i, child := range n.children {
		if s != nil {
			s.orphanSubtree(child)
		}
		child.Parent = nil
		n.children[i] = nil
	}
	n.children = n.children[:0]
	n.sortedChildren = n.sortedChildren[:0]
	n.childrenSorted = true
	n.MarkLayoutDirty()
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetChildIndex moves child to a new index among its siblings.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("arbor: child's parent is not this node")
	}
	nc := len(n.children)
	if index < 0 || index >= nc {
		panic("arbor: child index out of range")
	}
	oldIndex := -1
	for i, c := range n.children {
		if c == child {
			oldIndex = i
			break
		}
	}
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
	n.childrenSorted = false
	n.MarkLayoutDirty()
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// Depth returns the number of ancestors above the node.
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Root returns the topmost ancestor (the node itself when detached).
func (n *Node) Root() *Node {
	r := n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// MarkLayoutDirty schedules a layout rebuild for the node's effective layout
// root on the owning scene. No-op for nodes outside a scene.
func (n *Node) MarkLayoutDirty() {
	if n.disposed {
		return
	}
	if s := n.scene(); s != nil {
		s.layout.MarkDirty(n)
	}
}

// scene returns the scene whose root is this node's root, or nil.
func (n *Node) scene() *Scene {
	return n.Root().owner
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed, detaches
// its behaviors, and recursively disposes all descendants. The node's handle
// stops resolving.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	nodes.release(n.handle)
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	all := n.behaviors.all
	n.behaviors = behaviorRegistry{}
	for _, b := range all {
		if a, ok := b.(Attacher); ok {
			a.OnDetach(n)
		}
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.owner = nil
	n.HitShape = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// orderedChildren returns the children in ascending ZIndex order, stable for
// equal ZIndex. The buffer is rebuilt only when the order is stale.
func (n *Node) orderedChildren() []*Node {
	if n.childrenSorted {
		if n.sortedChildren == nil {
			return n.children
		}
		return n.sortedChildren
	}
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	// Stable insertion sort by ZIndex.
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
	return n.sortedChildren
}
