package arbor

// Behavior is anything attached to a Node. What a behavior can do is decided
// by which capability interfaces it implements (LayoutElement,
// LayoutController, PointerEnterHandler...). The classification happens once,
// in Node.AddBehavior.
type Behavior interface {
	Enabled() bool
}

// Attacher is implemented by behaviors that want to know which node they
// are attached to.
type Attacher interface {
	OnAttach(n *Node)
	OnDetach(n *Node)
}

// BehaviorBase is embedded by behaviors to get an enable toggle and a back
// pointer to their node. The zero value is enabled.
type BehaviorBase struct {
	node     *Node
	disabled bool
}

// Enabled reports whether the behavior is switched on. A behavior on an
// inactive node is still "enabled"; use IsActiveAndEnabled for both.
func (b *BehaviorBase) Enabled() bool {
	return !b.disabled
}

// SetEnabled switches the behavior on or off and marks the owning node's
// layout dirty when the state changes.
func (b *BehaviorBase) SetEnabled(enabled bool) {
	if b.disabled == !enabled {
		return
	}
	b.disabled = !enabled
	if b.node != nil {
		b.node.MarkLayoutDirty()
	}
}

// Node returns the node the behavior is attached to, or nil.
func (b *BehaviorBase) Node() *Node {
	return b.node
}

// OnAttach records n as the owning node.
func (b *BehaviorBase) OnAttach(n *Node) {
	b.node = n
}

// OnDetach clears the owning node.
func (b *BehaviorBase) OnDetach(n *Node) {
	if b.node == n {
		b.node = nil
	}
}

// Capability names a role a behavior can play.
type Capability uint8

const (
	CapLayoutElement      Capability = iota // contributes size hints
	CapLayoutController                     // consumes a resolved rect (any controller)
	CapLayoutGroup                          // controller that lays out its node's children
	CapSelfController                       // controller that resizes its own node
	CapPointerReceiver                      // handles at least one pointer event
	CapResourceSubscriber                   // reacts to shared resource rebuilds
	capabilityCount
)

var capabilityNames = [capabilityCount]string{
	"LayoutElement", "LayoutController", "LayoutGroup",
	"SelfController", "PointerReceiver", "ResourceSubscriber",
}

// String returns the capability's name.
func (c Capability) String() string {
	if c < capabilityCount {
		return capabilityNames[c]
	}
	return "unknown"
}

// capabilitiesOf classifies b. The result is a bitmask over Capability.
func capabilitiesOf(b Behavior) uint8 {
	var mask uint8
	if _, ok := b.(LayoutElement); ok {
		mask |= 1 << CapLayoutElement
	}
	if _, ok := b.(LayoutController); ok {
		mask |= 1 << CapLayoutController
	}
	if _, ok := b.(LayoutGroup); ok {
		mask |= 1 << CapLayoutGroup
	}
	if _, ok := b.(SelfController); ok {
		mask |= 1 << CapSelfController
	}
	if isPointerReceiver(b) {
		mask |= 1 << CapPointerReceiver
	}
	if _, ok := b.(ResourceSubscriber); ok {
		mask |= 1 << CapResourceSubscriber
	}
	return mask
}

// behaviorRegistry holds a node's behaviors bucketed per capability, each
// bucket in registration order.
type behaviorRegistry struct {
	all   []Behavior
	byCap [capabilityCount][]Behavior
}

func (r *behaviorRegistry) add(b Behavior) bool {
	for _, x := range r.all {
		if x == b {
			return false
		}
	}
	r.all = append(r.all, b)
	mask := capabilitiesOf(b)
	for c := Capability(0); c < capabilityCount; c++ {
		if mask&(1<<c) != 0 {
			r.byCap[c] = append(r.byCap[c], b)
		}
	}
	return true
}

func (r *behaviorRegistry) remove(b Behavior) bool {
	if !removeBehavior(&r.all, b) {
		return false
	}
	for c := range r.byCap {
		removeBehavior(&r.byCap[c], b)
	}
	return true
}

func (r *behaviorRegistry) has(c Capability) bool {
	return len(r.byCap[c]) > 0
}

// hasEnabled reports whether any behavior with capability c is enabled.
func (r *behaviorRegistry) hasEnabled(c Capability) bool {
	for _, b := range r.byCap[c] {
		if b.Enabled() {
			return true
		}
	}
	return false
}

// removeBehavior deletes b from *s, keeping order and clearing the vacated tail slot.
func removeBehavior(s *[]Behavior, b Behavior) bool {
	list := *s
	for i, x := range list {
		if x == b {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			*s = list[:len(list)-1]
			return true
		}
	}
	return false
}

// --- Node behavior API ---

// AddBehavior attaches b to the node and files it under every capability it
// implements. Attaching the same behavior twice is a no-op. Layout is marked
// dirty afterwards.
func (n *Node) AddBehavior(b Behavior) {
	if b == nil {
		panic("arbor: cannot add nil behavior")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddBehavior")
	}
	if !n.behaviors.add(b) {
		return
	}
	if a, ok := b.(Attacher); ok {
		a.OnAttach(n)
	}
	if rs, ok := b.(ResourceSubscriber); ok {
		if s := n.scene(); s != nil {
			s.resources.Track(rs.Resource(), rs)
		}
	}
	n.MarkLayoutDirty()
}

// RemoveBehavior detaches b. No-op if b is not attached to this node.
func (n *Node) RemoveBehavior(b Behavior) {
	if !n.behaviors.remove(b) {
		return
	}
	// Mark before detaching so the behavior's own node pointer is still valid
	// for anything it does in response.
	n.MarkLayoutDirty()
	if rs, ok := b.(ResourceSubscriber); ok {
		if s := n.scene(); s != nil {
			s.resources.Untrack(rs.Resource(), rs)
		}
	}
	if a, ok := b.(Attacher); ok {
		a.OnDetach(n)
	}
}

// Behaviors returns the behaviors implementing capability c, in registration
// order. Disabled behaviors are included; callers filter with Enabled. The
// returned slice MUST NOT be mutated by the caller.
func (n *Node) Behaviors(c Capability) []Behavior {
	if c >= capabilityCount {
		return nil
	}
	return n.behaviors.byCap[c]
}

// AllBehaviors returns every attached behavior in registration order.
func (n *Node) AllBehaviors() []Behavior {
	return n.behaviors.all
}

// HasCapability reports whether any attached behavior implements c,
// enabled or not.
func (n *Node) HasCapability(c Capability) bool {
	return c < capabilityCount && n.behaviors.has(c)
}

// IsBehaviorActive reports whether b is enabled and attached to a node that
// is active in the hierarchy.
func IsBehaviorActive(n *Node, b Behavior) bool {
	return b.Enabled() && IsActiveAndEnabled(n)
}
