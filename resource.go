package arbor

// ResourceID names a shared resource (a font atlas, an image page) whose
// rebuilds invalidate the layout of nodes that measured against it.
type ResourceID string

// ResourceSubscriber is a behavior that wants to hear when its resource is
// rebuilt. Attaching one to a node inside a scene tracks it automatically.
type ResourceSubscriber interface {
	Behavior
	Resource() ResourceID
	ResourceRebuilt(id ResourceID)
}

// ResourceSource is the outside world's rebuild notification. Subscribe
// returns the function that cancels the subscription.
type ResourceSource interface {
	SubscribeRebuilt(fn func(ResourceID)) (unsubscribe func())
}

// ResourceTracker maps resources to the subscribers that depend on them. It
// holds at most one subscription on its source: taken when the first
// subscriber is tracked, dropped when the last one leaves.
type ResourceTracker struct {
	source      ResourceSource
	subs        map[ResourceID][]ResourceSubscriber
	total       int
	unsubscribe func()
	scratch     []ResourceSubscriber
}

// NewResourceTracker returns a tracker with no source.
func NewResourceTracker() *ResourceTracker {
	return &ResourceTracker{subs: make(map[ResourceID][]ResourceSubscriber)}
}

// SetSource switches the rebuild source, moving an existing subscription
// over to it.
func (t *ResourceTracker) SetSource(src ResourceSource) {
	t.release()
	t.source = src
	if t.total > 0 {
		t.acquire()
	}
}

// Track adds sub under id. Tracking the same pair twice is a no-op.
func (t *ResourceTracker) Track(id ResourceID, sub ResourceSubscriber) {
	list := t.subs[id]
	for _, s := range list {
		if s == sub {
			return
		}
	}
	if t.total == 0 {
		t.acquire()
	}
	t.subs[id] = append(list, sub)
	t.total++
}

// Untrack removes sub from id. The source subscription is dropped when no
// subscribers remain.
func (t *ResourceTracker) Untrack(id ResourceID, sub ResourceSubscriber) {
	list := t.subs[id]
	for i, s := range list {
		if s != sub {
			continue
		}
		copy(list[i:], list[i+1:])
		list[len(list)-1] = nil
		list = list[:len(list)-1]
		if len(list) == 0 {
			delete(t.subs, id)
		} else {
			t.subs[id] = list
		}
		t.total--
		if t.total == 0 {
			t.release()
		}
		return
	}
}

// NotifyRebuilt tells every enabled subscriber of id that it was rebuilt,
// in tracking order. Subscribers may untrack themselves while being notified.
func (t *ResourceTracker) NotifyRebuilt(id ResourceID) {
	t.scratch = append(t.scratch[:0], t.subs[id]...)
	for _, s := range t.scratch {
		if s.Enabled() {
			s.ResourceRebuilt(id)
		}
	}
	clear(t.scratch)
}

// Count returns the number of subscribers tracked under id.
func (t *ResourceTracker) Count(id ResourceID) int {
	return len(t.subs[id])
}

// Subscribed reports whether the tracker currently holds a subscription on
// its source.
func (t *ResourceTracker) Subscribed() bool {
	return t.unsubscribe != nil
}

func (t *ResourceTracker) acquire() {
	if t.source == nil || t.unsubscribe != nil {
		return
	}
	t.unsubscribe = t.source.SubscribeRebuilt(t.NotifyRebuilt)
}

func (t *ResourceTracker) release() {
	if t.unsubscribe == nil {
		return
	}
	t.unsubscribe()
	t.unsubscribe = nil
}

// ResourceBus is an in-process ResourceSource: whoever rebuilds a resource
// calls Rebuilt and every subscriber hears about it.
type ResourceBus struct {
	nextID uint32
	subs   []busSub
}

type busSub struct {
	id uint32
	fn func(ResourceID)
}

// SubscribeRebuilt implements ResourceSource.
func (b *ResourceBus) SubscribeRebuilt(fn func(ResourceID)) func() {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, busSub{id: id, fn: fn})
	return func() {
		for i := range b.subs {
			if b.subs[i].id == id {
				copy(b.subs[i:], b.subs[i+1:])
				b.subs[len(b.subs)-1] = busSub{}
				b.subs = b.subs[:len(b.subs)-1]
				return
			}
		}
	}
}

// Rebuilt announces that id was rebuilt.
func (b *ResourceBus) Rebuilt(id ResourceID) {
	for _, s := range b.subs {
		s.fn(id)
	}
}

// Subscribers returns the number of live subscriptions.
func (b *ResourceBus) Subscribers() int {
	return len(b.subs)
}

// MeasureFunc measures content along one axis.
type MeasureFunc func(axis Axis) SizeHints

// MeasuredBox is a layout element whose hints come from Measure, typically
// text measured against a font atlas. When its resource is rebuilt the
// measurement is stale, so the node's layout is marked dirty.
type MeasuredBox struct {
	BehaviorBase
	ResourceID ResourceID
	Measure    MeasureFunc

	hints [2]SizeHints
}

// NewMeasuredBox returns a box measured by fn against resource id.
func NewMeasuredBox(id ResourceID, fn MeasureFunc) *MeasuredBox {
	return &MeasuredBox{ResourceID: id, Measure: fn}
}

// CalculateLayoutInput re-measures along axis.
func (m *MeasuredBox) CalculateLayoutInput(axis Axis) {
	if m.Measure != nil {
		m.hints[axis] = m.Measure(axis)
	}
}

// LayoutSize returns the last measurement for axis.
func (m *MeasuredBox) LayoutSize(axis Axis) SizeHints {
	return m.hints[axis]
}

// Resource implements ResourceSubscriber.
func (m *MeasuredBox) Resource() ResourceID {
	return m.ResourceID
}

// ResourceRebuilt implements ResourceSubscriber.
func (m *MeasuredBox) ResourceRebuilt(ResourceID) {
	if m.node != nil {
		m.node.MarkLayoutDirty()
	}
}
