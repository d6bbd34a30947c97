package arbor

import (
	"slices"
	"time"
)

// LayoutScheduler rebuilds layout for dirty subtrees. Dirty marks are
// collapsed per effective root (see MarkDirty) and drained once per frame by
// Process. Each rebuild runs four passes in fixed order:
//
//	calculate horizontal, control horizontal, calculate vertical, control vertical
//
// Calculate passes are post-order (children first) so an element can read
// its children's hints. Control passes are pre-order so a group sizes its
// children from its own, already final, rect.
//
// A LayoutScheduler is not safe for concurrent use.
type LayoutScheduler struct {
	pool       rebuildPool
	pending    []*rebuildRecord
	spare      []*rebuildRecord
	pendingSet map[Handle]struct{}
	hooks      LayoutHooks
	stats      layoutStats
}

// NewLayoutScheduler returns an empty scheduler with no-op hooks.
func NewLayoutScheduler() *LayoutScheduler {
	return &LayoutScheduler{
		pendingSet: make(map[Handle]struct{}),
		hooks:      noopLayoutHooks{},
	}
}

// SetHooks installs observability hooks. nil restores the no-op hooks.
func (ls *LayoutScheduler) SetHooks(h LayoutHooks) {
	if h == nil {
		h = noopLayoutHooks{}
	}
	ls.hooks = h
}

// layoutStats counts scheduler work since the last resetStats.
type layoutStats struct {
	marks    int
	absorbed int
	rebuilds int
	stale    int
	calls    int
	elapsed  time.Duration
}

func (ls *LayoutScheduler) resetStats() layoutStats {
	s := ls.stats
	ls.stats = layoutStats{}
	return s
}

// --- Pooled traversal records ---

// rebuildRecord is the state of one scheduled or forced rebuild. The key is
// captured from the root once, at acquisition, and stays the record's
// identity after the root pointer is cleared on release.
type rebuildRecord struct {
	key   Handle
	root  *Node
	depth int
	calls int
}

// rebuildPool is a free list of records so steady-state frames do not
// allocate.
type rebuildPool struct {
	free    []*rebuildRecord
	created int
}

func (p *rebuildPool) acquire(root *Node) *rebuildRecord {
	var r *rebuildRecord
	if k := len(p.free); k > 0 {
		r = p.free[k-1]
		p.free[k-1] = nil
		p.free = p.free[:k-1]
	} else {
		r = &rebuildRecord{}
		p.created++
	}
	r.key = root.handle
	r.root = root
	r.depth = 0
	r.calls = 0
	return r
}

func (p *rebuildPool) release(r *rebuildRecord) {
	r.root = nil
	p.free = append(p.free, r)
}

// --- Rebuild ---

// ForceRebuild runs the four layout passes on root immediately. It draws its
// own record, so it is safe to call from inside a SetLayout callback, and it
// neither consumes nor merges with a queued rebuild of the same root.
func (ls *LayoutScheduler) ForceRebuild(root *Node) {
	if root == nil || root.disposed {
		return
	}
	rec := ls.pool.acquire(root)
	ls.rebuild(rec)
	ls.pool.release(rec)
}

// Process drains the queue: records are ordered by root depth (shallowest
// first, ties in mark order), each live root is rebuilt, and every record
// goes back to the pool. Roots disposed since they were marked are skipped.
// Marks made while draining are queued for the next call. Returns the number
// of rebuilds that ran.
func (ls *LayoutScheduler) Process() int {
	if len(ls.pending) == 0 {
		return 0
	}
	batch := ls.pending
	ls.pending = ls.spare[:0]
	clear(ls.pendingSet)

	for _, rec := range batch {
		rec.root = Resolve(rec.key)
		if rec.root != nil {
			rec.depth = rec.root.Depth()
		}
	}
	slices.SortStableFunc(batch, func(a, b *rebuildRecord) int {
		return a.depth - b.depth
	})

	ran := 0
	for _, rec := range batch {
		// Resolve again: an earlier rebuild in this batch may have disposed it.
		if rec.root = Resolve(rec.key); rec.root == nil {
			ls.stats.stale++
			ls.hooks.OnStaleSkipped(rec.key)
			continue
		}
		ls.rebuild(rec)
		ran++
	}
	for i, rec := range batch {
		ls.pool.release(rec)
		batch[i] = nil
	}
	ls.spare = batch[:0]
	return ran
}

func (ls *LayoutScheduler) rebuild(rec *rebuildRecord) {
	root := rec.root
	ls.hooks.OnRebuildStart(root)
	start := time.Now()

	active := IsActiveAndEnabled(root)
	for _, axis := range [2]Axis{AxisHorizontal, AxisVertical} {
		ls.calculate(rec, root, axis, active)
		ls.control(rec, root, axis, active)
	}

	elapsed := time.Since(start)
	ls.stats.rebuilds++
	ls.stats.calls += rec.calls
	ls.stats.elapsed += elapsed
	ls.hooks.OnRebuildComplete(root, rec.calls, elapsed)
}

// calculate is the post-order pass. A node with no enabled elements and no
// layout group prunes its whole subtree: nothing below it can influence a
// size the scheduler will read.
func (ls *LayoutScheduler) calculate(rec *rebuildRecord, n *Node, axis Axis, active bool) {
	if !active {
		return
	}
	if !n.behaviors.hasEnabled(CapLayoutElement) && !n.behaviors.has(CapLayoutGroup) {
		return
	}
	for _, child := range n.children {
		ls.calculate(rec, child, axis, child.active && !child.disposed)
	}
	for _, b := range n.behaviors.byCap[CapLayoutElement] {
		if b.Enabled() {
			b.(LayoutElement).CalculateLayoutInput(axis)
			rec.calls++
		}
	}
}

// control is the pre-order pass. Self controllers settle the node's own rect
// before groups lay out children inside it. A node without enabled
// controllers ends the descent; groups further down are roots of their own.
func (ls *LayoutScheduler) control(rec *rebuildRecord, n *Node, axis Axis, active bool) {
	if !active || !n.behaviors.hasEnabled(CapLayoutController) {
		return
	}
	for _, b := range n.behaviors.byCap[CapSelfController] {
		if b.Enabled() {
			b.(LayoutController).SetLayout(axis)
			rec.calls++
		}
	}
	for _, b := range n.behaviors.byCap[CapLayoutController] {
		if _, self := b.(SelfController); self {
			continue
		}
		if b.Enabled() {
			b.(LayoutController).SetLayout(axis)
			rec.calls++
		}
	}
	for _, child := range n.children {
		ls.control(rec, child, axis, child.active && !child.disposed)
	}
}
