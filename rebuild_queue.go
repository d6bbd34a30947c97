package arbor

// MarkDirty schedules a layout rebuild for n's effective root.
//
// Starting at n's parent, the walk climbs while each ancestor is active and
// carries an enabled LayoutGroup; the last such ancestor is the effective
// root (n itself when the parent does not qualify). If the root is n and n
// has no enabled controller, nothing would react and the mark is dropped.
//
// Repeated marks of the same root before the next Process collapse into one
// rebuild. Reports whether a new rebuild was queued.
func (ls *LayoutScheduler) MarkDirty(n *Node) bool {
	if n == nil || n.disposed {
		return false
	}
	ls.stats.marks++
	root := n
	for p := n.Parent; p != nil; p = p.Parent {
		if !IsActiveAndEnabled(p) || !p.behaviors.hasEnabled(CapLayoutGroup) {
			break
		}
		root = p
	}
	if root == n && !IsActiveAndEnabled(n) {
		return false
	}
	if root == n && !n.behaviors.hasEnabled(CapLayoutController) {
		return false
	}
	return ls.enqueue(root)
}

// enqueue registers a record for root unless one with the same key is
// already pending, in which case the fresh record goes straight back to the
// pool.
func (ls *LayoutScheduler) enqueue(root *Node) bool {
	rec := ls.pool.acquire(root)
	if _, dup := ls.pendingSet[rec.key]; dup {
		ls.pool.release(rec)
		ls.stats.absorbed++
		return false
	}
	ls.pendingSet[rec.key] = struct{}{}
	ls.pending = append(ls.pending, rec)
	return true
}

// Len returns the number of pending rebuilds.
func (ls *LayoutScheduler) Len() int {
	return len(ls.pending)
}

// IsPending reports whether a rebuild rooted at n is queued.
func (ls *LayoutScheduler) IsPending(n *Node) bool {
	if n == nil {
		return false
	}
	_, ok := ls.pendingSet[n.handle]
	return ok
}

// Pending returns the handles of the queued roots in mark order.
func (ls *LayoutScheduler) Pending() []Handle {
	out := make([]Handle, len(ls.pending))
	for i, rec := range ls.pending {
		out[i] = rec.key
	}
	return out
}
