package arbor

// HitBackend answers "what is under this world-space point". arbor does not
// care how; it only ranks what comes back. Implementations append to buf and
// return it, so callers can reuse one buffer across frames. Build candidates
// with NewHitCandidate; one without a handle is checked against its node's
// disposed flag instead.
type HitBackend interface {
	// QueryAll returns every hit at (x, y).
	QueryAll(x, y float64, buf []HitCandidate) []HitCandidate
	// QueryCapped returns at most max hits at (x, y), closest first.
	QueryCapped(x, y float64, max int, buf []HitCandidate) []HitCandidate
}

// HitQueryMode selects which HitBackend method a scene calls.
type HitQueryMode uint8

const (
	HitQueryAll    HitQueryMode = iota // QueryAll, then rank everything
	HitQueryCapped                     // QueryCapped with Config.MaxHits
)

// String returns "all" or "capped".
func (m HitQueryMode) String() string {
	if m == HitQueryCapped {
		return "capped"
	}
	return "all"
}

// TreeBackend hit-tests a node tree against node rects and HitShapes.
// Candidates come back topmost first: later siblings (after ZIndex sorting)
// and deeper nodes cover earlier ones. Distance is the candidate's rank from
// the top.
type TreeBackend struct {
	root  *Node
	order []hitEntry // painter order, reused across queries
}

type hitEntry struct {
	n      *Node
	ox, oy float64 // world origin of n
}

// NewTreeBackend returns a backend over the tree under root.
func NewTreeBackend(root *Node) *TreeBackend {
	return &TreeBackend{root: root}
}

// QueryAll implements HitBackend.
func (b *TreeBackend) QueryAll(x, y float64, buf []HitCandidate) []HitCandidate {
	return b.query(x, y, -1, buf)
}

// QueryCapped implements HitBackend.
func (b *TreeBackend) QueryCapped(x, y float64, max int, buf []HitCandidate) []HitCandidate {
	if max <= 0 {
		return buf
	}
	return b.query(x, y, max, buf)
}

func (b *TreeBackend) query(x, y float64, limit int, buf []HitCandidate) []HitCandidate {
	if b.root == nil || b.root.disposed {
		return buf
	}
	var px, py float64
	if b.root.Parent != nil {
		px, py = b.root.Parent.WorldOrigin()
	}
	b.order = b.collect(b.root, px, py, b.order[:0])

	found := 0
	// Iterate backward (reverse painter order): topmost node first.
	for i := len(b.order) - 1; i >= 0; i-- {
		e := b.order[i]
		if !containsLocal(e.n, x-e.ox, y-e.oy) {
			continue
		}
		buf = append(buf, NewHitCandidate(e.n, float64(found), found))
		found++
		if limit > 0 && found >= limit {
			break
		}
	}
	for i := range b.order {
		b.order[i] = hitEntry{}
	}
	return buf
}

// collect walks the tree in painter order (DFS, ZIndex-sorted), appending
// hit-testable nodes. Inactive or non-interactable nodes prune their subtree.
func (b *TreeBackend) collect(n *Node, px, py float64, out []hitEntry) []hitEntry {
	if !n.active || !n.Interactable || n.disposed {
		return out
	}
	ox, oy := px+n.Rect.X, py+n.Rect.Y
	if n.HitShape != nil || n.Rect.Width != 0 || n.Rect.Height != 0 {
		out = append(out, hitEntry{n: n, ox: ox, oy: oy})
	}
	if len(n.children) == 0 {
		return out
	}
	for _, child := range n.orderedChildren() {
		out = b.collect(child, ox, oy, out)
	}
	return out
}
