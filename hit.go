package arbor

import "slices"

// HitCandidate is one result of a hit-test query. It is built per query and
// consumed immediately by ranking.
type HitCandidate struct {
	Node     *Node
	Handle   Handle  // captured with Node; decides liveness during ranking when set
	Distance float64 // smaller is closer to the viewer
	Index    int     // discovery order within the query
}

// NoHit is returned by FindFirstValid when nothing usable was hit.
var NoHit = HitCandidate{Index: -1}

// Valid reports whether c is a real hit rather than NoHit.
func (c HitCandidate) Valid() bool {
	return c.Node != nil
}

// Live reports whether the candidate's node still exists. Candidates built
// without a handle fall back to the node's own disposed flag.
func (c HitCandidate) Live() bool {
	if c.Node == nil {
		return false
	}
	if c.Handle.IsZero() {
		return !c.Node.disposed
	}
	return c.Handle.Live()
}

// NewHitCandidate captures n's handle alongside it.
func NewHitCandidate(n *Node, distance float64, index int) HitCandidate {
	return HitCandidate{Node: n, Handle: n.handle, Distance: distance, Index: index}
}

// SortHits orders hits by ascending distance. Equal distances keep their
// slice order, which backends fill in discovery order.
func SortHits(hits []HitCandidate) {
	slices.SortStableFunc(hits, func(a, b HitCandidate) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
}

// FindFirstValid returns the first hit whose node is still live, or NoHit.
// An empty or fully stale batch is an ordinary result, not an error.
func FindFirstValid(hits []HitCandidate) HitCandidate {
	for _, h := range hits {
		if h.Live() {
			return h
		}
	}
	return NoHit
}

// RankHits sorts hits in place and returns the first live one.
func RankHits(hits []HitCandidate) HitCandidate {
	SortHits(hits)
	return FindFirstValid(hits)
}

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}
