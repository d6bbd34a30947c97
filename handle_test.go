package arbor

import "testing"

func TestZeroHandle(t *testing.T) {
	var h Handle
	if !h.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if h.Live() || Resolve(h) != nil {
		t.Error("zero handle should never resolve")
	}
}

func TestHandleOutlivesNode(t *testing.T) {
	n := NewNode("n")
	h := n.Handle()
	set := map[Handle]string{h: "n"}

	n.Dispose()

	if Resolve(h) != nil {
		t.Error("handle of a disposed node should not resolve")
	}
	if set[h] != "n" {
		t.Error("handle should stay usable as a map key")
	}
	if n.Handle() != h {
		t.Error("Handle() should not change after Dispose")
	}
}

func TestHandleSlotReuse(t *testing.T) {
	a := NewNode("a")
	old := a.Handle()
	a.Dispose()

	b := NewNode("b")
	if b.Handle() == old {
		t.Fatal("a recycled slot must carry a new generation")
	}
	if Resolve(old) != nil {
		t.Error("stale handle resolved after its slot was reused")
	}
	if Resolve(b.Handle()) != b {
		t.Error("new handle should resolve to the new node")
	}
}

func TestArenaRelease(t *testing.T) {
	var a nodeArena
	n := &Node{Name: "x"}
	h := a.mint(n)
	if a.resolve(h) != n {
		t.Fatal("minted handle should resolve")
	}

	a.release(h)
	a.release(h) // second release is ignored
	if len(a.free) != 1 {
		t.Errorf("free list = %d, want 1", len(a.free))
	}

	h2 := a.mint(n)
	if h2.index != h.index || h2.gen != h.gen+1 {
		t.Errorf("reused handle = %+v, want index %d gen %d", h2, h.index, h.gen+1)
	}
}
