package arbor

import "time"

// LayoutHooks receives events from a LayoutScheduler. Install with
// Scene.SetLayoutHooks to feed metrics or tracing without arbor depending on
// any backend.
type LayoutHooks interface {
	// OnRebuildStart fires before the first pass of a rebuild.
	OnRebuildStart(root *Node)
	// OnRebuildComplete fires after the last pass with the number of
	// behavior calls made and the time spent.
	OnRebuildComplete(root *Node, calls int, elapsed time.Duration)
	// OnStaleSkipped fires when a queued root was disposed before draining.
	OnStaleSkipped(key Handle)
}

type noopLayoutHooks struct{}

func (noopLayoutHooks) OnRebuildStart(*Node)                        {}
func (noopLayoutHooks) OnRebuildComplete(*Node, int, time.Duration) {}
func (noopLayoutHooks) OnStaleSkipped(Handle)                       {}
