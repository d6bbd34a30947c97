package arbor

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree, the layout
// scheduler, hover routing, input state and the resource tracker.
type Scene struct {
	root      *Node
	cfg       Config
	layout    *LayoutScheduler
	router    *HoverRouter
	resources *ResourceTracker
	backend   HitBackend
	hitMode   HitQueryMode
	store     EntityStore
	logger    *log.Logger
	debug     bool

	// Input state
	handlers     handlerRegistry
	captured     map[int]*Node
	hitBuf       []HitCandidate
	mods         KeyModifiers
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	script       *ScriptRunner
	noPoll       bool

	// Viewport size last reported by the game loop.
	viewW, viewH int
}

// NewScene creates a scene with DefaultConfig and an empty root node.
func NewScene() *Scene {
	return NewSceneWithConfig(DefaultConfig())
}

// NewSceneWithConfig creates a scene using cfg. Invalid fields fall back to
// their defaults; validate with Config.Validate first to catch them.
func NewSceneWithConfig(cfg Config) *Scene {
	s := &Scene{
		root:      NewNode("root"),
		layout:    NewLayoutScheduler(),
		resources: NewResourceTracker(),
		captured:  make(map[int]*Node),
	}
	s.root.owner = s
	s.router = NewHoverRouter(s.firePointer)
	s.backend = NewTreeBackend(s.root)
	s.logger = newLogger(os.Stderr, log.InfoLevel)
	s.applyConfig(cfg)
	return s
}

// applyConfig installs cfg, repairing fields Validate would reject.
func (s *Scene) applyConfig(cfg Config) {
	def := DefaultConfig()
	if cfg.DragDeadZone < 0 {
		cfg.DragDeadZone = def.DragDeadZone
	}
	if cfg.MoveDeadZone < 0 {
		cfg.MoveDeadZone = def.MoveDeadZone
	}
	if cfg.MaxHits <= 0 {
		cfg.MaxHits = def.MaxHits
	}
	s.cfg = cfg
	s.hitMode = cfg.hitQueryMode()
	if lvl, err := cfg.level(); err == nil {
		s.logger.SetLevel(lvl)
	}
	s.SetDebugMode(cfg.Debug)
}

// SetConfig replaces the scene's configuration.
func (s *Scene) SetConfig(cfg Config) {
	s.applyConfig(cfg)
}

// Config returns the configuration in effect.
func (s *Scene) Config() Config {
	return s.cfg
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Layout returns the scene's layout scheduler.
func (s *Scene) Layout() *LayoutScheduler {
	return s.layout
}

// Router returns the scene's hover router.
func (s *Scene) Router() *HoverRouter {
	return s.router
}

// Resources returns the scene's resource tracker. Set its source with
// Resources().SetSource.
func (s *Scene) Resources() *ResourceTracker {
	return s.resources
}

// SetHitBackend replaces the hit-test backend. nil restores the built-in
// TreeBackend over the scene's root.
func (s *Scene) SetHitBackend(b HitBackend) {
	if b == nil {
		b = NewTreeBackend(s.root)
	}
	s.backend = b
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetLayoutHooks installs layout observability hooks. nil restores no-ops.
func (s *Scene) SetLayoutHooks(h LayoutHooks) {
	s.layout.SetHooks(h)
}

// SetLogger replaces the scene's logger. nil is ignored.
func (s *Scene) SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	s.logger = l
	if s.debug {
		debugLogger = l
	}
}

// Logger returns the scene's logger.
func (s *Scene) Logger() *log.Logger {
	return s.logger
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and
// per-frame layout stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		s.logger.SetLevel(log.DebugLevel)
		debugLogger = s.logger
	} else if lvl, err := s.cfg.level(); err == nil {
		s.logger.SetLevel(lvl)
	}
}

// SetViewport resizes the root to w x h. The game loop calls it from
// ebiten's Layout; headless callers may call it directly.
func (s *Scene) SetViewport(w, h int) {
	if w == s.viewW && h == s.viewH {
		return
	}
	s.viewW, s.viewH = w, h
	s.root.Rect = Rect{Width: float64(w), Height: float64(h)}
	s.root.MarkLayoutDirty()
}

// ForceRebuild lays out the subtree under n immediately instead of waiting
// for the next Update.
func (s *Scene) ForceRebuild(n *Node) {
	s.layout.ForceRebuild(n)
}

// Update runs one frame: pending layout rebuilds first, so hit testing sees
// final rects, then pointer input.
func (s *Scene) Update() {
	s.layout.Process()
	if s.debug {
		s.logLayoutStats()
	}
	if s.script != nil {
		s.script.step(s)
	}
	s.processInput()
}

// HitTest returns the node the pointer would target at world (x, y), or nil.
func (s *Scene) HitTest(x, y float64) *Node {
	if s.hitMode == HitQueryCapped {
		s.hitBuf = s.backend.QueryCapped(x, y, s.cfg.MaxHits, s.hitBuf[:0])
	} else {
		s.hitBuf = s.backend.QueryAll(x, y, s.hitBuf[:0])
	}
	hit := RankHits(s.hitBuf)
	clear(s.hitBuf)
	return hit.Node
}

// adoptSubtree is called after n joins the scene's tree.
func (s *Scene) adoptSubtree(n *Node) {
	s.walkResourceSubscribers(n, s.resources.Track)
}

// orphanSubtree is called before n leaves the scene's tree. Pointers move
// out of the subtree and its resource subscribers are untracked.
func (s *Scene) orphanSubtree(n *Node) {
	s.router.detachSubtree(n)
	for id, c := range s.captured {
		if isAncestor(n, c) {
			delete(s.captured, id)
		}
	}
	s.walkResourceSubscribers(n, s.resources.Untrack)
}

func (s *Scene) walkResourceSubscribers(n *Node, fn func(ResourceID, ResourceSubscriber)) {
	for _, b := range n.behaviors.byCap[CapResourceSubscriber] {
		rs := b.(ResourceSubscriber)
		fn(rs.Resource(), rs)
	}
	for _, c := range n.children {
		s.walkResourceSubscribers(c, fn)
	}
}
