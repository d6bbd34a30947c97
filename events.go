package arbor

// PointerContext carries pointer event data passed to pointer callbacks.
type PointerContext struct {
	Type      EventType
	Node      *Node        // the node under the pointer (or the node the event is about), nil if none
	EntityID  uint32       // the hit node's EntityID (for ECS bridging)
	UserData  any          // the hit node's UserData
	GlobalX   float64      // pointer X in world coordinates
	GlobalY   float64      // pointer Y in world coordinates
	LocalX    float64      // pointer X in the node's local coordinates
	LocalY    float64      // pointer Y in the node's local coordinates
	Button    MouseButton  // which mouse button is involved
	PointerID int          // 0 = mouse, 1-9 = touch contacts
	Modifiers KeyModifiers // keyboard modifier keys held during the event
}

// DragContext carries drag event data passed to drag callbacks.
type DragContext struct {
	PointerContext
	StartX float64 // world X where the drag began
	StartY float64 // world Y where the drag began
	DeltaX float64 // X movement since the previous drag event
	DeltaY float64 // Y movement since the previous drag event
	// Direction is the dominant direction of the movement that started the
	// drag. Only set on EventDragStart.
	Direction MoveDirection
}

// --- Behavior capabilities ---

// PointerEnterHandler receives EventPointerEnter.
type PointerEnterHandler interface {
	OnPointerEnter(ctx PointerContext)
}

// PointerExitHandler receives EventPointerExit.
type PointerExitHandler interface {
	OnPointerExit(ctx PointerContext)
}

// PointerDownHandler receives EventPointerDown.
type PointerDownHandler interface {
	OnPointerDown(ctx PointerContext)
}

// PointerUpHandler receives EventPointerUp.
type PointerUpHandler interface {
	OnPointerUp(ctx PointerContext)
}

// PointerMoveHandler receives EventPointerMove.
type PointerMoveHandler interface {
	OnPointerMove(ctx PointerContext)
}

// ClickHandler receives EventClick.
type ClickHandler interface {
	OnClick(ctx PointerContext)
}

// DragStartHandler receives EventDragStart.
type DragStartHandler interface {
	OnDragStart(ctx DragContext)
}

// DragHandler receives EventDrag.
type DragHandler interface {
	OnDrag(ctx DragContext)
}

// DragEndHandler receives EventDragEnd.
type DragEndHandler interface {
	OnDragEnd(ctx DragContext)
}

func isPointerReceiver(b Behavior) bool {
	switch b.(type) {
	case PointerEnterHandler, PointerExitHandler, PointerDownHandler,
		PointerUpHandler, PointerMoveHandler, ClickHandler,
		DragStartHandler, DragHandler, DragEndHandler:
		return true
	}
	return false
}

// PointerFuncs is a behavior built from plain functions. Nil fields are
// skipped.
type PointerFuncs struct {
	BehaviorBase
	Enter     func(PointerContext)
	Exit      func(PointerContext)
	Down      func(PointerContext)
	Up        func(PointerContext)
	Move      func(PointerContext)
	Click     func(PointerContext)
	DragStart func(DragContext)
	Drag      func(DragContext)
	DragEnd   func(DragContext)
}

func (p *PointerFuncs) OnPointerEnter(ctx PointerContext) { callPointer(p.Enter, ctx) }
func (p *PointerFuncs) OnPointerExit(ctx PointerContext)  { callPointer(p.Exit, ctx) }
func (p *PointerFuncs) OnPointerDown(ctx PointerContext)  { callPointer(p.Down, ctx) }
func (p *PointerFuncs) OnPointerUp(ctx PointerContext)    { callPointer(p.Up, ctx) }
func (p *PointerFuncs) OnPointerMove(ctx PointerContext)  { callPointer(p.Move, ctx) }
func (p *PointerFuncs) OnClick(ctx PointerContext)        { callPointer(p.Click, ctx) }
func (p *PointerFuncs) OnDragStart(ctx DragContext)       { callDrag(p.DragStart, ctx) }
func (p *PointerFuncs) OnDrag(ctx DragContext)            { callDrag(p.Drag, ctx) }
func (p *PointerFuncs) OnDragEnd(ctx DragContext)         { callDrag(p.DragEnd, ctx) }

func callPointer(fn func(PointerContext), ctx PointerContext) {
	if fn != nil {
		fn(ctx)
	}
}

func callDrag(fn func(DragContext), ctx DragContext) {
	if fn != nil {
		fn(ctx)
	}
}

// deliverPointer hands ctx to every enabled pointer receiver on n that
// handles ctx.Type. Nodes without the capability are skipped silently, as
// are inactive and disposed nodes.
func deliverPointer(n *Node, ctx PointerContext) {
	if !IsActiveAndEnabled(n) {
		return
	}
	for _, b := range n.behaviors.byCap[CapPointerReceiver] {
		if !b.Enabled() {
			continue
		}
		switch ctx.Type {
		case EventPointerEnter:
			if h, ok := b.(PointerEnterHandler); ok {
				h.OnPointerEnter(ctx)
			}
		case EventPointerExit:
			if h, ok := b.(PointerExitHandler); ok {
				h.OnPointerExit(ctx)
			}
		case EventPointerDown:
			if h, ok := b.(PointerDownHandler); ok {
				h.OnPointerDown(ctx)
			}
		case EventPointerUp:
			if h, ok := b.(PointerUpHandler); ok {
				h.OnPointerUp(ctx)
			}
		case EventPointerMove:
			if h, ok := b.(PointerMoveHandler); ok {
				h.OnPointerMove(ctx)
			}
		case EventClick:
			if h, ok := b.(ClickHandler); ok {
				h.OnClick(ctx)
			}
		}
	}
}

func deliverDrag(n *Node, ctx DragContext) {
	if !IsActiveAndEnabled(n) {
		return
	}
	for _, b := range n.behaviors.byCap[CapPointerReceiver] {
		if !b.Enabled() {
			continue
		}
		switch ctx.Type {
		case EventDragStart:
			if h, ok := b.(DragStartHandler); ok {
				h.OnDragStart(ctx)
			}
		case EventDrag:
			if h, ok := b.(DragHandler); ok {
				h.OnDrag(ctx)
			}
		case EventDragEnd:
			if h, ok := b.(DragEndHandler); ok {
				h.OnDragEnd(ctx)
			}
		}
	}
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type handlerRegistry struct {
	pointer [eventTypeCount][]pointerHandler
	drag    [eventTypeCount][]dragHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice is
// a no-op. A callback may remove itself, or another callback, while its
// event is firing; the dispatch in progress still runs the callbacks it
// started with.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	if isDragEvent(h.event) {
		h.reg.drag[h.event] = removeHandler(h.reg.drag[h.event], h.id, func(d dragHandler) uint32 { return d.id })
		return
	}
	h.reg.pointer[h.event] = removeHandler(h.reg.pointer[h.event], h.id, func(p pointerHandler) uint32 { return p.id })
}

// removeHandler returns s without the handler id. The result is a new slice
// so a dispatch ranging over s, which may be what is calling Remove, keeps
// seeing every handler it started with.
func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			out := make([]T, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

func isDragEvent(ev EventType) bool {
	return ev == EventDragStart || ev == EventDrag || ev == EventDragEnd
}

func (r *handlerRegistry) addPointer(ev EventType, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	r.pointer[ev] = append(r.pointer[ev], pointerHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: ev}
}

func (r *handlerRegistry) addDrag(ev EventType, fn func(DragContext)) CallbackHandle {
	r.nextID++
	r.drag[ev] = append(r.drag[ev], dragHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: ev}
}

// --- Scene-level event registration ---

// OnPointerEnter registers a scene-level callback fired for every node that
// joins a pointer's hovered set.
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return s.handlers.addPointer(EventPointerEnter, fn)
}

// OnPointerExit registers a scene-level callback fired for every node that
// leaves a pointer's hovered set.
func (s *Scene) OnPointerExit(fn func(PointerContext)) CallbackHandle {
	return s.handlers.addPointer(EventPointerExit, fn)
}

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return s.handlers.addPointer(EventPointerDown, fn)
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return s.handlers.addPointer(EventPointerUp, fn)
}

// OnPointerMove registers a scene-level callback for pointer move events.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return s.handlers.addPointer(EventPointerMove, fn)
}

// OnClick registers a scene-level callback for click events.
func (s *Scene) OnClick(fn func(PointerContext)) CallbackHandle {
	return s.handlers.addPointer(EventClick, fn)
}

// OnDragStart registers a scene-level callback for drag start events.
func (s *Scene) OnDragStart(fn func(DragContext)) CallbackHandle {
	return s.handlers.addDrag(EventDragStart, fn)
}

// OnDrag registers a scene-level callback for drag events.
func (s *Scene) OnDrag(fn func(DragContext)) CallbackHandle {
	return s.handlers.addDrag(EventDrag, fn)
}

// OnDragEnd registers a scene-level callback for drag end events.
func (s *Scene) OnDragEnd(fn func(DragContext)) CallbackHandle {
	return s.handlers.addDrag(EventDragEnd, fn)
}

// --- ECS bridge ---

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	PointerID int
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	Modifiers KeyModifiers
	// Drag fields (valid for EventDragStart, EventDrag, EventDragEnd)
	StartX    float64
	StartY    float64
	DeltaX    float64
	DeltaY    float64
	Direction MoveDirection
}

// --- Event dispatch ---

func (s *Scene) pointerContext(ev EventType, node *Node, ps *PointerState) PointerContext {
	ctx := PointerContext{
		Type:      ev,
		Node:      node,
		GlobalX:   ps.X,
		GlobalY:   ps.Y,
		Button:    ps.button,
		PointerID: ps.ID,
		Modifiers: s.mods,
	}
	if node != nil {
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(ps.X, ps.Y)
		ctx.EntityID = node.EntityID
		ctx.UserData = node.UserData
	}
	return ctx
}

// firePointer is the scene's hover Dispatcher and the path for every
// non-drag pointer event: node behaviors, then scene callbacks, then the
// ECS bridge.
func (s *Scene) firePointer(ev EventType, node *Node, ps *PointerState) {
	ctx := s.pointerContext(ev, node, ps)
	deliverPointer(node, ctx)
	for _, h := range s.handlers.pointer[ev] {
		h.fn(ctx)
	}
	s.emitInteractionEvent(DragContext{PointerContext: ctx})
}

func (s *Scene) fireDrag(ev EventType, node *Node, ps *PointerState, dx, dy float64, dir MoveDirection) {
	ctx := DragContext{
		PointerContext: s.pointerContext(ev, node, ps),
		StartX:         ps.startX,
		StartY:         ps.startY,
		DeltaX:         dx,
		DeltaY:         dy,
		Direction:      dir,
	}
	deliverDrag(node, ctx)
	for _, h := range s.handlers.drag[ev] {
		h.fn(ctx)
	}
	s.emitInteractionEvent(ctx)
}

func (s *Scene) emitInteractionEvent(ctx DragContext) {
	if s.store == nil || ctx.Node == nil || ctx.EntityID == 0 {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Type:      ctx.Type,
		EntityID:  ctx.EntityID,
		PointerID: ctx.PointerID,
		GlobalX:   ctx.GlobalX,
		GlobalY:   ctx.GlobalY,
		LocalX:    ctx.LocalX,
		LocalY:    ctx.LocalY,
		Button:    ctx.Button,
		Modifiers: ctx.Modifiers,
		StartX:    ctx.StartX,
		StartY:    ctx.StartY,
		DeltaX:    ctx.DeltaX,
		DeltaY:    ctx.DeltaY,
		Direction: ctx.Direction,
	})
}
