// Package ecs provides ECS adapters for arbor.
package ecs

import (
	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for arbor interaction events.
// Subscribe to this in your ECS systems to receive hover, pointer and drag
// events.
var InteractionEventType = events.NewEventType[arbor.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) arbor.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event arbor.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// HoverSet mirrors, per pointer, which entities are hovered. It is fed by
// the enter and exit events of InteractionEventType, so it is current after
// each ProcessEvents.
type HoverSet struct {
	hovered map[int]map[uint32]struct{}
}

// NewHoverSet subscribes a HoverSet to world's interaction events.
func NewHoverSet(world donburi.World) *HoverSet {
	h := &HoverSet{hovered: make(map[int]map[uint32]struct{})}
	InteractionEventType.Subscribe(world, h.handle)
	return h
}

func (h *HoverSet) handle(_ donburi.World, e arbor.InteractionEvent) {
	switch e.Type {
	case arbor.EventPointerEnter:
		set := h.hovered[e.PointerID]
		if set == nil {
			set = make(map[uint32]struct{})
			h.hovered[e.PointerID] = set
		}
		set[e.EntityID] = struct{}{}
	case arbor.EventPointerExit:
		set := h.hovered[e.PointerID]
		delete(set, e.EntityID)
		if len(set) == 0 {
			delete(h.hovered, e.PointerID)
		}
	}
}

// IsHovered reports whether any pointer hovers entityID.
func (h *HoverSet) IsHovered(entityID uint32) bool {
	for _, set := range h.hovered {
		if _, ok := set[entityID]; ok {
			return true
		}
	}
	return false
}

// Count returns how many entities pointerID hovers.
func (h *HoverSet) Count(pointerID int) int {
	return len(h.hovered[pointerID])
}
