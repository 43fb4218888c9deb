package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/bramble"
)

// DispatchEventType is the Donburi event type for dispatch records.
// Subscribe to this in your ECS systems to see every event the dispatcher
// handles.
var DispatchEventType = events.NewEventType[bramble.DispatchRecord]()

// HoverEventType receives only the records whose dispatch changed the
// hovered widget.
var HoverEventType = events.NewEventType[bramble.DispatchRecord]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Records
// are published to DispatchEventType, and additionally to HoverEventType
// when the hover changed. Consume them with events.Subscribe and
// ProcessEvents.
func NewDonburiStore(world donburi.World) bramble.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(rec bramble.DispatchRecord) {
	DispatchEventType.Publish(s.world, rec)
	if rec.Entered != rec.Left {
		HoverEventType.Publish(s.world, rec)
	}
}
