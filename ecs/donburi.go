// Package ecs provides ECS adapters for osier.
package ecs

import (
	"github.com/phanxgames/osier"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for osier interaction
// events. Subscribe to this in your ECS systems to receive click and drag
// events.
var InteractionEventType = events.NewEventType[osier.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) osier.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event osier.Event) {
	InteractionEventType.Publish(s.world, event)
}
