package ball

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/Faultbox/tonefield/internal/note"
	"github.com/Faultbox/tonefield/internal/scene"
)

// CreatedEventName is the name hosts listen on for new balls.
const CreatedEventName = "ball-created"

// Created announces a ball whose visuals are ready, so the host can hand
// it to a controller.
type Created struct {
	ID      donburi.Entity
	Element *scene.Group
	Grab    bool
	Hand    string
}

// AttributeChanged tells a ball one of its attributes was written.
type AttributeChanged struct {
	Target donburi.Entity
	Name   string
}

// Hit strikes a ball's note.
type Hit struct {
	Target donburi.Entity
	note.HitEvent
}

// Highlight brightens a ball's note.
type Highlight struct {
	Target donburi.Entity
}

// UnHighlight restores a ball's note.
type UnHighlight struct {
	Target donburi.Entity
}

var (
	CreatedEvent          = events.NewEventType[Created]()
	AttributeChangedEvent = events.NewEventType[AttributeChanged]()
	HitEvent              = events.NewEventType[Hit]()
	HighlightEvent        = events.NewEventType[Highlight]()
	UnHighlightEvent      = events.NewEventType[UnHighlight]()
)
