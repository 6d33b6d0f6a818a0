// Package ball binds notes to entities in a donburi world. The host owns
// the loop: it spawns balls, publishes events at them and calls
// System.Update once per frame.
package ball

import "time"

// VisualObject is the lifecycle a host drives for anything it renders.
type VisualObject interface {
	// OnCreate builds the object's visuals. It runs once, after the
	// entity's attributes are set.
	OnCreate() error
	// OnAttributeChanged reacts to a changed entity attribute.
	OnAttributeChanged(name string) error
	// OnTick advances the object by one frame.
	OnTick(dt time.Duration) error
	// OnDestroy releases the object's visuals.
	OnDestroy()
}
