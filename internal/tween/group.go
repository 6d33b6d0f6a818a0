package tween

import "time"

// Group advances a set of tweens together. The owner calls Update once per frame.
type Group struct {
	tweens []*Tween
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Add starts tracking a tween. Idle tweens are started.
func (g *Group) Add(t *Tween) *Tween {
	if t.State() == StateIdle {
		t.Start()
	}
	g.tweens = append(g.tweens, t)
	return t
}

// Update advances every tween and drops those that are no longer running.
// Tweens added from callbacks during Update first advance on the next call.
func (g *Group) Update(dt time.Duration) {
	current := g.tweens
	g.tweens = nil

	kept := current[:0]
	for _, t := range current {
		if t.Update(dt) {
			kept = append(kept, t)
		}
	}
	g.tweens = append(kept, g.tweens...)
}

// Active counts running tweens with the given name. An empty name counts all.
func (g *Group) Active(name string) int {
	n := 0
	for _, t := range g.tweens {
		if t.Running() && (name == "" || t.Name() == name) {
			n++
		}
	}
	return n
}

// Len returns the number of tracked tweens, including stopped ones not yet dropped.
func (g *Group) Len() int {
	return len(g.tweens)
}

// StopAll cancels every running tween.
func (g *Group) StopAll() {
	for _, t := range g.tweens {
		t.Stop()
	}
}
