// Package tween drives time-based value animations as explicit state machines.
//
// A Tween moves Idle → Running → Done, or to Stopped when cancelled. It only
// advances when Update is called, so the owner controls the clock.
package tween

import (
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// State is the lifecycle stage of a tween.
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StateDone
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Tween animates a single float from one value to another.
type Tween struct {
	name     string
	from, to float32
	duration time.Duration
	delay    time.Duration
	easing   ease.TweenFunc

	inner   *gween.Tween
	state   State
	elapsed time.Duration
	value   float32

	onUpdate   func(float32)
	onComplete func()
}

// New creates an idle tween. The name groups related tweens for counting.
func New(name string, from, to float32, duration time.Duration, easing ease.TweenFunc) *Tween {
	if easing == nil {
		easing = ease.Linear
	}
	if duration < 0 {
		duration = 0
	}
	return &Tween{
		name:     name,
		from:     from,
		to:       to,
		duration: duration,
		easing:   easing,
		value:    from,
	}
}

// WithDelay sets how long the tween waits after Start before moving.
func (t *Tween) WithDelay(d time.Duration) *Tween {
	if d < 0 {
		d = 0
	}
	t.delay = d
	return t
}

// OnUpdate registers a callback receiving each new value.
func (t *Tween) OnUpdate(fn func(float32)) *Tween {
	t.onUpdate = fn
	return t
}

// OnComplete registers a callback run once when the tween reaches its end.
// It is not run when the tween is stopped.
func (t *Tween) OnComplete(fn func()) *Tween {
	t.onComplete = fn
	return t
}

// Start moves the tween to Running from the beginning. Starting a finished
// or stopped tween restarts it.
func (t *Tween) Start() *Tween {
	t.inner = gween.New(t.from, t.to, float32(t.duration.Seconds()), t.easing)
	t.elapsed = 0
	t.value = t.from
	t.state = StateRunning
	return t
}

// Stop cancels a running tween. Its value stays where it was.
func (t *Tween) Stop() {
	if t.state == StateRunning {
		t.state = StateStopped
	}
}

// Update advances the tween by dt and reports whether it is still running.
func (t *Tween) Update(dt time.Duration) bool {
	if t.state != StateRunning {
		return false
	}

	t.elapsed += dt
	if t.elapsed < t.delay {
		return true
	}

	value, finished := t.inner.Set(float32((t.elapsed - t.delay).Seconds()))
	t.value = value
	if t.onUpdate != nil {
		t.onUpdate(value)
	}

	if finished {
		t.state = StateDone
		if t.onComplete != nil {
			t.onComplete()
		}
		return false
	}
	return true
}

// Name returns the tween's group name.
func (t *Tween) Name() string { return t.name }

// State returns the lifecycle stage.
func (t *Tween) State() State { return t.state }

// Running reports whether the tween is waiting out its delay or moving.
func (t *Tween) Running() bool { return t.state == StateRunning }

// Delaying reports whether the tween has started but not yet begun moving.
func (t *Tween) Delaying() bool { return t.state == StateRunning && t.elapsed < t.delay }

// Value returns the most recent value.
func (t *Tween) Value() float32 { return t.value }

// Duration returns the moving time, excluding delay.
func (t *Tween) Duration() time.Duration { return t.duration }

// Delay returns the start delay.
func (t *Tween) Delay() time.Duration { return t.delay }
