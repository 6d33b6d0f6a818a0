package note

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/tonefield/internal/logger"
	"github.com/Faultbox/tonefield/internal/scene"
	"github.com/Faultbox/tonefield/internal/tone"
	"github.com/Faultbox/tonefield/pkg/math"
)

// Note owns one head and one shadow inside a scene group and rebuilds both
// whenever the tone changes.
type Note struct {
	env    Env
	group  *scene.Group
	head   *Head
	shadow *Shadow

	tone        int
	shape       tone.Shape
	rotation    *math.Euler // sampled on the first head, then kept
	highlighted bool
}

// New creates a note that places its meshes in group. It has no head
// until SetTone is called.
func New(group *scene.Group, env Env) *Note {
	return &Note{env: env, group: group, tone: -1}
}

// SetTone replaces the head and shadow with ones for tone t. The first head
// picks a random rotation; every later head reuses it. On error the
// current head and shadow are left untouched.
func (n *Note) SetTone(t int) error {
	noteCount := n.env.Palette.NoteCount()
	if err := tone.Validate(t, noteCount); err != nil {
		return err
	}
	shape := tone.ShapeOf(t, noteCount)

	head, err := NewHead(shape, n.env)
	if err != nil {
		return err
	}
	if err := head.SetTone(t); err != nil {
		return err
	}
	shadow, err := NewShadow(shape, head.Mesh(), n.env.Settings)
	if err != nil {
		return err
	}

	if n.rotation == nil {
		r := head.RandomRotation()
		n.rotation = &r
	}
	head.SetRotation(*n.rotation)
	if n.highlighted {
		head.Highlight()
	}

	n.releaseHead()
	n.releaseShadow()

	n.head = head
	n.shadow = shadow
	n.group.Add(head.Mesh(), n.shadow.Mesh())
	n.shadow.Update()

	shapeChanged := n.tone < 0 || n.shape != shape
	n.tone = t
	n.shape = shape

	logger.Named("note").Debug("tone set",
		zap.String("group", n.group.Name),
		zap.Int("tone", t),
		zap.Stringer("shape", shape),
		zap.Bool("shapeChanged", shapeChanged),
	)
	return nil
}

// SetRotationIncrement turns the kept rotation about the vertical axis by
// one step. Clockwise, seen from above, is a negative angle.
func (n *Note) SetRotationIncrement(clockwise bool) {
	if n.rotation == nil {
		return
	}
	step := n.env.Settings.RotationStep * math.TwoPi
	if clockwise {
		step = -step
	}
	n.rotation.Y += step
	if n.head != nil {
		n.head.SetRotation(*n.rotation)
	}
}

// RemoveShadow detaches and drops the shadow. The next SetTone builds a new one.
func (n *Note) RemoveShadow() {
	n.releaseShadow()
}

// Commit applies any tone appearance still pending on the head.
func (n *Note) Commit() bool {
	if n.head == nil {
		return false
	}
	return n.head.Commit()
}

// Tick runs once per frame: it commits pending appearance and moves the
// shadow under the head.
func (n *Note) Tick(time.Duration) {
	n.Commit()
	if n.shadow != nil {
		n.shadow.Update()
	}
}

// Highlight brightens the head.
func (n *Note) Highlight() {
	n.highlighted = true
	if n.head != nil {
		n.head.Highlight()
	}
}

// UnHighlight restores the head's brightness.
func (n *Note) UnHighlight() {
	n.highlighted = false
	if n.head != nil {
		n.head.UnHighlight()
	}
}

// Hit starts the head's hit animation.
func (n *Note) Hit(ev HitEvent, duration time.Duration) error {
	if n.head == nil {
		return &AnimationStateError{Reason: "tone not set"}
	}
	if err := n.head.Hit(ev, duration); err != nil {
		return fmt.Errorf("tone %d: %w", n.tone, err)
	}
	return nil
}

// Release drops the head and shadow and detaches their meshes.
func (n *Note) Release() {
	n.releaseHead()
	n.releaseShadow()
}

func (n *Note) releaseHead() {
	if n.head != nil {
		n.head.Release()
		n.head = nil
	}
}

func (n *Note) releaseShadow() {
	if n.shadow != nil {
		n.shadow.Release()
		n.shadow = nil
	}
}

// Tone returns the current tone, or -1 before the first SetTone.
func (n *Note) Tone() int { return n.tone }

// Shape returns the current shape.
func (n *Note) Shape() tone.Shape { return n.shape }

// Rotation returns the kept rotation and whether one has been sampled.
func (n *Note) Rotation() (math.Euler, bool) {
	if n.rotation == nil {
		return math.Euler{}, false
	}
	return *n.rotation, true
}

// Head returns the current head, or nil.
func (n *Note) Head() *Head { return n.head }

// Shadow returns the current shadow, or nil.
func (n *Note) Shadow() *Shadow { return n.shadow }

// Group returns the scene group holding the note's meshes.
func (n *Note) Group() *scene.Group { return n.group }

// Highlighted reports whether the note is highlighted.
func (n *Note) Highlighted() bool { return n.highlighted }
