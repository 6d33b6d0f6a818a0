package note

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/Faultbox/tonefield/internal/geometry"
	"github.com/Faultbox/tonefield/internal/logger"
	"github.com/Faultbox/tonefield/internal/material"
	"github.com/Faultbox/tonefield/internal/palette"
	"github.com/Faultbox/tonefield/internal/random"
	"github.com/Faultbox/tonefield/internal/scene"
	"github.com/Faultbox/tonefield/internal/tone"
	"github.com/Faultbox/tonefield/internal/tween"
	"github.com/Faultbox/tonefield/pkg/math"
)

// Tween names used by heads, for counting in a tween.Group.
const (
	TweenVelocity = "velocity"
	TweenFrame    = "frame"
)

// HighlightBrightness is the brightness uniform of a highlighted head.
const HighlightBrightness float32 = 0.2

// maxSquash keeps the squashed axis from collapsing or inverting.
const maxSquash = 0.9

// HitEvent describes a controller striking a note.
type HitEvent struct {
	ControllerPosition *math.Vec3 // World space; required
	Velocity           float32    // 0 is treated as 1
	Delay              float32    // Seconds before the bounce starts
}

// Head is the visible note shape. Geometry is shared per shape; the
// material belongs to this head alone.
type Head struct {
	shape    tone.Shape
	mesh     *scene.Mesh
	material *material.Material
	rotation random.Range3D
	env      Env

	tone         int
	scale        float32
	textureID    int
	textureOrder int
	pending      *palette.Appearance

	hit   *tween.Tween
	frame *tween.Tween
}

// NewHead returns the head variant for a shape.
func NewHead(shape tone.Shape, env Env) (*Head, error) {
	switch shape {
	case tone.ShapeSphere:
		return NewSphereHead(env), nil
	case tone.ShapeCube:
		return NewCubeHead(env), nil
	case tone.ShapeTetra:
		return NewTetraHead(env), nil
	default:
		return nil, fmt.Errorf("note: no head for %s", shape)
	}
}

// NewSphereHead creates a sphere head. Spheres only spin about Y so the
// shape texture stays upright.
func NewSphereHead(env Env) *Head {
	return newHead(tone.ShapeSphere, env, random.NewRange3D(
		math.Vec3{},
		math.Vec3{Y: math.TwoPi},
	))
}

// NewCubeHead creates a cube head tilted up to 45 degrees off axis.
func NewCubeHead(env Env) *Head {
	const tilt = gomath.Pi / 4
	return newHead(tone.ShapeCube, env, random.NewRange3D(
		math.Vec3{X: -tilt, Z: -tilt},
		math.Vec3{X: tilt, Y: math.TwoPi, Z: tilt},
	))
}

// NewTetraHead creates a tetrahedron head with a fully random orientation.
func NewTetraHead(env Env) *Head {
	return newHead(tone.ShapeTetra, env, random.NewRange3D(
		math.Vec3{},
		math.Vec3{X: math.TwoPi, Y: math.TwoPi, Z: math.TwoPi},
	))
}

func newHead(shape tone.Shape, env Env, rotation random.Range3D) *Head {
	mat := material.NewNote()
	return &Head{
		shape:    shape,
		mesh:     scene.NewMesh(shape.String()+"-head", geometry.Head(shape), mat),
		material: mat,
		rotation: rotation,
		env:      env,
		scale:    1,
	}
}

// SetTone resolves everything the tone needs from the palette and sets the
// display scale. Material uniforms change on the next Commit.
func (h *Head) SetTone(t int) error {
	p := h.env.Palette
	noteCount := p.NoteCount()
	if err := tone.Validate(t, noteCount); err != nil {
		return err
	}

	textureID := tone.TextureID(t, noteCount)
	textureOrder := tone.TextureOrder(t, noteCount)
	appearance, err := palette.Resolve(p, tone.Shape(textureID).TextureName(), textureID, textureOrder)
	if err != nil {
		return fmt.Errorf("resolving tone %d: %w", t, err)
	}

	h.tone = t
	h.textureID = textureID
	h.textureOrder = textureOrder
	h.scale = tone.Scale(t, p.TotalNotes())
	h.mesh.Scale = math.Vec3One.Scale(h.scale)
	h.pending = &appearance
	return nil
}

// Commit applies the appearance resolved by the last SetTone and copies
// the light position into the material. It reports whether anything was
// pending.
func (h *Head) Commit() bool {
	if h.pending == nil {
		return false
	}
	a := h.pending
	h.material.Apply(a.Shape)
	h.material.Apply(a.Color)
	h.material.Set(material.UniformMap134, a.Map134)
	h.material.Set(material.UniformMap567, a.Map567)
	h.material.Set(material.UniformLightPosition, h.env.Settings.LightPosition)
	h.pending = nil
	return true
}

// Pending reports whether a SetTone has not been committed yet.
func (h *Head) Pending() bool {
	return h.pending != nil
}

// Highlight brightens the head.
func (h *Head) Highlight() {
	h.material.Set(material.UniformBrightness, HighlightBrightness)
}

// UnHighlight restores normal brightness.
func (h *Head) UnHighlight() {
	h.material.Set(material.UniformBrightness, float32(0))
}

// Hit starts the bounce and the hit flash. A bounce already in flight is
// cancelled; its flash keeps running.
func (h *Head) Hit(ev HitEvent, duration time.Duration) error {
	if err := validateHit(ev, duration); err != nil {
		return err
	}

	velocity := ev.Velocity
	if velocity == 0 {
		velocity = 1
	}

	// The head rests at its group's origin, so the local controller
	// position is the pull direction.
	pull := *ev.ControllerPosition
	if parent := h.mesh.Parent(); parent != nil {
		pull = parent.ToLocal(pull)
	}

	if h.hit != nil {
		h.hit.Stop()
	}

	delay := time.Duration(float64(ev.Delay) * float64(time.Second))
	h.hit = tween.New(TweenVelocity, velocity, 0, duration, ease.OutElastic).
		WithDelay(delay).
		OnUpdate(func(v float32) { h.applyVelocity(v, pull) }).
		OnComplete(func() { h.applyVelocity(0, pull) })
	h.env.Tweens.Add(h.hit)

	s := h.env.Settings
	frameDuration := time.Duration(float64(duration) * float64(s.FrameStretch))
	frames := s.HitFrames
	h.frame = tween.New(TweenFrame, 0, float32(frames), frameDuration, ease.Linear).
		OnUpdate(func(v float32) {
			h.material.Set(material.UniformSpriteIndex, min(int(v), frames))
		})
	h.env.Tweens.Add(h.frame)

	logger.Named("note").Debug("hit",
		zap.Stringer("shape", h.shape),
		zap.Int("tone", h.tone),
		zap.Float32("velocity", velocity),
		zap.Duration("delay", delay),
	)
	return nil
}

func validateHit(ev HitEvent, duration time.Duration) error {
	switch {
	case ev.ControllerPosition == nil:
		return &AnimationStateError{Reason: "missing controller position"}
	case !ev.ControllerPosition.IsFinite():
		return &AnimationStateError{Reason: "controller position is not finite"}
	case !finite(ev.Velocity):
		return &AnimationStateError{Reason: "velocity is not finite"}
	case !finite(ev.Delay) || ev.Delay < 0:
		return &AnimationStateError{Reason: fmt.Sprintf("invalid delay %v", ev.Delay)}
	case duration <= 0:
		return &AnimationStateError{Reason: fmt.Sprintf("invalid duration %s", duration)}
	}
	return nil
}

func finite(v float32) bool {
	f := float64(v)
	return !gomath.IsNaN(f) && !gomath.IsInf(f, 0)
}

// applyVelocity squashes the head vertically and pulls it toward the
// controller in proportion to v. At v == 0 the head is back at rest.
func (h *Head) applyVelocity(v float32, pull math.Vec3) {
	s := h.env.Settings
	squash := max(-maxSquash, min(maxSquash, s.Squash*v))
	h.mesh.Scale = math.Vec3{
		X: h.scale * (1 + squash/2),
		Y: h.scale * (1 - squash),
		Z: h.scale * (1 + squash/2),
	}
	h.mesh.Position = pull.Scale(s.Pull * v)
}

// Animating reports whether a bounce is pending or in progress.
func (h *Head) Animating() bool {
	return h.hit != nil && h.hit.Running()
}

// RandomRotation samples a rotation from the variant's range.
func (h *Head) RandomRotation() math.Euler {
	return h.rotation.Euler()
}

// SetRotation orients the head.
func (h *Head) SetRotation(r math.Euler) {
	h.mesh.Rotation = r
}

// Release stops the head's animations and detaches its mesh.
func (h *Head) Release() {
	if h.hit != nil {
		h.hit.Stop()
	}
	if h.frame != nil {
		h.frame.Stop()
	}
	h.mesh.Detach()
}

// Shape returns the head's shape.
func (h *Head) Shape() tone.Shape { return h.shape }

// Mesh returns the head mesh.
func (h *Head) Mesh() *scene.Mesh { return h.mesh }

// Material returns the head's own material.
func (h *Head) Material() *material.Material { return h.material }

// Tone returns the last tone set.
func (h *Head) Tone() int { return h.tone }

// Scale returns the display scale of the current tone.
func (h *Head) Scale() float32 { return h.scale }

// TextureID returns the texture set index of the current tone.
func (h *Head) TextureID() int { return h.textureID }

// TextureOrder returns the position of the current tone in its texture set.
func (h *Head) TextureOrder() int { return h.textureOrder }
