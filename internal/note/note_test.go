package note

import (
	"errors"
	"testing"
	"time"

	"github.com/Faultbox/tonefield/internal/geometry"
	"github.com/Faultbox/tonefield/internal/material"
	"github.com/Faultbox/tonefield/internal/scene"
	"github.com/Faultbox/tonefield/internal/tone"
	"github.com/Faultbox/tonefield/pkg/math"
)

func newTestNote(t *testing.T) (*Note, Env) {
	t.Helper()
	env := testEnv(t)
	return New(scene.NewGroup("ball-1"), env), env
}

func TestNoteShapePerTone(t *testing.T) {
	tests := []struct {
		tone  int
		shape tone.Shape
	}{
		{0, tone.ShapeSphere},
		{2, tone.ShapeSphere},
		{3, tone.ShapeCube},
		{5, tone.ShapeCube},
		{6, tone.ShapeTetra},
		{8, tone.ShapeTetra},
	}

	n, _ := newTestNote(t)
	for _, tt := range tests {
		if err := n.SetTone(tt.tone); err != nil {
			t.Fatalf("SetTone(%d) failed: %v", tt.tone, err)
		}
		if n.Shape() != tt.shape || n.Head().Shape() != tt.shape || n.Shadow().Shape() != tt.shape {
			t.Errorf("tone %d: shapes (%s, %s, %s), want %s",
				tt.tone, n.Shape(), n.Head().Shape(), n.Shadow().Shape(), tt.shape)
		}
		if n.Tone() != tt.tone {
			t.Errorf("Tone() = %d, want %d", n.Tone(), tt.tone)
		}
		if got := len(n.Group().Meshes()); got != 2 {
			t.Errorf("tone %d: group holds %d meshes, want 2", tt.tone, got)
		}
	}
}

func TestNoteInvalidToneKeepsHead(t *testing.T) {
	n, _ := newTestNote(t)
	if err := n.SetTone(4); err != nil {
		t.Fatalf("SetTone(4) failed: %v", err)
	}
	head := n.Head()

	for _, bad := range []int{-1, 9, 100} {
		var invalid *tone.InvalidToneError
		if err := n.SetTone(bad); !errors.As(err, &invalid) {
			t.Errorf("SetTone(%d) = %v, want InvalidToneError", bad, err)
		}
	}
	if n.Head() != head || n.Tone() != 4 {
		t.Error("failed SetTone replaced the head")
	}
	if head.Mesh().Parent() != n.Group() {
		t.Error("failed SetTone detached the head")
	}
}

func TestNoteRotationFrozen(t *testing.T) {
	n, _ := newTestNote(t)
	if _, ok := n.Rotation(); ok {
		t.Fatal("rotation sampled before the first tone")
	}

	if err := n.SetTone(7); err != nil {
		t.Fatalf("SetTone failed: %v", err)
	}
	first, ok := n.Rotation()
	if !ok {
		t.Fatal("rotation not sampled")
	}

	// Same shape, then a different one.
	for _, next := range []int{8, 1, 4} {
		if err := n.SetTone(next); err != nil {
			t.Fatalf("SetTone(%d) failed: %v", next, err)
		}
		if got, _ := n.Rotation(); got != first {
			t.Errorf("tone %d: rotation %v, want %v", next, got, first)
		}
		if n.Head().Mesh().Rotation != first {
			t.Errorf("tone %d: head not oriented with kept rotation", next)
		}
	}
}

func TestNoteRotationIncrement(t *testing.T) {
	n, env := newTestNote(t)

	// No rotation yet: nothing to turn.
	n.SetRotationIncrement(true)
	if _, ok := n.Rotation(); ok {
		t.Error("increment before SetTone sampled a rotation")
	}

	if err := n.SetTone(0); err != nil {
		t.Fatalf("SetTone failed: %v", err)
	}
	start, _ := n.Rotation()
	step := env.Settings.RotationStep * math.TwoPi

	n.SetRotationIncrement(true)
	got, _ := n.Rotation()
	want := math.Euler{X: start.X, Y: start.Y - step, Z: start.Z}
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("clockwise: %v, want %v", got, want)
	}
	if n.Head().Mesh().Rotation != got {
		t.Error("head not updated by increment")
	}

	n.SetRotationIncrement(false)
	got, _ = n.Rotation()
	if !got.ApproxEqual(start, 1e-5) {
		t.Errorf("clockwise then counter-clockwise: %v, want %v", got, start)
	}
}

func TestNoteHighlightSurvivesToneChange(t *testing.T) {
	n, _ := newTestNote(t)
	n.Highlight()
	if err := n.SetTone(2); err != nil {
		t.Fatalf("SetTone failed: %v", err)
	}
	if got := n.Head().Material().Float(material.UniformBrightness); got != 0.2 {
		t.Errorf("brightness = %v, want 0.2", got)
	}
	if err := n.SetTone(6); err != nil {
		t.Fatalf("SetTone failed: %v", err)
	}
	if got := n.Head().Material().Float(material.UniformBrightness); got != 0.2 {
		t.Errorf("brightness after shape change = %v, want 0.2", got)
	}

	n.UnHighlight()
	n.UnHighlight()
	if got := n.Head().Material().Float(material.UniformBrightness); got != 0 {
		t.Errorf("brightness = %v, want 0", got)
	}
	if n.Highlighted() {
		t.Error("Highlighted() = true after UnHighlight")
	}
}

func TestNoteTickCommits(t *testing.T) {
	n, _ := newTestNote(t)
	if n.Commit() {
		t.Error("Commit without a head reported work")
	}
	if err := n.SetTone(3); err != nil {
		t.Fatalf("SetTone failed: %v", err)
	}
	if !n.Head().Pending() {
		t.Fatal("appearance should wait for the next tick")
	}

	n.Tick(16 * time.Millisecond)
	if n.Head().Pending() {
		t.Error("Tick did not commit")
	}
	if got := n.Head().Material().Texture(material.UniformShapeTexture).Name; got != "squares_0" {
		t.Errorf("shape texture = %s, want squares_0", got)
	}

	// A second tone in the same frame replaces the first.
	_ = n.SetTone(4)
	_ = n.SetTone(5)
	n.Tick(16 * time.Millisecond)
	if got := n.Head().Material().Texture(material.UniformShapeTexture).Name; got != "squares_2" {
		t.Errorf("shape texture = %s, want squares_2", got)
	}
}

func TestNoteReplacesMeshes(t *testing.T) {
	n, _ := newTestNote(t)
	_ = n.SetTone(0)
	oldHead, oldShadow := n.Head(), n.Shadow()

	_ = n.SetTone(1)
	if oldHead.Mesh().Parent() != nil || oldShadow.Mesh().Parent() != nil {
		t.Error("old meshes still attached")
	}
	if oldShadow.Head() != nil {
		t.Error("old shadow still tracks a head")
	}
	if n.Head() == oldHead {
		t.Error("head not recreated")
	}
}

func TestNoteRemoveShadow(t *testing.T) {
	n, _ := newTestNote(t)
	n.RemoveShadow()

	_ = n.SetTone(6)
	shadow := n.Shadow()
	n.RemoveShadow()
	n.RemoveShadow()

	if n.Shadow() != nil {
		t.Error("shadow still set")
	}
	if shadow.Mesh().Parent() != nil {
		t.Error("shadow mesh still attached")
	}
	if got := len(n.Group().Meshes()); got != 1 {
		t.Errorf("group holds %d meshes, want 1", got)
	}
	n.Tick(time.Millisecond)

	_ = n.SetTone(7)
	if n.Shadow() == nil {
		t.Error("SetTone should rebuild the shadow")
	}
}

func TestNoteHit(t *testing.T) {
	n, env := newTestNote(t)

	var stateErr *AnimationStateError
	err := n.Hit(HitEvent{ControllerPosition: &math.Vec3{}}, time.Second)
	if !errors.As(err, &stateErr) {
		t.Errorf("Hit before SetTone = %v, want AnimationStateError", err)
	}

	_ = n.SetTone(1)
	if err := n.Hit(HitEvent{Velocity: 1}, time.Second); !errors.As(err, &stateErr) {
		t.Errorf("Hit without controller = %v, want AnimationStateError", err)
	}
	if err := n.Hit(HitEvent{ControllerPosition: &math.Vec3{Z: 1}, Velocity: 3}, time.Second); err != nil {
		t.Fatalf("Hit failed: %v", err)
	}
	if env.Tweens.Active(TweenVelocity) != 1 || env.Tweens.Active(TweenFrame) != 1 {
		t.Error("hit did not start both tweens")
	}

	n.Release()
	if env.Tweens.Active("") != 0 {
		t.Error("Release left tweens running")
	}
	if len(n.Group().Meshes()) != 0 {
		t.Error("Release left meshes in the group")
	}
}

func TestNoteSharesGeometry(t *testing.T) {
	a, _ := newTestNote(t)
	b, _ := newTestNote(t)
	_ = a.SetTone(3)
	_ = b.SetTone(5)

	if a.Head().Mesh().Geometry != b.Head().Mesh().Geometry {
		t.Error("cube heads should share geometry")
	}
	if a.Shadow().Mesh().Material != b.Shadow().Mesh().Material {
		t.Error("shadows should share a material")
	}
	if a.Head().Material() == b.Head().Material() {
		t.Error("heads must not share a material")
	}

	before := geometry.Head(tone.ShapeCube).Bounds
	_ = a.Hit(HitEvent{ControllerPosition: &math.Vec3{Y: 2}, Velocity: 1}, time.Second)
	a.env.Tweens.Update(100 * time.Millisecond)
	if geometry.Head(tone.ShapeCube).Bounds != before {
		t.Error("animation changed shared geometry")
	}
}
