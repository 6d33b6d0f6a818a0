package ball

import (
	"errors"
	"testing"
	"time"

	"github.com/Faultbox/tonefield/internal/config"
	"github.com/Faultbox/tonefield/internal/material"
	"github.com/Faultbox/tonefield/internal/note"
	"github.com/Faultbox/tonefield/internal/palette"
	"github.com/Faultbox/tonefield/internal/scene"
	"github.com/Faultbox/tonefield/internal/tone"
	"github.com/Faultbox/tonefield/internal/tween"
	"github.com/Faultbox/tonefield/pkg/math"
)

func newTestSystem(t *testing.T) *System {
	t.Helper()
	cfg := config.Default().Palette
	cfg.NoteCount = 3
	cfg.Colors = cfg.Colors[:3]
	for i := range cfg.Shapes {
		cfg.Shapes[i].Textures = cfg.Shapes[i].Textures[:3]
	}
	p, err := palette.NewStatic(cfg)
	if err != nil {
		t.Fatalf("failed to build palette: %v", err)
	}
	env := note.Env{
		Palette:  p,
		Tweens:   tween.NewGroup(),
		Settings: note.DefaultSettings(),
	}
	return NewSystem(scene.NewGroup("root"), env)
}

func spawn(t *testing.T, s *System, toneIndex int) *Ball {
	t.Helper()
	attrs := DefaultAttributes()
	attrs.Tone = toneIndex
	e, err := s.Spawn(attrs)
	if err != nil {
		t.Fatalf("Spawn(tone %d) failed: %v", toneIndex, err)
	}
	return s.Ball(e)
}

func TestSpawnAnnouncesOnce(t *testing.T) {
	s := newTestSystem(t)
	var created []Created
	s.OnCreated(func(ev Created) { created = append(created, ev) })

	attrs := DefaultAttributes()
	attrs.Tone = 4
	attrs.Hand = "left"
	e, err := s.Spawn(attrs)
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	if len(created) != 0 {
		t.Error("Created delivered before Update")
	}
	if err := s.Update(0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := s.Update(0); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if len(created) != 1 {
		t.Fatalf("got %d Created events, want 1", len(created))
	}
	ev := created[0]
	b := s.Ball(e)
	if ev.ID != e || ev.Element != b.Group() || !ev.Grab || ev.Hand != "left" {
		t.Errorf("Created = %+v", ev)
	}
	if b.Note().Shape() != tone.ShapeCube {
		t.Errorf("shape = %s, want cube", b.Note().Shape())
	}
	if len(s.Root().Children()) != 1 {
		t.Error("ball group not attached under root")
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
}

func TestSpawnInvalidTone(t *testing.T) {
	s := newTestSystem(t)
	attrs := DefaultAttributes()
	attrs.Tone = 12

	_, err := s.Spawn(attrs)
	var invalid *tone.InvalidToneError
	if !errors.As(err, &invalid) {
		t.Fatalf("Spawn = %v, want InvalidToneError", err)
	}
	if s.Count() != 0 {
		t.Error("failed spawn left an entity behind")
	}
	if len(s.Root().Children()) != 0 {
		t.Error("failed spawn attached a group")
	}
}

func TestSetAttributeTone(t *testing.T) {
	s := newTestSystem(t)
	b := spawn(t, s, 0)

	if err := s.SetAttribute(b.Entity(), AttrTone, 7); err != nil {
		t.Fatalf("SetAttribute failed: %v", err)
	}
	if b.Note().Tone() != 0 {
		t.Error("tone applied before Update")
	}
	if err := s.Update(16 * time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if b.Note().Tone() != 7 || b.Note().Shape() != tone.ShapeTetra {
		t.Errorf("note tone %d shape %s, want 7 tetra", b.Note().Tone(), b.Note().Shape())
	}
	// Update ticks after events, so the new head is already committed.
	if b.Note().Head().Pending() {
		t.Error("head appearance not committed by Update")
	}

	attrs, _ := s.Attributes(b.Entity())
	if attrs.Tone != 7 {
		t.Errorf("stored tone = %d, want 7", attrs.Tone)
	}
}

func TestSetAttributeErrors(t *testing.T) {
	s := newTestSystem(t)
	b := spawn(t, s, 1)

	before, _ := s.Attributes(b.Entity())

	tests := []struct {
		name  string
		value any
	}{
		{AttrTone, "3"},
		{AttrTone, int32(7)},
		{AttrRadius, 0.5},
		{AttrGrabbed, 1},
		{AttrHand, nil},
		{AttrMeristemNode, 4},
		{"colour", "red"},
	}
	for _, tt := range tests {
		if err := s.SetAttribute(b.Entity(), tt.name, tt.value); err == nil {
			t.Errorf("SetAttribute(%s, %v) should fail", tt.name, tt.value)
		}
		if got, _ := s.Attributes(b.Entity()); got != before {
			t.Errorf("SetAttribute(%s, %v) changed attributes: %+v, want %+v", tt.name, tt.value, got, before)
		}
	}
	if err := s.Update(0); err != nil {
		t.Errorf("Update after rejected writes: %v", err)
	}
	if b.Note().Tone() != 1 {
		t.Errorf("note tone = %d after rejected writes, want 1", b.Note().Tone())
	}

	if err := s.SetAttribute(b.Entity(), AttrTone, 20); err != nil {
		t.Fatalf("SetAttribute failed: %v", err)
	}
	err := s.Update(0)
	var invalid *tone.InvalidToneError
	if !errors.As(err, &invalid) {
		t.Errorf("Update = %v, want InvalidToneError", err)
	}
	if b.Note().Tone() != 1 {
		t.Error("invalid tone replaced the note head")
	}
	if err := s.Update(0); err != nil {
		t.Errorf("errors carried into the next frame: %v", err)
	}
}

func TestHostAttributes(t *testing.T) {
	var a AttributesData
	values := map[string]any{
		AttrRadius:       float32(0.1),
		AttrGrabbed:      true,
		AttrHand:         "left",
		AttrMeristem:     true,
		AttrMeristemNode: "node-3",
	}
	for name, v := range values {
		if err := a.Set(name, v); err != nil {
			t.Errorf("Set(%s) failed: %v", name, err)
		}
	}
	want := AttributesData{Radius: 0.1, Grabbed: true, Hand: "left", Meristem: true, MeristemNode: "node-3"}
	if a != want {
		t.Errorf("attributes = %+v, want %+v", a, want)
	}
}

func TestHitRoutesToTarget(t *testing.T) {
	s := newTestSystem(t)
	a := spawn(t, s, 0)
	b := spawn(t, s, 3)

	s.Hit(a.Entity(), note.HitEvent{ControllerPosition: &math.Vec3{Z: 1}, Velocity: 1})
	if err := s.Update(10 * time.Millisecond); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if !a.Note().Head().Animating() {
		t.Error("target ball not animating")
	}
	if b.Note().Head().Animating() {
		t.Error("other ball was hit")
	}
}

func TestHitErrorsAreReported(t *testing.T) {
	s := newTestSystem(t)
	b := spawn(t, s, 2)

	s.Hit(b.Entity(), note.HitEvent{Velocity: 1})
	err := s.Update(0)
	var stateErr *note.AnimationStateError
	if !errors.As(err, &stateErr) {
		t.Errorf("Update = %v, want AnimationStateError", err)
	}
}

func TestHighlightEvents(t *testing.T) {
	s := newTestSystem(t)
	b := spawn(t, s, 5)
	brightness := func() float32 {
		return b.Note().Head().Material().Float(material.UniformBrightness)
	}

	s.Highlight(b.Entity())
	_ = s.Update(0)
	if brightness() != 0.2 {
		t.Errorf("brightness = %v, want 0.2", brightness())
	}

	s.UnHighlight(b.Entity())
	_ = s.Update(0)
	if brightness() != 0 {
		t.Errorf("brightness = %v, want 0", brightness())
	}
}

func TestDestroy(t *testing.T) {
	s := newTestSystem(t)
	var balls []*Ball
	for i := 0; i < 3; i++ {
		balls = append(balls, spawn(t, s, i*3))
	}
	victim := balls[1]
	e := victim.Entity()

	s.Hit(e, note.HitEvent{ControllerPosition: &math.Vec3{}})
	s.Destroy(e)

	if err := s.Update(time.Millisecond); err != nil {
		t.Errorf("events for a destroyed ball should be dropped: %v", err)
	}
	if s.Count() != 2 {
		t.Errorf("Count() = %d, want 2", s.Count())
	}
	if s.Ball(e) != nil {
		t.Error("destroyed ball still reachable")
	}
	if victim.Note() != nil {
		t.Error("destroyed ball kept its note")
	}
	if got := len(s.Root().Children()); got != 2 {
		t.Errorf("root has %d groups, want 2", got)
	}
	if s.env.Tweens.Active("") != 0 {
		t.Error("destroyed ball left tweens running")
	}

	seen := 0
	s.Balls(func(b *Ball) {
		if b == victim {
			t.Error("Balls visited the destroyed ball")
		}
		seen++
	})
	if seen != 2 {
		t.Errorf("Balls visited %d balls, want 2", seen)
	}
}
