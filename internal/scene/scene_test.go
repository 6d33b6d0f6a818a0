package scene

import (
	"math"
	"testing"

	"github.com/Faultbox/tonefield/internal/geometry"
	"github.com/Faultbox/tonefield/internal/material"
	vmath "github.com/Faultbox/tonefield/pkg/math"
)

func approx(a, b vmath.Vec3) bool {
	const eps = 1e-4
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}

func newTestMesh(name string) *Mesh {
	return NewMesh(name, geometry.Cube(1), material.NewNote())
}

func TestAddRemove(t *testing.T) {
	g := NewGroup("note")
	a := newTestMesh("head")
	b := newTestMesh("shadow")

	g.Add(a, b, nil)
	if len(g.Meshes()) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(g.Meshes()))
	}
	if a.Parent() != g {
		t.Error("parent not set")
	}

	g.Add(a)
	if len(g.Meshes()) != 2 {
		t.Error("re-adding a child duplicated it")
	}

	if !g.Remove(a) {
		t.Error("Remove returned false for a child")
	}
	if g.Remove(a) {
		t.Error("Remove returned true for a detached mesh")
	}
	if a.Parent() != nil {
		t.Error("parent not cleared")
	}

	other := NewGroup("other")
	other.Add(b)
	if len(g.Meshes()) != 0 || b.Parent() != other {
		t.Error("adding to another group should move the mesh")
	}

	b.Detach()
	if len(other.Meshes()) != 0 {
		t.Error("Detach did not remove mesh")
	}
}

func TestWorldMatrix(t *testing.T) {
	root := NewGroup("root")
	root.Position = vmath.Vec3{X: 10}

	note := NewGroup("note")
	note.Position = vmath.Vec3{Y: 2}
	note.Scale = vmath.Vec3{X: 2, Y: 2, Z: 2}
	root.AddGroup(note)

	m := newTestMesh("head")
	m.Position = vmath.Vec3{Z: 1}
	note.Add(m)

	got := m.WorldPosition()
	want := vmath.Vec3{X: 10, Y: 2, Z: 2}
	if !approx(got, want) {
		t.Errorf("WorldPosition() = %v, want %v", got, want)
	}

	local := note.ToLocal(vmath.Vec3{X: 10, Y: 4, Z: 0})
	if !approx(local, vmath.Vec3{Y: 1}) {
		t.Errorf("ToLocal() = %v, want {0 1 0}", local)
	}
}

func TestGroupReparent(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	child := NewGroup("child")

	a.AddGroup(child)
	b.AddGroup(child)
	if len(a.Children()) != 0 || len(b.Children()) != 1 {
		t.Error("child group not moved")
	}
	if !b.RemoveGroup(child) || b.RemoveGroup(child) {
		t.Error("RemoveGroup result mismatch")
	}
}

func TestWalkSkipsHidden(t *testing.T) {
	root := NewGroup("root")
	child := NewGroup("child")
	root.AddGroup(child)

	visible := newTestMesh("visible")
	hidden := newTestMesh("hidden")
	hidden.Visible = false
	root.Add(hidden)
	child.Add(visible)

	var names []string
	root.Walk(func(m *Mesh) { names = append(names, m.Name) })
	if len(names) != 1 || names[0] != "visible" {
		t.Errorf("Walk visited %v, want [visible]", names)
	}
}
