// Package scene provides a minimal scene graph of groups and meshes.
package scene

import (
	"github.com/Faultbox/tonefield/internal/geometry"
	"github.com/Faultbox/tonefield/internal/material"
	"github.com/Faultbox/tonefield/pkg/math"
)

// Transform is a local translation, rotation and scale.
type Transform struct {
	Position math.Vec3
	Rotation math.Euler
	Scale    math.Vec3
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{Scale: math.Vec3One}
}

// Matrix returns the local model matrix.
func (t Transform) Matrix() math.Mat4 {
	return math.Compose(t.Position, t.Rotation, t.Scale)
}

// Mesh is a drawable: shared geometry plus a material.
type Mesh struct {
	Transform
	Name     string
	Geometry *geometry.Geometry
	Material *material.Material
	Visible  bool

	parent *Group
}

// NewMesh creates a visible mesh with an identity transform.
func NewMesh(name string, g *geometry.Geometry, m *material.Material) *Mesh {
	return &Mesh{
		Transform: NewTransform(),
		Name:      name,
		Geometry:  g,
		Material:  m,
		Visible:   true,
	}
}

// Parent returns the group the mesh is attached to, or nil.
func (m *Mesh) Parent() *Group {
	return m.parent
}

// WorldMatrix returns the model matrix including all parent groups.
func (m *Mesh) WorldMatrix() math.Mat4 {
	local := m.Matrix()
	if m.parent == nil {
		return local
	}
	return m.parent.WorldMatrix().Mul(local)
}

// WorldPosition returns the mesh origin in world space.
func (m *Mesh) WorldPosition() math.Vec3 {
	return m.WorldMatrix().Translation()
}

// Detach removes the mesh from its parent, if any.
func (m *Mesh) Detach() {
	if m.parent != nil {
		m.parent.Remove(m)
	}
}
