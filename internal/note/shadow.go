package note

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/tonefield/internal/geometry"
	"github.com/Faultbox/tonefield/internal/material"
	"github.com/Faultbox/tonefield/internal/scene"
	"github.com/Faultbox/tonefield/internal/tone"
	"github.com/Faultbox/tonefield/pkg/math"
)

// layFlat turns the XY-plane shadow shapes onto the floor.
const layFlat = -gomath.Pi / 2

// Shadow is a flat shape on the floor under a head. Geometry and material
// are shared by every shadow of the same shape.
type Shadow struct {
	shape     tone.Shape
	mesh      *scene.Mesh
	head      *scene.Mesh
	followYaw bool
	settings  Settings
}

// NewShadow returns the shadow variant for a shape, bound to a head mesh.
func NewShadow(shape tone.Shape, head *scene.Mesh, settings Settings) (*Shadow, error) {
	switch shape {
	case tone.ShapeSphere:
		return NewSphereShadow(head, settings), nil
	case tone.ShapeCube:
		return NewCubeShadow(head, settings), nil
	case tone.ShapeTetra:
		return NewTetraShadow(head, settings), nil
	default:
		return nil, fmt.Errorf("note: no shadow for %s", shape)
	}
}

// NewSphereShadow creates a round shadow. Its yaw never changes.
func NewSphereShadow(head *scene.Mesh, settings Settings) *Shadow {
	return newShadow(tone.ShapeSphere, head, settings, false)
}

// NewCubeShadow creates a square shadow that turns with the head.
func NewCubeShadow(head *scene.Mesh, settings Settings) *Shadow {
	return newShadow(tone.ShapeCube, head, settings, true)
}

// NewTetraShadow creates a triangular shadow that turns with the head.
func NewTetraShadow(head *scene.Mesh, settings Settings) *Shadow {
	return newShadow(tone.ShapeTetra, head, settings, true)
}

func newShadow(shape tone.Shape, head *scene.Mesh, settings Settings, followYaw bool) *Shadow {
	mesh := scene.NewMesh(shape.String()+"-shadow", geometry.Shadow(shape), material.Shadow())
	mesh.Rotation = math.Euler{X: layFlat}
	return &Shadow{
		shape:     shape,
		mesh:      mesh,
		head:      head,
		followYaw: followYaw,
		settings:  settings,
	}
}

// Update places the shadow under the head's current world position. The
// shadow shrinks as the head rises above the floor.
func (s *Shadow) Update() {
	if s.head == nil {
		return
	}

	headPos := s.head.WorldPosition()
	height := max(headPos.Y-s.settings.ShadowFloor, 0)
	shrink := 1 / (1 + height*s.settings.ShadowFalloff)

	ground := math.Vec3{X: headPos.X, Y: s.settings.ShadowFloor + s.settings.ShadowLift, Z: headPos.Z}
	if parent := s.mesh.Parent(); parent != nil {
		ground = parent.ToLocal(ground)
	}
	s.mesh.Position = ground

	size := s.head.Scale.X * shrink
	s.mesh.Scale = math.Vec3{X: size, Y: size, Z: 1}

	if s.followYaw {
		s.mesh.Rotation = math.Euler{X: layFlat, Y: s.head.Rotation.Y}
	}
}

// Shape returns the shadow's shape.
func (s *Shadow) Shape() tone.Shape { return s.shape }

// Mesh returns the shadow mesh.
func (s *Shadow) Mesh() *scene.Mesh { return s.mesh }

// Head returns the head mesh the shadow tracks.
func (s *Shadow) Head() *scene.Mesh { return s.head }

// Release detaches the shadow and drops its head reference.
func (s *Shadow) Release() {
	s.mesh.Detach()
	s.head = nil
}
