package render

import (
	gomath "math"

	"github.com/Faultbox/tonefield/pkg/math"
)

// Camera is a perspective camera looking at a fixed target.
type Camera struct {
	Eye    math.Vec3
	Target math.Vec3
	FovY   float32 // Radians
	Near   float32
	Far    float32
}

// DefaultCamera looks down at the origin from in front and above.
func DefaultCamera() Camera {
	return Camera{
		Eye:    math.Vec3{X: 0, Y: 3, Z: 6},
		Target: math.Vec3{Y: 0.5},
		FovY:   float32(gomath.Pi / 4),
		Near:   0.1,
		Far:    100,
	}
}

// View returns the view matrix.
func (c Camera) View() math.Mat4 {
	return math.LookAt(c.Eye, c.Target, math.Vec3{Y: 1})
}

// Projection returns the projection matrix for a viewport aspect ratio.
func (c Camera) Projection(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// Orbit rotates the eye about the vertical axis through the target.
func (c *Camera) Orbit(angle float32) {
	offset := c.Eye.Sub(c.Target)
	sin, cos := gomath.Sincos(float64(angle))
	s, k := float32(sin), float32(cos)
	c.Eye = c.Target.Add(math.Vec3{
		X: offset.X*k + offset.Z*s,
		Y: offset.Y,
		Z: -offset.X*s + offset.Z*k,
	})
}
