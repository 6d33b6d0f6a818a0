package math

import "math"

// TwoPi is a full turn in radians.
const TwoPi = float32(2 * math.Pi)

// Euler is a rotation in radians applied in X, Y, Z order.
type Euler struct {
	X, Y, Z float32
}

// Add returns the component-wise sum of two rotations.
func (e Euler) Add(other Euler) Euler {
	return Euler{e.X + other.X, e.Y + other.Y, e.Z + other.Z}
}

// Matrix returns the rotation matrix for e.
// Rotations are applied X first, then Y, then Z.
func (e Euler) Matrix() Mat4 {
	return RotateZ(e.Z).Mul(RotateY(e.Y)).Mul(RotateX(e.X))
}

// ApproxEqual reports whether each component differs by at most eps.
func (e Euler) ApproxEqual(other Euler, eps float32) bool {
	return absf(e.X-other.X) <= eps && absf(e.Y-other.Y) <= eps && absf(e.Z-other.Z) <= eps
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
