// Package random provides bounded uniform value generators.
package random

import (
	"math/rand/v2"

	"github.com/Faultbox/tonefield/pkg/math"
)

// Source supplies uniform samples in [0, 1).
type Source interface {
	Float32() float32
}

type globalSource struct{}

func (globalSource) Float32() float32 { return rand.Float32() }

// Range is a scalar generator bounded by [Min, Max].
type Range struct {
	Min, Max float32
	Source   Source // nil uses the global unseeded source
}

// NewRange creates a Range. Bounds are swapped if given in reverse order.
func NewRange(lo, hi float32) Range {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Range{Min: lo, Max: hi}
}

// Value returns a new sample on every call.
func (r Range) Value() float32 {
	src := r.Source
	if src == nil {
		src = globalSource{}
	}
	v := r.Min + src.Float32()*(r.Max-r.Min)
	// Float32 rounding can push Min + u*(Max-Min) just past Max.
	if v > r.Max {
		v = r.Max
	}
	return v
}

// Range3D samples each axis independently between Min and Max.
type Range3D struct {
	Min, Max math.Vec3
	Source   Source
}

// NewRange3D creates a Range3D.
func NewRange3D(lo, hi math.Vec3) Range3D {
	return Range3D{Min: lo, Max: hi}
}

// Value returns a new sample on every call.
func (r Range3D) Value() math.Vec3 {
	return math.Vec3{
		X: r.axis(r.Min.X, r.Max.X),
		Y: r.axis(r.Min.Y, r.Max.Y),
		Z: r.axis(r.Min.Z, r.Max.Z),
	}
}

// Euler samples a rotation, reading the axes as radians.
func (r Range3D) Euler() math.Euler {
	v := r.Value()
	return math.Euler{X: v.X, Y: v.Y, Z: v.Z}
}

func (r Range3D) axis(lo, hi float32) float32 {
	return NewRangeWithSource(lo, hi, r.Source).Value()
}

// NewRangeWithSource creates a Range that draws from src.
func NewRangeWithSource(lo, hi float32, src Source) Range {
	rg := NewRange(lo, hi)
	rg.Source = src
	return rg
}
