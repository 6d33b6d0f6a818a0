package geometry

import (
	"fmt"

	"github.com/Faultbox/tonefield/internal/tone"
)

// Sizes of the shared assets, in scene units at scale 1.
const (
	SphereRadius = 0.5
	CubeSize     = 0.8
	TetraRadius  = 0.65
)

var (
	headGeometries = [tone.ShapeCount]*Geometry{
		tone.ShapeSphere: Sphere(SphereRadius, 24, 16),
		tone.ShapeCube:   Cube(CubeSize),
		tone.ShapeTetra:  Tetrahedron(TetraRadius),
	}
	shadowGeometries = [tone.ShapeCount]*Geometry{
		tone.ShapeSphere: Disc(SphereRadius, 24),
		tone.ShapeCube:   Square(CubeSize),
		tone.ShapeTetra:  Triangle(TetraRadius),
	}
)

// Head returns the shared head geometry for a shape.
func Head(s tone.Shape) *Geometry {
	if !s.Valid() {
		panic(fmt.Sprintf("geometry: no head geometry for %s", s))
	}
	return headGeometries[s]
}

// Shadow returns the shared shadow geometry for a shape.
func Shadow(s tone.Shape) *Geometry {
	if !s.Valid() {
		panic(fmt.Sprintf("geometry: no shadow geometry for %s", s))
	}
	return shadowGeometries[s]
}
