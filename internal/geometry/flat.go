package geometry

import gomath "math"

// The flat shapes below lie in the XY plane facing +Z. Shadows rotate
// them onto the floor.

var flatNormal = [3]float32{0, 0, 1}

// Disc builds a filled circle as a triangle fan.
func Disc(radius float32, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	g := &Geometry{Name: "disc"}
	g.Vertices = append(g.Vertices, Vertex{Normal: flatNormal, TexCoord: [2]float32{0.5, 0.5}})
	for i := 0; i <= segments; i++ {
		s, c := sincos(float64(i) / float64(segments) * 2 * gomath.Pi)
		g.Vertices = append(g.Vertices, Vertex{
			Position: [3]float32{c * radius, s * radius, 0},
			Normal:   flatNormal,
			TexCoord: [2]float32{(c + 1) / 2, (s + 1) / 2},
		})
	}
	for i := 1; i <= segments; i++ {
		g.Indices = append(g.Indices, 0, uint32(i), uint32(i+1))
	}
	g.computeBounds()
	return g
}

// Square builds a quad with the given edge length.
func Square(size float32) *Geometry {
	h := size / 2
	g := &Geometry{
		Name: "square",
		Vertices: []Vertex{
			{Position: [3]float32{-h, -h, 0}, Normal: flatNormal, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{h, -h, 0}, Normal: flatNormal, TexCoord: [2]float32{1, 0}},
			{Position: [3]float32{h, h, 0}, Normal: flatNormal, TexCoord: [2]float32{1, 1}},
			{Position: [3]float32{-h, h, 0}, Normal: flatNormal, TexCoord: [2]float32{0, 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
	g.computeBounds()
	return g
}

// Triangle builds an equilateral triangle with its corners at radius.
func Triangle(radius float32) *Geometry {
	g := &Geometry{Name: "triangle"}
	for i := 0; i < 3; i++ {
		s, c := sincos(gomath.Pi/2 + float64(i)*2*gomath.Pi/3)
		g.Vertices = append(g.Vertices, Vertex{
			Position: [3]float32{c * radius, s * radius, 0},
			Normal:   flatNormal,
			TexCoord: [2]float32{(c + 1) / 2, (s + 1) / 2},
		})
	}
	g.Indices = []uint32{0, 1, 2}
	g.computeBounds()
	return g
}
