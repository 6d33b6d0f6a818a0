package geometry

import gomath "math"

// Sphere builds a UV sphere. widthSegments and heightSegments are clamped
// to at least 3 and 2.
func Sphere(radius float32, widthSegments, heightSegments int) *Geometry {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	g := &Geometry{Name: "sphere"}
	for y := 0; y <= heightSegments; y++ {
		v := float32(y) / float32(heightSegments)
		sinTheta, cosTheta := sincos(float64(v) * gomath.Pi)
		for x := 0; x <= widthSegments; x++ {
			u := float32(x) / float32(widthSegments)
			sinPhi, cosPhi := sincos(float64(u) * 2 * gomath.Pi)
			n := [3]float32{-cosPhi * sinTheta, cosTheta, sinPhi * sinTheta}
			g.Vertices = append(g.Vertices, Vertex{
				Position: scale(n, radius),
				Normal:   n,
				TexCoord: [2]float32{u, 1 - v},
			})
		}
	}

	row := uint32(widthSegments + 1)
	for y := 0; y < heightSegments; y++ {
		for x := 0; x < widthSegments; x++ {
			a := uint32(y)*row + uint32(x) + 1
			b := uint32(y)*row + uint32(x)
			c := uint32(y+1)*row + uint32(x)
			d := uint32(y+1)*row + uint32(x) + 1
			// The pole rows collapse to a point; skip their degenerate triangle.
			if y != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if y != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}
	g.computeBounds()
	return g
}

// cubeFaces lists each face as its outward normal and the two in-plane axes.
var cubeFaces = [6]struct {
	normal, u, v [3]float32
}{
	{[3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}},
	{[3]float32{-1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}},
	{[3]float32{0, 1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}},
	{[3]float32{0, -1, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}},
	{[3]float32{0, 0, 1}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
	{[3]float32{0, 0, -1}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}},
}

// Cube builds an axis-aligned cube with the given edge length.
func Cube(size float32) *Geometry {
	h := size / 2
	g := &Geometry{Name: "cube"}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range cubeFaces {
		base := uint32(len(g.Vertices))
		for _, c := range corners {
			var p [3]float32
			for i := 0; i < 3; i++ {
				p[i] = (f.normal[i] + f.u[i]*c[0] + f.v[i]*c[1]) * h
			}
			g.Vertices = append(g.Vertices, Vertex{
				Position: p,
				Normal:   f.normal,
				TexCoord: [2]float32{(c[0] + 1) / 2, (c[1] + 1) / 2},
			})
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	g.computeBounds()
	return g
}
