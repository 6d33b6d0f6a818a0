// Package geometry builds the static meshes notes and shadows are drawn with.
package geometry

// Vertex is a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Geometry holds triangle mesh data ready for GPU upload.
// Geometries returned by Head and Shadow are shared and must not be modified.
type Geometry struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// TriangleCount returns the number of indexed triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Clone returns a deep copy that callers may modify.
func (g *Geometry) Clone() *Geometry {
	c := &Geometry{
		Name:     g.Name,
		Vertices: make([]Vertex, len(g.Vertices)),
		Indices:  make([]uint32, len(g.Indices)),
		Bounds:   g.Bounds,
	}
	copy(c.Vertices, g.Vertices)
	copy(c.Indices, g.Indices)
	return c
}

func (g *Geometry) computeBounds() {
	if len(g.Vertices) == 0 {
		g.Bounds = Bounds{}
		return
	}
	b := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for _, v := range g.Vertices {
		for i := 0; i < 3; i++ {
			if v.Position[i] < b.Min[i] {
				b.Min[i] = v.Position[i]
			}
			if v.Position[i] > b.Max[i] {
				b.Max[i] = v.Position[i]
			}
		}
	}
	g.Bounds = b
}
