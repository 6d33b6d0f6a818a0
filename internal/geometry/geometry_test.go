package geometry

import (
	"math"
	"reflect"
	"testing"

	"github.com/Faultbox/tonefield/internal/tone"
)

func TestTetrahedronFaces(t *testing.T) {
	g := Tetrahedron(1)

	if len(g.Vertices) != 12 {
		t.Fatalf("expected 12 vertices (4 faces x 3), got %d", len(g.Vertices))
	}
	if g.TriangleCount() != 4 {
		t.Fatalf("expected 4 faces, got %d", g.TriangleCount())
	}

	for f := 0; f < 4; f++ {
		a := g.Vertices[g.Indices[f*3]]
		b := g.Vertices[g.Indices[f*3+1]]
		c := g.Vertices[g.Indices[f*3+2]]

		n := a.Normal
		if l := dot(n, n); math.Abs(float64(l-1)) > 1e-4 {
			t.Errorf("face %d normal length^2 = %v, want 1", f, l)
		}

		centroid := [3]float32{
			(a.Position[0] + b.Position[0] + c.Position[0]) / 3,
			(a.Position[1] + b.Position[1] + c.Position[1]) / 3,
			(a.Position[2] + b.Position[2] + c.Position[2]) / 3,
		}
		if dot(n, centroid) <= 0 {
			t.Errorf("face %d normal %v points inward", f, n)
		}

		// Winding agrees with the stored normal.
		wound := normalize(cross(sub(b.Position, a.Position), sub(c.Position, a.Position)))
		if dot(wound, n) < 0.999 {
			t.Errorf("face %d winding normal %v disagrees with %v", f, wound, n)
		}

		uvs := [3][2]float32{a.TexCoord, b.TexCoord, c.TexCoord}
		if uvs != tetraFaceUVs {
			t.Errorf("face %d uvs = %v, want %v", f, uvs, tetraFaceUVs)
		}
	}
}

func TestTetrahedronRadius(t *testing.T) {
	g := Tetrahedron(2)
	for i, v := range g.Vertices {
		r := sqrtf(dot(v.Position, v.Position))
		if math.Abs(float64(r-2)) > 1e-4 {
			t.Errorf("vertex %d at distance %v, want 2", i, r)
		}
	}
}

func TestSphereBounds(t *testing.T) {
	g := Sphere(1, 8, 6)
	if g.TriangleCount() == 0 {
		t.Fatal("sphere has no triangles")
	}
	for i := 0; i < 3; i++ {
		if g.Bounds.Min[i] < -1.0001 || g.Bounds.Max[i] > 1.0001 {
			t.Errorf("sphere bounds %v exceed radius", g.Bounds)
		}
	}
	for _, idx := range g.Indices {
		if int(idx) >= len(g.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestCube(t *testing.T) {
	g := Cube(2)
	if len(g.Vertices) != 24 {
		t.Errorf("expected 24 vertices, got %d", len(g.Vertices))
	}
	if g.TriangleCount() != 12 {
		t.Errorf("expected 12 triangles, got %d", g.TriangleCount())
	}
	want := Bounds{Min: [3]float32{-1, -1, -1}, Max: [3]float32{1, 1, 1}}
	if g.Bounds != want {
		t.Errorf("bounds = %v, want %v", g.Bounds, want)
	}
}

func TestFlatShapes(t *testing.T) {
	tests := []struct {
		name      string
		g         *Geometry
		triangles int
	}{
		{"disc", Disc(1, 16), 16},
		{"square", Square(1), 2},
		{"triangle", Triangle(1), 1},
	}

	for _, tt := range tests {
		if tt.g.TriangleCount() != tt.triangles {
			t.Errorf("%s: %d triangles, want %d", tt.name, tt.g.TriangleCount(), tt.triangles)
		}
		for _, v := range tt.g.Vertices {
			if v.Position[2] != 0 {
				t.Errorf("%s: vertex %v not in XY plane", tt.name, v.Position)
			}
		}
	}
}

func TestSharedGeometry(t *testing.T) {
	for _, s := range tone.Shapes {
		if Head(s) == nil || Shadow(s) == nil {
			t.Errorf("missing shared geometry for %s", s)
		}
		if Head(s) != Head(s) {
			t.Errorf("Head(%s) is not shared", s)
		}
	}
	if Head(tone.ShapeTetra).Name != "tetrahedron" {
		t.Errorf("tetra head = %s", Head(tone.ShapeTetra).Name)
	}
}

func TestSharedGeometryPanicsOnUnknownShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown shape")
		}
	}()
	Head(tone.Shape(9))
}

func TestClone(t *testing.T) {
	g := Cube(1)
	c := g.Clone()
	if !reflect.DeepEqual(g, c) {
		t.Fatal("clone differs from original")
	}
	c.Vertices[0].Position[0] = 42
	if g.Vertices[0].Position[0] == 42 {
		t.Error("modifying clone changed the original")
	}
}
