package geometry

// tetraCorners are alternating corners of a cube, which form a regular tetrahedron.
var tetraCorners = [4][3]float32{
	{1, 1, 1},
	{-1, -1, 1},
	{-1, 1, -1},
	{1, -1, -1},
}

var tetraFaces = [4][3]int{
	{2, 1, 0},
	{0, 3, 2},
	{1, 3, 0},
	{2, 3, 1},
}

var tetraFaceUVs = [3][2]float32{
	{0, 0},
	{1, 0},
	{0.5, 1},
}

// Tetrahedron builds a regular tetrahedron centred on the origin with its
// corners at the given radius. Each face has its own three vertices so the
// normals stay flat.
func Tetrahedron(radius float32) *Geometry {
	var corners [4][3]float32
	for i, c := range tetraCorners {
		corners[i] = scale(normalize(c), radius)
	}

	g := &Geometry{Name: "tetrahedron"}
	for _, face := range tetraFaces {
		p0, p1, p2 := corners[face[0]], corners[face[1]], corners[face[2]]
		n := normalize(cross(sub(p1, p0), sub(p2, p0)))

		// The solid is centred on the origin, so an outward normal points
		// the same way as the face centroid.
		centroid := [3]float32{
			(p0[0] + p1[0] + p2[0]) / 3,
			(p0[1] + p1[1] + p2[1]) / 3,
			(p0[2] + p1[2] + p2[2]) / 3,
		}
		if dot(n, centroid) < 0 {
			p1, p2 = p2, p1
			n = scale(n, -1)
		}

		base := uint32(len(g.Vertices))
		for j, p := range [3][3]float32{p0, p1, p2} {
			g.Vertices = append(g.Vertices, Vertex{
				Position: p,
				Normal:   n,
				TexCoord: tetraFaceUVs[j],
			})
		}
		g.Indices = append(g.Indices, base, base+1, base+2)
	}
	g.computeBounds()
	return g
}
