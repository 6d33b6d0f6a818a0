package scene

import "github.com/Faultbox/tonefield/pkg/math"

// Group is a transform node that holds meshes and child groups.
type Group struct {
	Transform
	Name string

	parent   *Group
	meshes   []*Mesh
	children []*Group
}

// NewGroup creates an empty group with an identity transform.
func NewGroup(name string) *Group {
	return &Group{Transform: NewTransform(), Name: name}
}

// Add attaches meshes, detaching them from any previous parent.
func (g *Group) Add(meshes ...*Mesh) {
	for _, m := range meshes {
		if m == nil || m.parent == g {
			continue
		}
		m.Detach()
		m.parent = g
		g.meshes = append(g.meshes, m)
	}
}

// Remove detaches a mesh. It reports whether the mesh was a child of g.
func (g *Group) Remove(m *Mesh) bool {
	for i, child := range g.meshes {
		if child == m {
			g.meshes = append(g.meshes[:i], g.meshes[i+1:]...)
			m.parent = nil
			return true
		}
	}
	return false
}

// AddGroup attaches a child group.
func (g *Group) AddGroup(child *Group) {
	if child == nil || child.parent == g {
		return
	}
	if child.parent != nil {
		child.parent.RemoveGroup(child)
	}
	child.parent = g
	g.children = append(g.children, child)
}

// RemoveGroup detaches a child group.
func (g *Group) RemoveGroup(child *Group) bool {
	for i, c := range g.children {
		if c == child {
			g.children = append(g.children[:i], g.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Meshes returns the directly attached meshes.
func (g *Group) Meshes() []*Mesh {
	return g.meshes
}

// Children returns the child groups.
func (g *Group) Children() []*Group {
	return g.children
}

// WorldMatrix returns the group's transform including its ancestors.
func (g *Group) WorldMatrix() math.Mat4 {
	local := g.Matrix()
	if g.parent == nil {
		return local
	}
	return g.parent.WorldMatrix().Mul(local)
}

// ToLocal converts a world-space point into the group's local space.
func (g *Group) ToLocal(p math.Vec3) math.Vec3 {
	return g.WorldMatrix().Inverse().TransformVec3(p)
}

// Walk visits every visible mesh in the subtree, depth first.
func (g *Group) Walk(fn func(*Mesh)) {
	for _, m := range g.meshes {
		if m.Visible {
			fn(m)
		}
	}
	for _, c := range g.children {
		c.Walk(fn)
	}
}
