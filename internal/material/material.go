// Package material holds shader parameters for note meshes.
package material

import (
	"fmt"
	"maps"
	"sort"

	"github.com/Faultbox/tonefield/pkg/math"
)

// Uniform names shared between notes and the note shaders.
const (
	UniformBrightness    = "brightness"
	UniformSpriteIndex   = "spriteIndex"
	UniformMap134        = "map134"
	UniformMap567        = "map567"
	UniformLightPosition = "lightPosition"
	UniformShapeTexture  = "shapeTexture"
	UniformColor         = "color"
	UniformAccent        = "accent"
	UniformOpacity       = "opacity"
)

// Shader identifies which program a material is drawn with.
type Shader uint8

const (
	ShaderNote Shader = iota
	ShaderShadow
)

func (s Shader) String() string {
	switch s {
	case ShaderNote:
		return "note"
	case ShaderShadow:
		return "shadow"
	default:
		return fmt.Sprintf("shader(%d)", uint8(s))
	}
}

// Texture is a handle to an image the renderer resolves and uploads.
type Texture struct {
	Name string
	Path string
}

// IsZero reports whether the handle is unset.
func (t Texture) IsZero() bool {
	return t.Name == "" && t.Path == ""
}

// Uniforms maps uniform names to values. Supported value types are
// float32, int, math.Vec3, [3]float32 and Texture.
type Uniforms map[string]any

// Material is a shader plus its uniform values.
type Material struct {
	Shader      Shader
	Transparent bool
	uniforms    Uniforms
}

// New creates a material with a copy of the given uniforms.
func New(shader Shader, uniforms Uniforms) *Material {
	m := &Material{Shader: shader, uniforms: make(Uniforms, len(uniforms))}
	maps.Copy(m.uniforms, uniforms)
	return m
}

// Clone returns a material with its own uniform map.
func (m *Material) Clone() *Material {
	c := New(m.Shader, m.uniforms)
	c.Transparent = m.Transparent
	return c
}

// Set assigns a uniform.
func (m *Material) Set(name string, value any) {
	m.uniforms[name] = value
}

// Apply assigns every uniform in u.
func (m *Material) Apply(u Uniforms) {
	maps.Copy(m.uniforms, u)
}

// Value returns a uniform and whether it is set.
func (m *Material) Value(name string) (any, bool) {
	v, ok := m.uniforms[name]
	return v, ok
}

// Float returns a float uniform, or 0 if unset or of another type.
func (m *Material) Float(name string) float32 {
	v, _ := m.uniforms[name].(float32)
	return v
}

// Int returns an int uniform, or 0 if unset or of another type.
func (m *Material) Int(name string) int {
	v, _ := m.uniforms[name].(int)
	return v
}

// Vec3 returns a vector uniform, accepting math.Vec3 or [3]float32.
func (m *Material) Vec3(name string) math.Vec3 {
	switch v := m.uniforms[name].(type) {
	case math.Vec3:
		return v
	case [3]float32:
		return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
	}
	return math.Vec3{}
}

// Texture returns a texture uniform, or the zero handle.
func (m *Material) Texture(name string) Texture {
	v, _ := m.uniforms[name].(Texture)
	return v
}

// Names returns the uniform names in sorted order.
func (m *Material) Names() []string {
	names := make([]string, 0, len(m.uniforms))
	for name := range m.uniforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
