package material

import "github.com/Faultbox/tonefield/pkg/math"

// NewNote returns a fresh note material. Each head owns its own.
func NewNote() *Material {
	return New(ShaderNote, Uniforms{
		UniformBrightness:    float32(0),
		UniformSpriteIndex:   0,
		UniformLightPosition: math.Vec3{},
	})
}

// shadowMaterial is shared by every shadow and never modified after init.
var shadowMaterial = func() *Material {
	m := New(ShaderShadow, Uniforms{
		UniformColor:   math.Vec3{},
		UniformOpacity: float32(0.25),
	})
	m.Transparent = true
	return m
}()

// Shadow returns the shared shadow material.
func Shadow() *Material {
	return shadowMaterial
}
