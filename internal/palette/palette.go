// Package palette resolves tones to the textures and colors notes are shaded with.
package palette

import (
	"fmt"

	"github.com/Faultbox/tonefield/internal/material"
)

// Palette is the source of per-tone shading resources.
// Implementations must not change while notes reference them.
type Palette interface {
	// TotalNotes is the number of tones across all shapes.
	TotalNotes() int
	// NoteCount is the number of tones per shape.
	NoteCount() int
	// ShapePalette returns the shape texture uniforms of a texture set,
	// one entry per tone order.
	ShapePalette(name string) ([]material.Uniforms, error)
	// ColorPalette returns the color uniforms, one entry per tone order.
	ColorPalette() []material.Uniforms
	// TextureSprite134 returns the first hit atlas of a texture set.
	TextureSprite134(id int) (material.Texture, error)
	// TextureSprite567 returns the second hit atlas of a texture set.
	TextureSprite567(id int) (material.Texture, error)
}

// Resource kinds reported by MissingResourceError.
const (
	KindShape     = "shape"
	KindColor     = "color"
	KindSprite134 = "sprite134"
	KindSprite567 = "sprite567"
)

// MissingResourceError reports a lookup the palette cannot satisfy.
type MissingResourceError struct {
	Kind  string
	Key   string
	Index int
}

func (e *MissingResourceError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("palette: no %s resource %q at index %d", e.Kind, e.Key, e.Index)
	}
	return fmt.Sprintf("palette: no %s resource at index %d", e.Kind, e.Index)
}

// Appearance is everything a note head needs from the palette for one tone.
type Appearance struct {
	Shape  material.Uniforms
	Color  material.Uniforms
	Map134 material.Texture
	Map567 material.Texture
}

// Resolve looks up the resources for a texture set and tone order.
func Resolve(p Palette, textureName string, textureID, textureOrder int) (Appearance, error) {
	var a Appearance

	shapes, err := p.ShapePalette(textureName)
	if err != nil {
		return a, err
	}
	if textureOrder < 0 || textureOrder >= len(shapes) {
		return a, &MissingResourceError{Kind: KindShape, Key: textureName, Index: textureOrder}
	}
	a.Shape = shapes[textureOrder]

	colors := p.ColorPalette()
	if textureOrder < 0 || textureOrder >= len(colors) {
		return a, &MissingResourceError{Kind: KindColor, Index: textureOrder}
	}
	a.Color = colors[textureOrder]

	if a.Map134, err = p.TextureSprite134(textureID); err != nil {
		return a, err
	}
	if a.Map567, err = p.TextureSprite567(textureID); err != nil {
		return a, err
	}
	return a, nil
}
