package palette

import (
	"fmt"
	"path"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/tonefield/internal/config"
	"github.com/Faultbox/tonefield/internal/material"
	"github.com/Faultbox/tonefield/internal/tone"
	"github.com/Faultbox/tonefield/pkg/math"
)

// Static is an immutable palette built once from configuration.
type Static struct {
	noteCount int
	shapes    map[string][]material.Uniforms
	colors    []material.Uniforms
	sprite134 []material.Texture
	sprite567 []material.Texture
}

// NewStatic builds a palette from configuration. Colors are hex strings.
func NewStatic(cfg config.PaletteConfig) (*Static, error) {
	if cfg.NoteCount <= 0 {
		return nil, fmt.Errorf("palette: note count must be positive, got %d", cfg.NoteCount)
	}

	p := &Static{
		noteCount: cfg.NoteCount,
		shapes:    make(map[string][]material.Uniforms, len(cfg.Shapes)),
	}

	for i, c := range cfg.Colors {
		base, err := parseColor(c.Base)
		if err != nil {
			return nil, fmt.Errorf("palette: color %d base: %w", i, err)
		}
		accent := base
		if c.Accent != "" {
			if accent, err = parseColor(c.Accent); err != nil {
				return nil, fmt.Errorf("palette: color %d accent: %w", i, err)
			}
		}
		p.colors = append(p.colors, material.Uniforms{
			material.UniformColor:  base,
			material.UniformAccent: accent,
		})
	}

	for _, s := range cfg.Shapes {
		entries := make([]material.Uniforms, 0, len(s.Textures))
		for _, file := range s.Textures {
			entries = append(entries, material.Uniforms{
				material.UniformShapeTexture: textureFor(file),
			})
		}
		p.shapes[s.Name] = entries
	}

	for _, file := range cfg.Sprite134 {
		p.sprite134 = append(p.sprite134, textureFor(file))
	}
	for _, file := range cfg.Sprite567 {
		p.sprite567 = append(p.sprite567, textureFor(file))
	}
	return p, nil
}

// TotalNotes implements Palette.
func (p *Static) TotalNotes() int {
	return p.noteCount * tone.ShapeCount
}

// NoteCount implements Palette.
func (p *Static) NoteCount() int {
	return p.noteCount
}

// ShapePalette implements Palette.
func (p *Static) ShapePalette(name string) ([]material.Uniforms, error) {
	entries, ok := p.shapes[name]
	if !ok {
		return nil, &MissingResourceError{Kind: KindShape, Key: name, Index: -1}
	}
	return entries, nil
}

// ColorPalette implements Palette.
func (p *Static) ColorPalette() []material.Uniforms {
	return p.colors
}

// TextureSprite134 implements Palette.
func (p *Static) TextureSprite134(id int) (material.Texture, error) {
	if id < 0 || id >= len(p.sprite134) {
		return material.Texture{}, &MissingResourceError{Kind: KindSprite134, Index: id}
	}
	return p.sprite134[id], nil
}

// TextureSprite567 implements Palette.
func (p *Static) TextureSprite567(id int) (material.Texture, error) {
	if id < 0 || id >= len(p.sprite567) {
		return material.Texture{}, &MissingResourceError{Kind: KindSprite567, Index: id}
	}
	return p.sprite567[id], nil
}

func parseColor(hex string) (math.Vec3, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return math.Vec3{}, err
	}
	// Shaders expect linear RGB.
	r, g, b := c.LinearRgb()
	return math.Vec3{X: float32(r), Y: float32(g), Z: float32(b)}, nil
}

func textureFor(file string) material.Texture {
	name := strings.TrimSuffix(path.Base(file), path.Ext(file))
	return material.Texture{Name: name, Path: file}
}
