// Package tone maps palette tone indices to shapes, textures and display scale.
package tone

import "fmt"

// Shape is the solid a tone is drawn as.
type Shape uint8

const (
	ShapeSphere Shape = iota
	ShapeCube
	ShapeTetra
)

// ShapeCount is the number of shapes a palette is split into.
const ShapeCount = 3

// Shapes lists every shape in tone order.
var Shapes = [ShapeCount]Shape{ShapeSphere, ShapeCube, ShapeTetra}

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeCube:
		return "cube"
	case ShapeTetra:
		return "tetra"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the known shapes.
func (s Shape) Valid() bool {
	return s < ShapeCount
}

// TextureName returns the shape texture set used by the palette.
func (s Shape) TextureName() string {
	switch s {
	case ShapeSphere:
		return "circles"
	case ShapeCube:
		return "squares"
	case ShapeTetra:
		return "triangles"
	default:
		return ""
	}
}

// ParseShape returns the shape with the given name.
func ParseShape(name string) (Shape, error) {
	for _, s := range Shapes {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// InvalidToneError reports a tone outside the palette range.
type InvalidToneError struct {
	Tone  int
	Limit int
}

func (e *InvalidToneError) Error() string {
	return fmt.Sprintf("invalid tone %d: must be in [0, %d)", e.Tone, e.Limit)
}

// Validate checks 0 <= t < ShapeCount*noteCount.
func Validate(t, noteCount int) error {
	limit := ShapeCount * noteCount
	if noteCount <= 0 || t < 0 || t >= limit {
		return &InvalidToneError{Tone: t, Limit: limit}
	}
	return nil
}

// ShapeOf returns the shape for a tone. The tone must be valid.
func ShapeOf(t, noteCount int) Shape {
	return Shape(TextureID(t, noteCount))
}

// TextureID returns the texture set index for a tone.
func TextureID(t, noteCount int) int {
	return t / noteCount
}

// TextureOrder returns the position of a tone within its texture set.
func TextureOrder(t, noteCount int) int {
	return t % noteCount
}

// FromTexture rebuilds a tone from its texture id and order.
func FromTexture(textureID, textureOrder, noteCount int) int {
	return textureID*noteCount + textureOrder
}

// Scale returns the display scale of a tone: 3 for the lowest tone, down
// to 1 for the highest. A single-note palette always yields 3.
func Scale(t, totalNotes int) float32 {
	if totalNotes <= 1 {
		return 3
	}
	return (1-float32(t)/float32(totalNotes-1))*2 + 1
}
