package note

import (
	"fmt"
	"testing"

	"github.com/Faultbox/tonefield/internal/config"
	"github.com/Faultbox/tonefield/internal/palette"
	"github.com/Faultbox/tonefield/internal/tween"
)

// testPalette has three tones per shape, nine in total.
func testPalette(t *testing.T) *palette.Static {
	t.Helper()
	cfg := config.PaletteConfig{
		NoteCount: 3,
		Colors: []config.Color{
			{Base: "#ff0000"},
			{Base: "#00ff00"},
			{Base: "#0000ff"},
		},
	}
	for _, name := range []string{"circles", "squares", "triangles"} {
		s := config.Shape{Name: name}
		for i := 0; i < 3; i++ {
			s.Textures = append(s.Textures, fmt.Sprintf("tex/%s_%d.png", name, i))
		}
		cfg.Shapes = append(cfg.Shapes, s)
		cfg.Sprite134 = append(cfg.Sprite134, "tex/"+name+"_134.png")
		cfg.Sprite567 = append(cfg.Sprite567, "tex/"+name+"_567.png")
	}

	p, err := palette.NewStatic(cfg)
	if err != nil {
		t.Fatalf("failed to build palette: %v", err)
	}
	return p
}

func testEnv(t *testing.T) Env {
	t.Helper()
	return Env{
		Palette:  testPalette(t),
		Tweens:   tween.NewGroup(),
		Settings: DefaultSettings(),
	}
}
