// Package config handles note field configuration loading and management.
package config

import (
	"strconv"
	"time"
)

// Config holds all settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Palette   PaletteConfig   `yaml:"palette"`
	Animation AnimationConfig `yaml:"animation"`
	Shadow    ShadowConfig    `yaml:"shadow"`
	Light     LightConfig     `yaml:"light"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds preview window settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	AssetDir   string `yaml:"asset_dir"` // Palette texture paths are relative to this
}

// PaletteConfig describes the tone palette.
type PaletteConfig struct {
	NoteCount int      `yaml:"note_count"` // Tones per shape
	Colors    []Color  `yaml:"colors"`     // One per tone order
	Shapes    []Shape  `yaml:"shapes"`     // Texture sets, keyed by name
	Sprite134 []string `yaml:"sprite_134"` // Atlas per texture id
	Sprite567 []string `yaml:"sprite_567"` // Atlas per texture id
}

// Color is a palette entry with hex color strings.
type Color struct {
	Base   string `yaml:"base"`
	Accent string `yaml:"accent"`
}

// Shape is a named texture set with one texture per tone order.
type Shape struct {
	Name     string   `yaml:"name"`
	Textures []string `yaml:"textures"`
}

// AnimationConfig holds hit animation settings.
type AnimationConfig struct {
	HitDuration  time.Duration `yaml:"hit_duration"`
	HitFrames    int           `yaml:"hit_frames"`    // Sprite frames in the hit flash
	FrameStretch float32       `yaml:"frame_stretch"` // Frame tween length relative to hit duration
	Squash       float32       `yaml:"squash"`        // Scale change per unit of velocity
	Pull         float32       `yaml:"pull"`          // Offset toward the controller per unit of velocity
	RotationStep float32       `yaml:"rotation_step"` // Fraction of a turn per rotation increment
}

// ShadowConfig holds shadow projection settings.
type ShadowConfig struct {
	Floor   float32 `yaml:"floor"`
	Lift    float32 `yaml:"lift"`    // Height above the floor to avoid z-fighting
	Falloff float32 `yaml:"falloff"` // Shrink per unit of head height
}

// LightConfig holds the light copied into note materials.
type LightConfig struct {
	Position [3]float32 `yaml:"position"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			AssetDir:   "assets",
		},
		Palette: DefaultPalette(),
		Animation: AnimationConfig{
			HitDuration:  800 * time.Millisecond,
			HitFrames:    32,
			FrameStretch: 1.25,
			Squash:       0.3,
			Pull:         0.1,
			RotationStep: 0.03,
		},
		Shadow: ShadowConfig{
			Floor:   0,
			Lift:    0.001,
			Falloff: 0.5,
		},
		Light: LightConfig{
			Position: [3]float32{2, 4, 3},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DefaultPalette returns a seven-tone palette.
func DefaultPalette() PaletteConfig {
	colors := []Color{
		{Base: "#e6194b", Accent: "#ff8fa3"},
		{Base: "#f58231", Accent: "#ffc08a"},
		{Base: "#ffe119", Accent: "#fff3a3"},
		{Base: "#3cb44b", Accent: "#a3e8ab"},
		{Base: "#4363d8", Accent: "#a3b4f0"},
		{Base: "#911eb4", Accent: "#d8a3e8"},
		{Base: "#f032e6", Accent: "#f8a3f3"},
	}
	names := []string{"circles", "squares", "triangles"}

	p := PaletteConfig{NoteCount: len(colors), Colors: colors}
	for _, name := range names {
		shape := Shape{Name: name}
		for i := range colors {
			shape.Textures = append(shape.Textures, textureFile(name, i))
		}
		p.Shapes = append(p.Shapes, shape)
		p.Sprite134 = append(p.Sprite134, "textures/"+name+"_134.png")
		p.Sprite567 = append(p.Sprite567, "textures/"+name+"_567.png")
	}
	return p
}

func textureFile(name string, order int) string {
	return "textures/" + name + "_" + strconv.Itoa(order) + ".png"
}
