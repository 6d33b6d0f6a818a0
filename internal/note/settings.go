// Package note implements the visual note: a shaded head shape and its
// floor shadow, driven by tone changes and hit/highlight interactions.
package note

import (
	"time"

	"github.com/Faultbox/tonefield/internal/config"
	"github.com/Faultbox/tonefield/internal/palette"
	"github.com/Faultbox/tonefield/internal/tween"
	"github.com/Faultbox/tonefield/pkg/math"
)

// Settings are the tunables a note reads from configuration.
type Settings struct {
	HitDuration   time.Duration
	HitFrames     int
	FrameStretch  float32
	Squash        float32
	Pull          float32
	RotationStep  float32
	ShadowFloor   float32
	ShadowLift    float32
	ShadowFalloff float32
	LightPosition math.Vec3
}

// SettingsFromConfig extracts note settings from the loaded configuration.
func SettingsFromConfig(cfg *config.Config) Settings {
	a := cfg.Animation
	l := cfg.Light.Position
	return Settings{
		HitDuration:   a.HitDuration,
		HitFrames:     a.HitFrames,
		FrameStretch:  a.FrameStretch,
		Squash:        a.Squash,
		Pull:          a.Pull,
		RotationStep:  a.RotationStep,
		ShadowFloor:   cfg.Shadow.Floor,
		ShadowLift:    cfg.Shadow.Lift,
		ShadowFalloff: cfg.Shadow.Falloff,
		LightPosition: math.Vec3{X: l[0], Y: l[1], Z: l[2]},
	}
}

// DefaultSettings returns the settings of the default configuration.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.Default())
}

// Env is what every note of a field shares: the palette, the tween group
// the host advances each frame, and settings.
type Env struct {
	Palette  palette.Palette
	Tweens   *tween.Group
	Settings Settings
}
