// Package main is a preview window for the note field: it spawns one ball
// per tone and lets you hit, highlight and retune them from the keyboard.
package main

import (
	"fmt"
	gomath "math"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/Faultbox/tonefield/internal/ball"
	"github.com/Faultbox/tonefield/internal/config"
	"github.com/Faultbox/tonefield/internal/logger"
	"github.com/Faultbox/tonefield/internal/note"
	"github.com/Faultbox/tonefield/internal/palette"
	"github.com/Faultbox/tonefield/internal/render"
	"github.com/Faultbox/tonefield/internal/scene"
	"github.com/Faultbox/tonefield/internal/tween"
	"github.com/Faultbox/tonefield/internal/window"
	"github.com/Faultbox/tonefield/pkg/math"
)

const (
	windowTitle = "Tonefield"
	ringRadius  = 7
	ballHeight  = 2
	orbitSpeed  = 0.005
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Tonefield Note Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

type viewer struct {
	system   *ball.System
	entities []donburi.Entity
	selected int
	total    int
}

func run(cfg *config.Config) error {
	pal, err := palette.NewStatic(cfg.Palette)
	if err != nil {
		return err
	}

	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	dw, dh := win.DrawableSize()
	r, err := render.New(render.Config{Width: dw, Height: dh, AssetDir: cfg.Graphics.AssetDir})
	if err != nil {
		return err
	}
	defer r.Close()
	r.Resize(dw, dh)
	r.Camera.Eye = math.Vec3{Y: 9, Z: 16}
	r.Camera.Target = math.Vec3{Y: 1}

	env := note.Env{
		Palette:  pal,
		Tweens:   tween.NewGroup(),
		Settings: note.SettingsFromConfig(cfg),
	}
	v := &viewer{
		system: ball.NewSystem(scene.NewGroup("field"), env),
		total:  pal.TotalNotes(),
	}
	v.system.OnCreated(func(ev ball.Created) {
		logger.Debug("ball ready", zap.String("ball", ev.Element.Name), zap.String("hand", ev.Hand))
	})
	if err := v.spawnRing(); err != nil {
		return err
	}

	var orbiting bool
	last := sdl.GetTicks64()
	for running := true; running; {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false

			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					r.Resize(win.DrawableSize())
				}

			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_RIGHT {
					orbiting = e.State == sdl.PRESSED
				}

			case *sdl.MouseMotionEvent:
				if orbiting {
					r.Camera.Orbit(float32(e.XRel) * orbitSpeed)
				}

			case *sdl.KeyboardEvent:
				if e.State == sdl.PRESSED && !v.handleKey(e.Keysym.Sym) {
					running = false
				}
			}
		}

		now := sdl.GetTicks64()
		dt := durationMs(now - last)
		last = now

		if err := v.system.Update(dt); err != nil {
			logger.Warn("frame errors", zap.Error(err))
		}
		r.Draw(v.system.Root())
		win.SwapBuffers()
	}
	return nil
}

// spawnRing places one ball per tone on a circle around the origin.
func (v *viewer) spawnRing() error {
	for t := 0; t < v.total; t++ {
		attrs := ball.DefaultAttributes()
		attrs.Tone = t
		e, err := v.system.Spawn(attrs)
		if err != nil {
			return fmt.Errorf("spawning tone %d: %w", t, err)
		}

		angle := float64(t) / float64(v.total) * 2 * gomath.Pi
		sin, cos := gomath.Sincos(angle)
		v.system.Ball(e).Group().Position = math.Vec3{
			X: float32(cos) * ringRadius,
			Y: ballHeight,
			Z: float32(sin) * ringRadius,
		}
		v.entities = append(v.entities, e)
	}
	v.system.Highlight(v.entities[0])
	return nil
}

// handleKey reacts to a key press and reports whether the viewer keeps running.
func (v *viewer) handleKey(key sdl.Keycode) bool {
	current := v.entities[v.selected]

	switch key {
	case sdl.K_ESCAPE:
		return false

	case sdl.K_TAB:
		v.system.UnHighlight(current)
		v.selected = (v.selected + 1) % len(v.entities)
		v.system.Highlight(v.entities[v.selected])

	case sdl.K_SPACE:
		b := v.system.Ball(current)
		if b == nil {
			break
		}
		controller := b.Group().Position.Add(math.Vec3{Y: 1, Z: 1})
		v.system.Hit(current, note.HitEvent{ControllerPosition: &controller, Velocity: 1.5})

	case sdl.K_UP, sdl.K_DOWN:
		attrs, ok := v.system.Attributes(current)
		if !ok {
			break
		}
		step := 1
		if key == sdl.K_DOWN {
			step = v.total - 1
		}
		next := (attrs.Tone + step) % v.total
		if err := v.system.SetAttribute(current, ball.AttrTone, next); err != nil {
			logger.Warn("tone change rejected", zap.Error(err))
		}

	case sdl.K_LEFT, sdl.K_RIGHT:
		if b := v.system.Ball(current); b != nil {
			b.Spin(key == sdl.K_RIGHT)
		}

	case sdl.K_s:
		if b := v.system.Ball(current); b != nil && b.Note() != nil {
			b.Note().RemoveShadow()
		}
	}
	return true
}
