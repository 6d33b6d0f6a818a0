package ball

import (
	"errors"
	"fmt"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap"

	"github.com/Faultbox/tonefield/internal/logger"
	"github.com/Faultbox/tonefield/internal/note"
	"github.com/Faultbox/tonefield/internal/scene"
)

// System owns the world, the root scene group and the tween clock. Events
// published at balls are delivered during Update.
type System struct {
	world donburi.World
	root  *scene.Group
	env   note.Env
	balls *donburi.Query
	log   *zap.Logger

	nextID int
	errs   []error
}

// NewSystem creates an empty world whose balls attach under root.
func NewSystem(root *scene.Group, env note.Env) *System {
	s := &System{
		world: donburi.NewWorld(),
		root:  root,
		env:   env,
		balls: donburi.NewQuery(filter.Contains(BallRef)),
		log:   logger.Named("ball"),
	}

	AttributeChangedEvent.Subscribe(s.world, s.onAttributeChanged)
	HitEvent.Subscribe(s.world, s.onHit)
	HighlightEvent.Subscribe(s.world, s.onHighlight)
	UnHighlightEvent.Subscribe(s.world, s.onUnHighlight)
	return s
}

// OnCreated registers a listener for new balls.
func (s *System) OnCreated(fn func(Created)) {
	CreatedEvent.Subscribe(s.world, func(_ donburi.World, ev Created) {
		fn(ev)
	})
}

// Spawn creates an entity with attrs and builds its ball. The Created
// event is delivered on the next Update.
func (s *System) Spawn(attrs AttributesData) (donburi.Entity, error) {
	e := s.world.Create(Attributes, BallRef)
	entry := s.world.Entry(e)
	Attributes.SetValue(entry, attrs)

	s.nextID++
	b := New(s.world, e, fmt.Sprintf("ball-%d", s.nextID), s.root, s.env)
	BallRef.SetValue(entry, BallRefData{Ball: b})

	if err := b.OnCreate(); err != nil {
		s.world.Remove(e)
		s.log.Warn("spawn failed", zap.Int("tone", attrs.Tone), zap.Error(err))
		return e, err
	}
	return e, nil
}

// SetAttribute writes an attribute and notifies the ball on the next Update.
func (s *System) SetAttribute(e donburi.Entity, name string, value any) error {
	if !s.world.Valid(e) {
		return fmt.Errorf("set %s: no such entity", name)
	}
	if err := Attributes.Get(s.world.Entry(e)).Set(name, value); err != nil {
		return err
	}
	AttributeChangedEvent.Publish(s.world, AttributeChanged{Target: e, Name: name})
	return nil
}

// Hit queues a hit on a ball.
func (s *System) Hit(e donburi.Entity, ev note.HitEvent) {
	HitEvent.Publish(s.world, Hit{Target: e, HitEvent: ev})
}

// Highlight queues a highlight on a ball.
func (s *System) Highlight(e donburi.Entity) {
	HighlightEvent.Publish(s.world, Highlight{Target: e})
}

// UnHighlight queues an unhighlight on a ball.
func (s *System) UnHighlight(e donburi.Entity) {
	UnHighlightEvent.Publish(s.world, UnHighlight{Target: e})
}

// Destroy releases a ball and removes its entity.
func (s *System) Destroy(e donburi.Entity) {
	if b := s.Ball(e); b != nil {
		b.OnDestroy()
	}
	if s.world.Valid(e) {
		s.world.Remove(e)
	}
}

// Update delivers queued events, advances tweens and ticks every ball.
// It returns the errors balls reported; none of them stop the frame.
func (s *System) Update(dt time.Duration) error {
	events.ProcessAllEvents(s.world)
	s.env.Tweens.Update(dt)

	s.balls.Each(s.world, func(entry *donburi.Entry) {
		b := BallRef.Get(entry).Ball
		s.report(b, "tick", b.OnTick(dt))
	})

	err := errors.Join(s.errs...)
	s.errs = s.errs[:0]
	return err
}

// Ball returns the ball on an entity, or nil.
func (s *System) Ball(e donburi.Entity) *Ball {
	if !s.world.Valid(e) {
		return nil
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(BallRef) {
		return nil
	}
	return BallRef.Get(entry).Ball
}

// Attributes returns a copy of an entity's attributes.
func (s *System) Attributes(e donburi.Entity) (AttributesData, bool) {
	if !s.world.Valid(e) {
		return AttributesData{}, false
	}
	return *Attributes.Get(s.world.Entry(e)), true
}

// Count returns the number of live balls.
func (s *System) Count() int {
	return s.balls.Count(s.world)
}

// Balls calls fn for every live ball.
func (s *System) Balls(fn func(*Ball)) {
	s.balls.Each(s.world, func(entry *donburi.Entry) {
		fn(BallRef.Get(entry).Ball)
	})
}

// World returns the underlying donburi world.
func (s *System) World() donburi.World { return s.world }

// Root returns the group balls attach under.
func (s *System) Root() *scene.Group { return s.root }

func (s *System) onAttributeChanged(_ donburi.World, ev AttributeChanged) {
	if b := s.target(ev.Target, "attribute"); b != nil {
		s.report(b, "attribute "+ev.Name, b.OnAttributeChanged(ev.Name))
	}
}

func (s *System) onHit(_ donburi.World, ev Hit) {
	if b := s.target(ev.Target, "hit"); b != nil {
		s.report(b, "hit", b.Hit(ev.HitEvent))
	}
}

func (s *System) onHighlight(_ donburi.World, ev Highlight) {
	if b := s.target(ev.Target, "highlight"); b != nil {
		b.Highlight()
	}
}

func (s *System) onUnHighlight(_ donburi.World, ev UnHighlight) {
	if b := s.target(ev.Target, "unhighlight"); b != nil {
		b.UnHighlight()
	}
}

// target resolves an event's entity. Events for destroyed balls are dropped.
func (s *System) target(e donburi.Entity, kind string) *Ball {
	b := s.Ball(e)
	if b == nil {
		s.log.Debug("event for missing ball dropped", zap.String("event", kind))
	}
	return b
}

func (s *System) report(b *Ball, op string, err error) {
	if err == nil {
		return
	}
	s.log.Error("ball event failed",
		zap.String("ball", b.Group().Name),
		zap.String("op", op),
		zap.Error(err),
	)
	s.errs = append(s.errs, fmt.Errorf("%s %s: %w", b.Group().Name, op, err))
}
