package ball

import (
	"fmt"
	"time"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/Faultbox/tonefield/internal/logger"
	"github.com/Faultbox/tonefield/internal/note"
	"github.com/Faultbox/tonefield/internal/scene"
)

// Ball is the visual object of one entity: a note inside its own group.
type Ball struct {
	world  donburi.World
	entity donburi.Entity
	env    note.Env
	parent *scene.Group
	group  *scene.Group
	note   *note.Note
	log    *zap.Logger
}

var _ VisualObject = (*Ball)(nil)

// New binds a ball to an entity. Visuals are built by OnCreate.
func New(w donburi.World, e donburi.Entity, name string, parent *scene.Group, env note.Env) *Ball {
	return &Ball{
		world:  w,
		entity: e,
		env:    env,
		parent: parent,
		group:  scene.NewGroup(name),
		log:    logger.Named("ball").With(zap.String("ball", name)),
	}
}

// OnCreate builds the note for the entity's tone, attaches it under the
// parent group and announces the ball.
func (b *Ball) OnCreate() error {
	attrs, err := b.attributes()
	if err != nil {
		return err
	}

	n := note.New(b.group, b.env)
	if err := n.SetTone(attrs.Tone); err != nil {
		return fmt.Errorf("creating %s: %w", b.group.Name, err)
	}
	b.note = n
	if b.parent != nil {
		b.parent.AddGroup(b.group)
	}

	CreatedEvent.Publish(b.world, Created{
		ID:      b.entity,
		Element: b.group,
		Grab:    true,
		Hand:    attrs.Hand,
	})
	b.log.Debug("created", zap.Int("tone", attrs.Tone), zap.String("hand", attrs.Hand))
	return nil
}

// OnAttributeChanged applies a tone change. Other attributes belong to the host.
func (b *Ball) OnAttributeChanged(name string) error {
	if name != AttrTone {
		return nil
	}
	if b.note == nil {
		return fmt.Errorf("%s: tone changed before create", b.group.Name)
	}
	attrs, err := b.attributes()
	if err != nil {
		return err
	}
	return b.note.SetTone(attrs.Tone)
}

// OnTick advances the note by one frame.
func (b *Ball) OnTick(dt time.Duration) error {
	if b.note != nil {
		b.note.Tick(dt)
	}
	return nil
}

// OnDestroy releases the note and removes the ball's group from its parent.
func (b *Ball) OnDestroy() {
	if b.note != nil {
		b.note.Release()
		b.note = nil
	}
	if b.parent != nil {
		b.parent.RemoveGroup(b.group)
	}
	b.log.Debug("destroyed")
}

// Hit strikes the note with the configured hit duration.
func (b *Ball) Hit(ev note.HitEvent) error {
	if b.note == nil {
		return &note.AnimationStateError{Reason: "ball not created"}
	}
	return b.note.Hit(ev, b.env.Settings.HitDuration)
}

// Highlight brightens the note.
func (b *Ball) Highlight() {
	if b.note != nil {
		b.note.Highlight()
	}
}

// UnHighlight restores the note.
func (b *Ball) UnHighlight() {
	if b.note != nil {
		b.note.UnHighlight()
	}
}

// Spin turns the note one rotation step.
func (b *Ball) Spin(clockwise bool) {
	if b.note != nil {
		b.note.SetRotationIncrement(clockwise)
	}
}

// Entity returns the ball's entity.
func (b *Ball) Entity() donburi.Entity { return b.entity }

// Group returns the scene group holding the note.
func (b *Ball) Group() *scene.Group { return b.group }

// Note returns the ball's note, or nil before OnCreate.
func (b *Ball) Note() *note.Note { return b.note }

func (b *Ball) attributes() (*AttributesData, error) {
	if !b.world.Valid(b.entity) {
		return nil, fmt.Errorf("%s: entity no longer exists", b.group.Name)
	}
	return Attributes.Get(b.world.Entry(b.entity)), nil
}
