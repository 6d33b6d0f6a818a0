package ball

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// Attribute names accepted by System.SetAttribute.
const (
	AttrTone         = "tone"
	AttrRadius       = "radius"
	AttrGrabbed      = "grabbed"
	AttrHand         = "hand"
	AttrMeristem     = "meristem"
	AttrMeristemNode = "meristemNode"
)

// AttributesData is the host-visible state of a ball. Only Tone affects
// the note; the rest is carried for the host.
type AttributesData struct {
	Tone         int
	Radius       float32
	Grabbed      bool
	Hand         string
	Meristem     bool
	MeristemNode string
}

// DefaultAttributes returns the attributes of a freshly spawned ball.
func DefaultAttributes() AttributesData {
	return AttributesData{Radius: 0.05, Hand: "right"}
}

// Set assigns one attribute by name. The value must have the attribute's
// type; a rejected value leaves a unchanged.
func (a *AttributesData) Set(name string, value any) error {
	next := *a
	var ok bool
	switch name {
	case AttrTone:
		next.Tone, ok = value.(int)
	case AttrRadius:
		next.Radius, ok = value.(float32)
	case AttrGrabbed:
		next.Grabbed, ok = value.(bool)
	case AttrHand:
		next.Hand, ok = value.(string)
	case AttrMeristem:
		next.Meristem, ok = value.(bool)
	case AttrMeristemNode:
		next.MeristemNode, ok = value.(string)
	default:
		return fmt.Errorf("unknown attribute %q", name)
	}
	if !ok {
		return fmt.Errorf("attribute %q: unexpected value type %T", name, value)
	}
	*a = next
	return nil
}

// BallRefData links an entity to its Ball.
type BallRefData struct {
	Ball *Ball
}

var (
	Attributes = donburi.NewComponentType[AttributesData]()
	BallRef    = donburi.NewComponentType[BallRefData]()
)
