package note

import "fmt"

// AnimationStateError reports a hit that cannot be animated.
type AnimationStateError struct {
	Reason string
}

func (e *AnimationStateError) Error() string {
	return fmt.Sprintf("note: cannot animate hit: %s", e.Reason)
}
