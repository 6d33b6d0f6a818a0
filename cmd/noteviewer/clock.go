package main

import "time"

// maxFrame caps a frame step so a stalled window does not fast-forward
// every animation at once.
const maxFrame = 100 * time.Millisecond

func durationMs(ms uint64) time.Duration {
	return min(time.Duration(ms)*time.Millisecond, maxFrame)
}
