package main

import (
	"testing"
	"time"
)

func TestDurationMs(t *testing.T) {
	tests := []struct {
		ms   uint64
		want time.Duration
	}{
		{0, 0},
		{16, 16 * time.Millisecond},
		{100, 100 * time.Millisecond},
		{5000, maxFrame},
	}
	for _, tt := range tests {
		if got := durationMs(tt.ms); got != tt.want {
			t.Errorf("durationMs(%d) = %v, want %v", tt.ms, got, tt.want)
		}
	}
}
