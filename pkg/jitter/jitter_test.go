package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationWithRand(t *testing.T) {
	assert.Equal(t, 150*time.Millisecond, DurationWithRand(100*time.Millisecond, 0.5, func() float64 { return 1 }))
	assert.Equal(t, 100*time.Millisecond, DurationWithRand(100*time.Millisecond, 0.5, func() float64 { return 0 }))
	assert.Equal(t, 100*time.Millisecond, DurationWithRand(100*time.Millisecond, 0, func() float64 { return 1 }))
}

func TestExponentialBackoff_Bounds(t *testing.T) {
	base := 10 * time.Millisecond
	max := 80 * time.Millisecond

	for attempt := 0; attempt < 6; attempt++ {
		got := ExponentialBackoff(base, max, attempt, DefaultJitter)

		expected := base << attempt
		if expected > max {
			expected = max
		}

		assert.GreaterOrEqual(t, got, expected)
		assert.LessOrEqual(t, got, expected+expected/2)
	}
}
