package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelToVolume(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{-5, -10},
		{0, -10},
		{25, -2},
		{50, -1},
		{100, 0},
		{150, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, levelToVolume(tt.level), 1e-9, "level %d", tt.level)
	}
}

func TestLevelToVolume_Monotonic(t *testing.T) {
	prev := levelToVolume(0)
	for level := 1; level <= 100; level++ {
		v := levelToVolume(level)
		assert.GreaterOrEqual(t, v, prev, "level %d", level)
		prev = v
	}
}

func TestClampSample(t *testing.T) {
	assert.Equal(t, 0, clampSample(-100, 1000))
	assert.Equal(t, 500, clampSample(500, 1000))
	assert.Equal(t, 1000, clampSample(1500, 1000))
	assert.Equal(t, 0, clampSample(10, 0))
}
