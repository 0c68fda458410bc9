package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		lines, want int
	}{
		{0, 1},
		{4, 1},
		{5, 2},
		{14, 2},
		{15, 3},
		{25, 4},
		{100, 11},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Level(tc.lines), "Level(%d)", tc.lines)
	}
}

func TestGravityInterval(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 250 * time.Millisecond},
		{2, 180 * time.Millisecond},
		{3, 110 * time.Millisecond},
		{4, 50 * time.Millisecond},
		{5, 50 * time.Millisecond},
		{20, 50 * time.Millisecond},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, GravityInterval(tc.level), "level %d", tc.level)
	}
}

func TestLineScore(t *testing.T) {
	assert.Equal(t, 0, LineScore(0, 3))
	assert.Equal(t, 100, LineScore(1, 1))
	assert.Equal(t, 600, LineScore(2, 2))
	assert.Equal(t, 1500, LineScore(3, 3))
	assert.Equal(t, 800, LineScore(4, 1))
	assert.Equal(t, 0, LineScore(5, 1))
	assert.Equal(t, 0, LineScore(-1, 1))
}
