package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const ms = time.Millisecond

func TestHoldTrackerRepeatIsNotFresh(t *testing.T) {
	h := NewHoldTracker(150 * ms)
	t0 := time.Unix(0, 0)

	fresh, released := h.Press(core.ActionMoveLeft, t0)
	assert.True(t, fresh)
	assert.Empty(t, released)

	// Terminal auto-repeat arrives well within the timeout
	fresh, _ = h.Press(core.ActionMoveLeft, t0.Add(30*ms))
	assert.False(t, fresh)
	fresh, _ = h.Press(core.ActionMoveLeft, t0.Add(60*ms))
	assert.False(t, fresh)
	assert.True(t, h.Held(core.ActionMoveLeft))
}

func TestHoldTrackerStaleHoldIsFresh(t *testing.T) {
	h := NewHoldTracker(150 * ms)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionSoftDrop, t0)
	fresh, _ := h.Press(core.ActionSoftDrop, t0.Add(151*ms))
	assert.True(t, fresh)
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := NewHoldTracker(150 * ms)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionMoveLeft, t0)
	fresh, released := h.Press(core.ActionMoveRight, t0.Add(10*ms))

	assert.True(t, fresh)
	assert.Equal(t, []core.Action{core.ActionMoveLeft}, released)
	assert.False(t, h.Held(core.ActionMoveLeft))
	assert.True(t, h.Held(core.ActionMoveRight))

	// Soft drop has no opposite
	_, released = h.Press(core.ActionSoftDrop, t0.Add(20*ms))
	assert.Empty(t, released)
	assert.True(t, h.Held(core.ActionMoveRight))
}

func TestHoldTrackerNonHoldableAlwaysFresh(t *testing.T) {
	h := NewHoldTracker(150 * ms)
	t0 := time.Unix(0, 0)

	for i := range 3 {
		fresh, released := h.Press(core.ActionRotateCW, t0.Add(time.Duration(i)*ms))
		assert.True(t, fresh)
		assert.Empty(t, released)
	}
	assert.False(t, h.Held(core.ActionRotateCW))
}

func TestHoldTrackerExpire(t *testing.T) {
	h := NewHoldTracker(150 * ms)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionSoftDrop, t0)
	h.Press(core.ActionMoveRight, t0.Add(100*ms))

	assert.Empty(t, h.Expire(t0.Add(150*ms)), "exactly at the timeout is still held")
	assert.Equal(t, []core.Action{core.ActionSoftDrop}, h.Expire(t0.Add(151*ms)))
	assert.Equal(t, []core.Action{core.ActionMoveRight}, h.Expire(t0.Add(251*ms)))
	assert.Empty(t, h.Expire(t0.Add(time.Second)))
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := NewHoldTracker(0)
	assert.Equal(t, DefaultReleaseTimeout, h.timeout)

	t0 := time.Unix(0, 0)
	h.Press(core.ActionSoftDrop, t0)
	h.Press(core.ActionMoveLeft, t0)

	assert.Equal(t, []core.Action{core.ActionMoveLeft, core.ActionSoftDrop}, h.ReleaseAll())
	assert.False(t, h.Held(core.ActionMoveLeft))
	assert.Empty(t, h.ReleaseAll())
}
