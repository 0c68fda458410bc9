package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ms = time.Millisecond

// mover records moves and can be told to reject them.
type mover struct {
	moves  []int
	reject bool
}

func (m *mover) move(dx int) bool {
	if m.reject {
		return false
	}
	m.moves = append(m.moves, dx)
	return true
}

func TestAutoShiftPressMovesOnce(t *testing.T) {
	a := NewAutoShift(DefaultDAS, DefaultARR)
	m := &mover{}

	a.Press(1, 0, m.move)

	assert.Equal(t, []int{1}, m.moves)
	assert.Equal(t, ShiftPressed, a.State())
	assert.Equal(t, 1, a.Direction())
}

func TestAutoShiftRepeat(t *testing.T) {
	a := NewAutoShift(DefaultDAS, DefaultARR)
	m := &mover{}
	a.Press(-1, 0, m.move)

	a.Update(199*ms, m.move)
	assert.Len(t, m.moves, 1, "no repeat before the delay")
	assert.Equal(t, ShiftPressed, a.State())

	a.Update(200*ms, m.move)
	assert.Len(t, m.moves, 2)
	assert.Equal(t, ShiftRepeating, a.State())

	a.Update(220*ms, m.move)
	assert.Len(t, m.moves, 2, "no repeat before the interval")

	a.Update(240*ms, m.move)
	assert.Equal(t, []int{-1, -1, -1}, m.moves)
}

func TestAutoShiftRepeatedPressKeepsTimers(t *testing.T) {
	a := NewAutoShift(DefaultDAS, DefaultARR)
	m := &mover{}

	a.Press(1, 0, m.move)
	a.Press(1, 100*ms, m.move)
	require.Len(t, m.moves, 2)

	a.Update(200*ms, m.move)
	assert.Len(t, m.moves, 3, "delay counts from the first press")
}

func TestAutoShiftOppositePressTakesOver(t *testing.T) {
	a := NewAutoShift(DefaultDAS, DefaultARR)
	m := &mover{}

	a.Press(-1, 0, m.move)
	a.Press(1, 150*ms, m.move)
	assert.Equal(t, []int{-1, 1}, m.moves)

	a.Update(200*ms, m.move)
	assert.Len(t, m.moves, 2)

	a.Update(350*ms, m.move)
	assert.Equal(t, []int{-1, 1, 1}, m.moves)
}

func TestAutoShiftRelease(t *testing.T) {
	a := NewAutoShift(DefaultDAS, DefaultARR)
	m := &mover{}
	a.Press(1, 0, m.move)

	a.Release(-1)
	assert.Equal(t, 1, a.Direction(), "releasing the other direction is ignored")

	a.Release(1)
	assert.Equal(t, ShiftIdle, a.State())

	a.Update(time.Second, m.move)
	assert.Len(t, m.moves, 1)
}

func TestAutoShiftFailedMoveKeepsClock(t *testing.T) {
	a := NewAutoShift(DefaultDAS, DefaultARR)
	m := &mover{}
	a.Press(1, 0, m.move)

	m.reject = true
	a.Update(200*ms, m.move)
	m.reject = false

	a.Update(210*ms, m.move)
	assert.Len(t, m.moves, 2, "a rejected repeat must not restart the interval")
}

func TestAutoShiftRebase(t *testing.T) {
	a := NewAutoShift(DefaultDAS, DefaultARR)
	m := &mover{}
	a.Press(1, 0, m.move)

	a.Rebase(300 * ms)
	a.Update(320*ms, m.move)
	assert.Len(t, m.moves, 1)

	a.Update(340*ms, m.move)
	assert.Len(t, m.moves, 2)
}

func TestAutoShiftDefaults(t *testing.T) {
	a := NewAutoShift(0, -1)
	assert.Equal(t, DefaultDAS, a.das)
	assert.Equal(t, DefaultARR, a.arr)
}
