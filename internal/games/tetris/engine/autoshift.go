package engine

import "time"

// Default auto-shift timings.
const (
	DefaultDAS = 200 * time.Millisecond
	DefaultARR = 40 * time.Millisecond
)

// ShiftState is the state of the auto-shift controller.
type ShiftState int

const (
	ShiftIdle ShiftState = iota
	ShiftPressed
	ShiftRepeating
)

// String returns the state name.
func (s ShiftState) String() string {
	switch s {
	case ShiftIdle:
		return "idle"
	case ShiftPressed:
		return "pressed"
	case ShiftRepeating:
		return "repeating"
	default:
		return "unknown"
	}
}

// MoveFunc attempts one horizontal move by dx and reports whether it happened.
type MoveFunc func(dx int) bool

// AutoShift turns a held horizontal direction into repeated moves: one move
// on press, then after the delay (DAS) one move every repeat interval (ARR).
// Only one direction is tracked; pressing the other one takes over.
// It holds no board state and moves pieces only through the MoveFunc.
type AutoShift struct {
	das, arr time.Duration

	dir       int // -1, +1, or 0 when idle
	pressedAt time.Duration
	lastShift time.Duration
	repeating bool
}

// NewAutoShift creates an idle controller. Non-positive timings fall back
// to DefaultDAS and DefaultARR.
func NewAutoShift(das, arr time.Duration) *AutoShift {
	if das <= 0 {
		das = DefaultDAS
	}
	if arr <= 0 {
		arr = DefaultARR
	}
	return &AutoShift{das: das, arr: arr}
}

// Press handles a key-down for dir (-1 or +1) at time now. It always performs
// one immediate move. Timers restart only when dir differs from the tracked
// direction, so key-down repeats of a held key do not reset the delay.
func (a *AutoShift) Press(dir int, now time.Duration, move MoveFunc) {
	dir = sign(dir)
	if dir == 0 {
		return
	}
	move(dir)
	if a.dir != dir {
		a.dir = dir
		a.pressedAt = now
		a.lastShift = now
		a.repeating = false
	}
}

// Release handles a key-up for dir. Releasing a direction that is not the
// tracked one is ignored.
func (a *AutoShift) Release(dir int) {
	if sign(dir) == a.dir {
		a.reset()
	}
}

// Update performs at most one repeat move once the delay has elapsed since
// the press and the repeat interval has elapsed since the last repeat.
// The repeat clock only advances when the move succeeds.
func (a *AutoShift) Update(now time.Duration, move MoveFunc) {
	if a.dir == 0 {
		return
	}
	if now-a.pressedAt < a.das {
		return
	}
	a.repeating = true
	if now-a.lastShift >= a.arr && move(a.dir) {
		a.lastShift = now
	}
}

// Rebase restamps the repeat clock, as done when the game is paused or
// resumed.
func (a *AutoShift) Rebase(now time.Duration) {
	a.lastShift = now
}

// Direction returns the tracked direction, or 0 when idle.
func (a *AutoShift) Direction() int {
	return a.dir
}

// State reports the controller state.
func (a *AutoShift) State() ShiftState {
	switch {
	case a.dir == 0:
		return ShiftIdle
	case a.repeating:
		return ShiftRepeating
	default:
		return ShiftPressed
	}
}

func (a *AutoShift) reset() {
	a.dir = 0
	a.pressedAt = 0
	a.lastShift = 0
	a.repeating = false
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
