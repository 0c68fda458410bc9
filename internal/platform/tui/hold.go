package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// DefaultReleaseTimeout is used when no release timeout is configured.
const DefaultReleaseTimeout = 150 * time.Millisecond

// HoldTracker infers key releases for holdable actions. Terminals report
// key presses and auto-repeats but no key-ups, so a held action counts as
// released once no event for it arrived within the timeout.
//
// The timeout must stay below the auto-shift delay, otherwise a single tap
// would be held long enough to start repeating.
type HoldTracker struct {
	timeout time.Duration
	seen    map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. Non-positive timeouts use DefaultReleaseTimeout.
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	if timeout <= 0 {
		timeout = DefaultReleaseTimeout
	}
	return &HoldTracker{
		timeout: timeout,
		seen:    make(map[core.Action]time.Time),
	}
}

// opposite returns the action that a press of a releases.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionMoveLeft:
		return core.ActionMoveRight
	case core.ActionMoveRight:
		return core.ActionMoveLeft
	default:
		return core.ActionNone
	}
}

// Press records a key event for a. It reports whether the event is a new
// press rather than an auto-repeat of a held key, and which held actions it
// releases. Non-holdable actions are always new presses.
func (h *HoldTracker) Press(a core.Action, now time.Time) (fresh bool, released []core.Action) {
	if !a.Holdable() {
		return true, nil
	}

	if o := opposite(a); o != core.ActionNone {
		if _, ok := h.seen[o]; ok {
			delete(h.seen, o)
			released = append(released, o)
		}
	}

	last, held := h.seen[a]
	h.seen[a] = now
	fresh = !held || now.Sub(last) > h.timeout
	return fresh, released
}

// Expire releases every held action without an event within the timeout.
// Released actions are returned in action order.
func (h *HoldTracker) Expire(now time.Time) []core.Action {
	var released []core.Action
	for a, last := range h.seen {
		if now.Sub(last) > h.timeout {
			delete(h.seen, a)
			released = append(released, a)
		}
	}
	slices.Sort(released)
	return released
}

// Held reports whether a is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.seen[a]
	return ok
}

// ReleaseAll releases every held action, in action order.
func (h *HoldTracker) ReleaseAll() []core.Action {
	released := make([]core.Action, 0, len(h.seen))
	for a := range h.seen {
		released = append(released, a)
	}
	clear(h.seen)
	slices.Sort(released)
	return released
}
