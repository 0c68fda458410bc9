package engine

import "time"

const (
	// BaseGravity is the gravity interval at level 1.
	BaseGravity = 250 * time.Millisecond
	// GravityStep is how much faster gravity gets per level.
	GravityStep = 70 * time.Millisecond
	// MinGravity is the fastest gravity interval.
	MinGravity = 50 * time.Millisecond
	// SoftDropInterval replaces the gravity interval while soft drop is held.
	SoftDropInterval = 50 * time.Millisecond
)

// lineScores is the base award for clearing 0..4 rows in one lock.
var lineScores = [...]int{0, 100, 300, 500, 800}

// Level maps cumulative cleared lines to a level: 1 below five lines,
// then one more level every ten lines.
func Level(lines int) int {
	if lines < 5 {
		return 1
	}
	return 2 + (lines-5)/10
}

// GravityInterval returns how long a piece waits between gravity steps at
// the given level.
func GravityInterval(level int) time.Duration {
	return max(MinGravity, BaseGravity-time.Duration(level-1)*GravityStep)
}

// LineScore returns the points for clearing rows at once at level.
// Removals beyond four rows score nothing.
func LineScore(rows, level int) int {
	if rows < 0 || rows >= len(lineScores) {
		return 0
	}
	return lineScores[rows] * level
}
