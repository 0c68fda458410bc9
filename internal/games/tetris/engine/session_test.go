package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(Options{Seed: 1})
	s.Events()
	return s
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}

func TestNewSession(t *testing.T) {
	s := NewSession(Options{Seed: 1})

	p := s.Piece()
	assert.Equal(t, SpawnX, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, 0, p.Rotation)
	assert.True(t, p.Kind.Valid())
	assert.True(t, s.Next().Valid())

	_, ok := s.Held()
	assert.False(t, ok)
	assert.True(t, s.CanHold())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, PhaseFalling, s.Phase())
	assert.Equal(t, []EventType{EventSpawned}, eventTypes(s.Events()))
	assert.Empty(t, s.Events(), "events are drained")
}

func TestTimingDefaults(t *testing.T) {
	s := NewSession(Options{Timing: Timing{DAS: 120 * time.Millisecond}})

	assert.Equal(t, 120*time.Millisecond, s.timing.DAS)
	assert.Equal(t, DefaultARR, s.timing.ARR)
	assert.Equal(t, SoftDropInterval, s.timing.SoftDrop)
	assert.Equal(t, DefaultFlash, s.timing.Flash)
}

func TestHoldSequence(t *testing.T) {
	s := newTestSession(t)
	first := s.Piece().Kind
	next := s.Next()

	require.True(t, s.Hold())
	held, ok := s.Held()
	require.True(t, ok)
	assert.Equal(t, first, held)
	assert.Equal(t, SpawnPiece(next), s.Piece())
	assert.False(t, s.CanHold())

	assert.False(t, s.Hold(), "second hold before a lock is ignored")
	assert.Equal(t, []EventType{EventSpawned, EventHeld}, eventTypes(s.Events()))

	s.HardDrop()
	assert.True(t, s.CanHold())

	second := s.Piece().Kind
	s.RotateCW()
	require.True(t, s.Hold())
	assert.Equal(t, SpawnPiece(first), s.Piece(), "swapped piece restarts at spawn")
	held, _ = s.Held()
	assert.Equal(t, second, held)
}

func TestLockClearsSingleRow(t *testing.T) {
	s := newTestSession(t)
	fillRow(s.board, 19, KindT, 3, 4, 5, 6)
	s.piece = Piece{Kind: KindI, X: 3, Y: 17}

	s.Lock()

	assert.Equal(t, 1, s.Lines())
	assert.Equal(t, 100, s.Score())
	assert.Equal(t, 0, s.board.FilledCount())
	assert.True(t, s.FlashActive())
	assert.Equal(t, PhaseLineClear, s.Phase())

	events := s.Events()
	assert.Equal(t, []EventType{EventLocked, EventLinesCleared, EventSpawned}, eventTypes(events))
	assert.Equal(t, 1, events[1].Rows)
	assert.Equal(t, 100, events[1].Points)

	s.Advance(DefaultFlash)
	assert.False(t, s.FlashActive())
	assert.Equal(t, PhaseFalling, s.Phase())
}

func TestLockClearsFourRows(t *testing.T) {
	s := newTestSession(t)
	for y := 16; y < Height; y++ {
		fillRow(s.board, y, KindS, 0)
	}
	s.piece = Piece{Kind: KindI, X: -2, Y: 16, Rotation: 1}

	s.Lock()

	assert.Equal(t, 4, s.Lines())
	assert.Equal(t, 800, s.Score())
	assert.Equal(t, 0, s.board.FilledCount())
}

func TestScoreUsesLevelBeforeClear(t *testing.T) {
	tests := []struct {
		name       string
		linesSoFar int
		wantPoints int
	}{
		{"level one", 0, 100},
		{"crossing into level two", 4, 100},
		{"already level two", 5, 200},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t)
			s.lines = tc.linesSoFar
			fillRow(s.board, 19, KindT, 3, 4, 5, 6)
			s.piece = Piece{Kind: KindI, X: 3, Y: 17}

			s.Lock()

			assert.Equal(t, tc.wantPoints, s.Score())
			assert.Equal(t, tc.linesSoFar+1, s.Lines())
		})
	}
}

func TestLockAboveFieldEndsGame(t *testing.T) {
	s := newTestSession(t)
	s.piece = Piece{Kind: KindI, X: 3, Y: -2, Rotation: 1}

	s.Lock()

	assert.True(t, s.GameOver())
	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, KindI, s.board.At(5, 0))
	assert.Equal(t, KindI, s.board.At(5, 1))
	assert.Equal(t, 2, s.board.FilledCount())
	assert.Equal(t, []EventType{EventLocked, EventGameOver}, eventTypes(s.Events()))
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	s := newTestSession(t)
	// Every kind's first frame touches rows 1..2 of columns 3..6.
	for y := 1; y <= 2; y++ {
		for x := 2; x <= 7; x++ {
			s.board.Set(x, y, KindZ)
		}
	}
	s.piece = Piece{Kind: KindO, X: 0, Y: 10}

	s.Lock()

	assert.True(t, s.GameOver())
	assert.Equal(t, []EventType{EventLocked, EventSpawned, EventGameOver}, eventTypes(s.Events()))
}

func TestGameOverFreezesSession(t *testing.T) {
	s := newTestSession(t)
	s.piece = Piece{Kind: KindI, X: 3, Y: -2, Rotation: 1}
	s.Lock()
	before := s.Snapshot()

	s.PressLeft()
	s.RotateCW()
	s.HardDrop()
	s.TogglePause()
	assert.False(t, s.Hold())
	s.Advance(time.Second)

	after := s.Snapshot()
	assert.Equal(t, before.Piece, after.Piece)
	assert.Equal(t, before.Board, after.Board)
	assert.False(t, after.Paused)
}

func TestGravity(t *testing.T) {
	s := newTestSession(t)

	s.Advance(249 * ms)
	assert.Equal(t, 0, s.Piece().Y)

	s.Advance(1 * ms)
	assert.Equal(t, 1, s.Piece().Y)

	s.Advance(249 * ms)
	assert.Equal(t, 1, s.Piece().Y, "accumulator resets after a step")

	s.SetSoftDrop(true)
	assert.Equal(t, SoftDropInterval, s.FallInterval())
	s.Advance(50 * ms)
	assert.Equal(t, 2, s.Piece().Y)

	s.SetSoftDrop(false)
	assert.Equal(t, GravityInterval(1), s.FallInterval())
}

func TestGravityLocksResting(t *testing.T) {
	s := newTestSession(t)
	s.piece = Piece{Kind: KindI, X: 3, Y: 17}

	s.Advance(BaseGravity)

	assert.Equal(t, 4, s.board.FilledCount())
	assert.Equal(t, 0, s.Piece().Y)
	assert.Equal(t, []EventType{EventLocked, EventSpawned}, eventTypes(s.Events()))
}

func TestHardDrop(t *testing.T) {
	s := newTestSession(t)
	s.piece = SpawnPiece(KindI)
	s.Advance(200 * ms)

	s.HardDrop()

	for x := 3; x <= 6; x++ {
		assert.Equal(t, KindI, s.board.At(x, 19))
	}
	assert.Equal(t, time.Duration(0), s.fall)
	assert.Equal(t, 0, s.Piece().Y)
}

func TestPause(t *testing.T) {
	s := newTestSession(t)
	start := s.Piece()

	s.TogglePause()
	assert.Equal(t, PhasePaused, s.Phase())

	s.PressLeft()
	s.HardDrop()
	assert.False(t, s.RotateCW())
	s.Advance(time.Second)
	assert.Equal(t, start, s.Piece())
	assert.Equal(t, 0, s.board.FilledCount())

	s.TogglePause()
	assert.Equal(t, PhaseFalling, s.Phase())
	s.Advance(BaseGravity)
	assert.Equal(t, 1, s.Piece().Y)
}

func TestHorizontalAutoShift(t *testing.T) {
	s := newTestSession(t)
	s.piece = SpawnPiece(KindT) // columns X+1..X+3

	s.PressRight()
	assert.Equal(t, 4, s.Piece().X)

	for range 23 {
		s.Advance(10 * ms)
	}
	assert.Equal(t, 5, s.Piece().X)

	s.Advance(10 * ms)
	assert.Equal(t, 6, s.Piece().X)

	s.Advance(40 * ms)
	assert.Equal(t, 6, s.Piece().X, "wall stops the repeat")

	s.ReleaseRight()
	assert.Equal(t, ShiftIdle, s.Snapshot().Shift)
}

func TestGhostOfRestingPiece(t *testing.T) {
	s := newTestSession(t)
	s.piece = Piece{Kind: KindI, X: 3, Y: 17}

	snap := s.Snapshot()
	assert.Equal(t, 17, snap.GhostRow)
	assert.Equal(t, snap.PieceCells, snap.GhostCells)
}

func TestSnapshotPieceColor(t *testing.T) {
	s := newTestSession(t)
	s.piece = SpawnPiece(KindZ)

	snap := s.Snapshot()
	assert.Equal(t, KindZ.Color(), snap.Color)
	assert.Equal(t, RGB{150, 0, 255}, snap.Color)
}

func TestSessionDeterminism(t *testing.T) {
	play := func() Snapshot {
		s := NewSession(Options{Seed: 42})
		for i := range 400 {
			switch i % 7 {
			case 0:
				s.PressLeft()
			case 2:
				s.ReleaseLeft()
				s.RotateCW()
			case 4:
				s.PressRight()
			case 5:
				s.Hold()
			case 6:
				s.ReleaseRight()
				if i%21 == 6 {
					s.HardDrop()
				}
			}
			s.Advance(16 * ms)
		}
		return s.Snapshot()
	}

	assert.Equal(t, play(), play())
}

func TestPhaseNames(t *testing.T) {
	assert.Equal(t, "falling", PhaseFalling.String())
	assert.Equal(t, "line_clear", PhaseLineClear.String())
	assert.Equal(t, "paused", PhasePaused.String())
	assert.Equal(t, "game_over", PhaseGameOver.String())
	assert.Equal(t, "lines_cleared", EventLinesCleared.String())
}
