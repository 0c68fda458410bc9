package engine

import "time"

// Snapshot is a read-only view of a session for renderers, logging and
// determinism tests.
type Snapshot struct {
	Board [Height][Width]Kind

	Piece      Piece
	PieceCells []Point
	Color      RGB // Colour of the current piece
	GhostRow   int
	GhostCells []Point

	Held    Kind // KindNone when empty
	CanHold bool
	Next    Kind

	Score   int
	Lines   int
	Level   int
	Gravity time.Duration

	GameOver bool
	Paused   bool
	Flash    bool
	Phase    Phase
	Shift    ShiftState
	Clock    time.Duration
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	ghost := s.piece
	ghost.Y = GhostRow(s.board, s.piece)

	return Snapshot{
		Board:      s.board.Rows(),
		Piece:      s.piece,
		PieceCells: s.piece.Cells(),
		Color:      s.piece.Kind.Color(),
		GhostRow:   ghost.Y,
		GhostCells: ghost.Cells(),
		Held:       s.held,
		CanHold:    s.canHold,
		Next:       s.next,
		Score:      s.score,
		Lines:      s.lines,
		Level:      s.Level(),
		Gravity:    GravityInterval(s.Level()),
		GameOver:   s.gameOver,
		Paused:     s.paused,
		Flash:      s.FlashActive(),
		Phase:      s.Phase(),
		Shift:      s.shift.State(),
		Clock:      s.clock,
	}
}
