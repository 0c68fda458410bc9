package engine

import (
	"math/rand"
	"time"
)

// DefaultFlash is how long the line-clear flash stays active.
const DefaultFlash = 100 * time.Millisecond

// Timing holds the tunable time constants of a session.
type Timing struct {
	DAS      time.Duration // Delay before a held direction repeats
	ARR      time.Duration // Interval between repeated moves
	SoftDrop time.Duration // Gravity interval while soft drop is held
	Flash    time.Duration // Line-clear flash duration
}

// DefaultTiming returns the standard timings.
func DefaultTiming() Timing {
	return Timing{
		DAS:      DefaultDAS,
		ARR:      DefaultARR,
		SoftDrop: SoftDropInterval,
		Flash:    DefaultFlash,
	}
}

// withDefaults replaces non-positive fields with the standard values.
func (t Timing) withDefaults() Timing {
	def := DefaultTiming()
	if t.DAS <= 0 {
		t.DAS = def.DAS
	}
	if t.ARR <= 0 {
		t.ARR = def.ARR
	}
	if t.SoftDrop <= 0 {
		t.SoftDrop = def.SoftDrop
	}
	if t.Flash <= 0 {
		t.Flash = def.Flash
	}
	return t
}

// Options configures a new Session.
type Options struct {
	Seed   int64
	Timing Timing
}

// Phase is the session-level state.
type Phase int

const (
	PhaseFalling Phase = iota
	PhaseLineClear
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseLineClear:
		return "line_clear"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EventType classifies an Event.
type EventType int

const (
	EventSpawned EventType = iota
	EventLocked
	EventLinesCleared
	EventHeld
	EventGameOver
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventSpawned:
		return "spawned"
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventHeld:
		return "held"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event records a state transition that happened inside one call.
type Event struct {
	Type   EventType
	Kind   Kind // Piece involved
	Rows   int  // Rows removed (EventLinesCleared)
	Points int  // Points awarded (EventLinesCleared)
}

// Session is one game from start to game over. Restarting means building a
// new Session; nothing resets in place.
type Session struct {
	timing Timing
	rng    *rand.Rand
	board  *Board
	shift  *AutoShift

	piece   Piece
	next    Kind
	held    Kind // KindNone when the slot is empty
	canHold bool

	score    int
	lines    int
	gameOver bool
	paused   bool

	clock    time.Duration // Engine time since the session started
	fall     time.Duration // Time accumulated toward the next gravity step
	softDrop bool
	flashAt  time.Duration
	flashing bool

	events []Event
}

// NewSession starts a game: it draws the next kind, spawns the first piece
// from it and draws another next kind.
func NewSession(opts Options) *Session {
	t := opts.Timing.withDefaults()
	s := &Session{
		timing:  t,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		board:   NewBoard(),
		shift:   NewAutoShift(t.DAS, t.ARR),
		canHold: true,
	}
	s.next = s.draw()
	s.spawnFromNext()
	return s
}

func (s *Session) draw() Kind {
	kinds := Kinds()
	return kinds[s.rng.Intn(len(kinds))]
}

// spawnFromNext makes the next kind the current piece and draws a new next kind.
func (s *Session) spawnFromNext() {
	k := s.next
	s.next = s.draw()
	s.piece = SpawnPiece(k)
	s.emit(Event{Type: EventSpawned, Kind: k})
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) endGame() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.emit(Event{Type: EventGameOver, Kind: s.piece.Kind})
}

// active reports whether the session accepts moves and advances gravity.
func (s *Session) active() bool {
	return !s.gameOver && !s.paused
}

// shiftPiece is the MoveFunc handed to the auto-shift controller.
func (s *Session) shiftPiece(dx int) bool {
	if !s.active() {
		return false
	}
	return TryMove(s.board, &s.piece, dx, 0, 0)
}

// TryMove moves the current piece when the session is active and the move fits.
func (s *Session) TryMove(dx, dy, drot int) bool {
	if !s.active() {
		return false
	}
	return TryMove(s.board, &s.piece, dx, dy, drot)
}

// PressLeft handles a MoveLeft key-down.
func (s *Session) PressLeft() {
	if s.active() {
		s.shift.Press(-1, s.clock, s.shiftPiece)
	}
}

// PressRight handles a MoveRight key-down.
func (s *Session) PressRight() {
	if s.active() {
		s.shift.Press(1, s.clock, s.shiftPiece)
	}
}

// ReleaseLeft handles a MoveLeft key-up.
func (s *Session) ReleaseLeft() {
	s.shift.Release(-1)
}

// ReleaseRight handles a MoveRight key-up.
func (s *Session) ReleaseRight() {
	s.shift.Release(1)
}

// RotateCW rotates the current piece clockwise, with wall kicks.
func (s *Session) RotateCW() bool {
	if !s.active() {
		return false
	}
	return RotateCW(s.board, &s.piece)
}

// SetSoftDrop records whether the soft-drop key is held.
func (s *Session) SetSoftDrop(held bool) {
	s.softDrop = held
}

// HardDrop drops the current piece to its resting row and locks it.
func (s *Session) HardDrop() {
	if !s.active() {
		return
	}
	s.piece.Y = GhostRow(s.board, s.piece)
	s.Lock()
	s.fall = 0
}

// Hold swaps the current piece with the hold slot. It does nothing once a
// hold was used for the current piece, until the next lock.
func (s *Session) Hold() bool {
	if !s.active() || !s.canHold {
		return false
	}
	current := s.piece.Kind
	if s.held == KindNone {
		s.held = current
		s.spawnFromNext()
	} else {
		s.piece = SpawnPiece(s.held)
		s.held = current
	}
	s.canHold = false
	s.emit(Event{Type: EventHeld, Kind: current})
	return true
}

// TogglePause pauses or resumes the session. Ignored after game over.
func (s *Session) TogglePause() {
	if s.gameOver {
		return
	}
	s.paused = !s.paused
	s.shift.Rebase(s.clock)
}

// Lock writes the current piece into the board. A block above the field ends
// the game. Otherwise rows are cleared, score and lines are updated and the
// next piece spawns; the game ends if it does not fit.
func (s *Session) Lock() {
	k := s.piece.Kind
	above := false
	for _, c := range s.piece.Cells() {
		if c.Y < 0 {
			above = true
			continue
		}
		s.board.Set(c.X, c.Y, k)
	}
	s.emit(Event{Type: EventLocked, Kind: k})
	if above {
		s.endGame()
		return
	}

	s.canHold = true

	rows := s.board.ClearFullRows()
	level := Level(s.lines)
	points := LineScore(rows, level)
	s.lines += rows
	s.score += points
	if rows > 0 {
		s.flashAt = s.clock
		s.flashing = true
		s.emit(Event{Type: EventLinesCleared, Kind: k, Rows: rows, Points: points})
	}

	s.spawnFromNext()
	if !Fits(s.board, s.piece, 0, 0, 0) {
		s.endGame()
	}
}

// gravityStep moves the piece down one row, or locks it when it cannot move.
func (s *Session) gravityStep() {
	if !TryMove(s.board, &s.piece, 0, 1, 0) {
		s.Lock()
	}
}

// Advance moves the engine clock forward by dt, then runs auto-shift repeats
// and gravity unless the session is paused or over.
func (s *Session) Advance(dt time.Duration) {
	s.clock += dt
	if s.flashing && s.clock-s.flashAt >= s.timing.Flash {
		s.flashing = false
	}
	if !s.active() {
		return
	}

	s.shift.Update(s.clock, s.shiftPiece)

	s.fall += dt
	if s.fall >= s.FallInterval() {
		s.gravityStep()
		s.fall = 0
	}
}

// FallInterval returns the active gravity interval: the soft-drop interval
// while soft drop is held, otherwise the level's interval.
func (s *Session) FallInterval() time.Duration {
	if s.softDrop {
		return s.timing.SoftDrop
	}
	return GravityInterval(s.Level())
}

// Events returns the events recorded since the last call and clears them.
func (s *Session) Events() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// Phase returns the session-level state.
func (s *Session) Phase() Phase {
	switch {
	case s.gameOver:
		return PhaseGameOver
	case s.paused:
		return PhasePaused
	case s.FlashActive():
		return PhaseLineClear
	default:
		return PhaseFalling
	}
}

// FlashActive reports whether the line-clear flash is showing.
func (s *Session) FlashActive() bool {
	return s.flashing && s.clock-s.flashAt < s.timing.Flash
}

// Piece returns a copy of the current piece.
func (s *Session) Piece() Piece { return s.piece }

// Next returns the kind that spawns after the current piece.
func (s *Session) Next() Kind { return s.next }

// Held returns the held kind and whether the slot is filled.
func (s *Session) Held() (Kind, bool) { return s.held, s.held != KindNone }

// CanHold reports whether Hold is allowed for the current piece.
func (s *Session) CanHold() bool { return s.canHold }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lines returns the total number of cleared rows.
func (s *Session) Lines() int { return s.lines }

// Level returns the level for the lines cleared so far.
func (s *Session) Level() int { return Level(s.lines) }

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Clock returns the engine time since the session started.
func (s *Session) Clock() time.Duration { return s.clock }

// GhostRow returns the row the current piece would land on.
func (s *Session) GhostRow() int { return GhostRow(s.board, s.piece) }
