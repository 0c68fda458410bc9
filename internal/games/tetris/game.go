// Package tetris adapts the falling-block engine to the registry.Game
// interface: it maps platform actions to session calls, advances the engine
// by one fixed tick per Step and draws the session into a core.Screen.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "tetris"

// Game runs one engine session at a time and replaces it on restart.
type Game struct {
	cfg     config.TetrisConfig
	timing  engine.Timing
	seeds   *rand.Rand // Seeds successive sessions deterministically
	session *engine.Session
	dt      time.Duration
	seed    int64 // Seed of the current session

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset loads the configuration and starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadTetris(cfg.ConfigPath)
	if err != nil {
		loaded = config.DefaultTetrisConfig()
	}
	g.Configure(loaded)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dt = time.Second / time.Duration(tickRate)
	g.seeds = rand.New(rand.NewSource(cfg.Seed))

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	g.newSession()
}

// Configure replaces the timings used by sessions started from now on.
func (g *Game) Configure(cfg config.TetrisConfig) {
	g.cfg = cfg
	g.timing = engine.Timing{
		DAS:      cfg.Timing.DAS(),
		ARR:      cfg.Timing.ARR(),
		SoftDrop: cfg.Timing.SoftDrop(),
		Flash:    cfg.Timing.Flash(),
	}
}

// Config returns the configuration in effect.
func (g *Game) Config() config.TetrisConfig { return g.cfg }

// Resize updates the screen dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) newSession() {
	g.seed = g.seeds.Int63()
	g.session = engine.NewSession(engine.Options{Seed: g.seed, Timing: g.timing})
	g.session.Events()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step applies one frame of input and advances the engine by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) || (g.session.GameOver() && restartPressed(in)) {
		g.newSession()
		return core.StepResult{State: g.State(), Restarted: true}
	}

	s := g.session
	if in.Has(core.ActionPause) {
		s.TogglePause()
	}

	if in.WasReleased(core.ActionMoveLeft) {
		s.ReleaseLeft()
	}
	if in.WasReleased(core.ActionMoveRight) {
		s.ReleaseRight()
	}
	if in.WasReleased(core.ActionSoftDrop) {
		s.SetSoftDrop(false)
	}

	if in.Has(core.ActionMoveLeft) {
		s.PressLeft()
	}
	if in.Has(core.ActionMoveRight) {
		s.PressRight()
	}
	if in.Has(core.ActionRotateCW) {
		s.RotateCW()
	}
	if in.Has(core.ActionSoftDrop) {
		s.SetSoftDrop(true)
	}
	if in.Has(core.ActionHardDrop) {
		s.HardDrop()
	}
	if in.Has(core.ActionHold) {
		s.Hold()
	}

	s.Advance(g.dt)

	result := core.StepResult{}
	for _, e := range s.Events() {
		switch e.Type {
		case engine.EventLocked:
			result.Locked++
		case engine.EventLinesCleared:
			result.LinesCleared += e.Rows
		}
	}
	result.State = g.State()
	return result
}

// restartPressed reports whether a finished game should restart: any key
// except the ones that leave the game.
func restartPressed(in core.InputFrame) bool {
	for a, pressed := range in.Actions {
		if pressed && a != core.ActionQuit && a != core.ActionBack && a != core.ActionNone {
			return true
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	return core.GameState{
		Score:    s.Score(),
		Lines:    s.Lines(),
		Level:    s.Level(),
		GameOver: s.GameOver(),
		Paused:   s.Paused(),
	}
}

// Snapshot returns the engine view of the current session.
func (g *Game) Snapshot() engine.Snapshot {
	return g.session.Snapshot()
}

// Seed returns the seed of the current session.
func (g *Game) Seed() int64 { return g.seed }
