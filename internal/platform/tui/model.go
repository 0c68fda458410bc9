// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// TickMsg is sent to trigger a game simulation tick. Generation ties the
// tick to the GameModel that scheduled it.
type TickMsg struct {
	Time       time.Time
	Generation int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate, generation int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Generation: generation}
	})
}

// helpLines is the number of rows below the game reserved for key help.
const helpLines = 1

// playHeight returns the rows left to the game on a terminal of height h.
func playHeight(h int) int {
	return max(0, h-helpLines)
}

// RunSaver persists finished runs.
type RunSaver interface {
	SaveRun(r storage.Run) (int64, error)
}

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// seeded is implemented by games that expose the seed of the current run.
type seeded interface {
	Seed() int64
}

// Options configures a GameModel.
type Options struct {
	Logger         *log.Logger
	ReleaseTimeout time.Duration
	// ExitOnBack quits the program on Back instead of only flagging it,
	// for a game started without a menu.
	ExitOnBack bool
	// Generation must differ between games run one after another in the
	// same program, so ticks left over from a previous game are dropped.
	Generation int
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel runs one game: it turns key events into input frames, steps the
// game on every tick and saves each finished run once.
type GameModel struct {
	game   registry.Game
	screen *core.Screen
	saver  RunSaver
	config core.RuntimeConfig
	keys   GameKeyMap
	help   help.Model
	holds  *HoldTracker
	input  core.InputFrame
	state  core.GameState
	logger *log.Logger
	now    func() time.Time

	ticks      int // Active ticks of the current run
	generation int
	exitOnBack bool
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewGameModel creates a model for the given game. saver may be nil.
func NewGameModel(game registry.Game, saver RunSaver, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		saver:      saver,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       h,
		holds:      NewHoldTracker(opts.ReleaseTimeout),
		input:      core.NewInputFrame(),
		logger:     logger.With("game", game.ID()),
		now:        time.Now,
		exitOnBack: opts.ExitOnBack,
		generation: opts.Generation,
	}
}

// gameConfig is the runtime config as the game sees it, without the help rows.
func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playHeight(cfg.ScreenH)
	return cfg
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("run started", "seed", m.seed(), "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate, m.generation)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Generation != m.generation {
			// Scheduled by an earlier game; dropping it ends that tick chain
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey maps a key to an action and records it in the input frame.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	fresh, released := m.holds.Press(action, m.now())
	for _, a := range released {
		m.input.Release(a)
	}
	if fresh {
		m.input.Set(action)
	}
	return m, nil
}

// handleResize keeps the session and only adapts the screen.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, playHeight(msg.Height))
	}
	return m, nil
}

// handleTick infers releases, steps the game and records finished runs.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, a := range m.holds.Expire(now) {
		m.input.Release(a)
	}

	result := m.game.Step(m.input)
	m.input.Clear()
	m.state = result.State

	switch {
	case result.Restarted:
		m.holds.ReleaseAll()
		m.ticks = 0
		m.runSaved = false
		m.logger.Info("run started", "seed", m.seed())
	case !m.state.Paused && !m.state.GameOver:
		m.ticks++
	}

	if result.LinesCleared > 0 {
		m.logger.Debug("lines cleared",
			"rows", result.LinesCleared,
			"score", m.state.Score,
			"lines", m.state.Lines,
			"level", m.state.Level,
		)
	}

	if m.state.GameOver && !m.runSaved {
		m.finishRun()
	}

	return m, tickCmd(m.config.TickRate, m.generation)
}

// finishRun logs and saves the finished run once.
func (m *GameModel) finishRun() {
	m.runSaved = true
	run := storage.Run{
		GameID:   m.game.ID(),
		Score:    m.state.Score,
		Lines:    m.state.Lines,
		Level:    m.state.Level,
		Seed:     m.seed(),
		Duration: m.Played(),
	}
	m.logger.Info("game over",
		"score", run.Score,
		"lines", run.Lines,
		"level", run.Level,
		"played", run.Duration.Round(time.Second),
	)

	if m.saver == nil {
		return
	}
	if _, err := m.saver.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

func (m GameModel) seed() int64 {
	if s, ok := m.game.(seeded); ok {
		return s.Seed()
	}
	return m.config.Seed
}

// Played returns the simulated time of the current run, pauses excluded.
func (m GameModel) Played() time.Duration {
	return time.Duration(m.ticks) * time.Second / time.Duration(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game.
// It reports whether the player left with Back rather than Quit.
func Run(game registry.Game, saver RunSaver, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	opts.ExitOnBack = true
	model := NewGameModel(game, saver, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	return ok && m.BackToMenu(), nil
}
