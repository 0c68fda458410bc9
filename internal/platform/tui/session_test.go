package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// created collects every fakeGame the registry hands out.
var created []*fakeGame

func init() {
	registry.Register("fake", func() registry.Game {
		g := &fakeGame{}
		created = append(created, g)
		return g
	})
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func TestSessionModelStartsGameFromMenu(t *testing.T) {
	created = nil
	m := NewSessionModel(nil, core.DefaultConfig(), Options{})

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.screen)
	require.Len(t, created, 1)
	assert.NotNil(t, cmd, "starting a game schedules its first tick")
	assert.Equal(t, 1, created[0].resets)
}

func TestSessionModelIgnoresTicksFromAbandonedGame(t *testing.T) {
	created = nil
	m := NewSessionModel(nil, core.DefaultConfig(), Options{})

	// First game, then back to the menu with its tick still in flight
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	require.Equal(t, screenMenu, m.screen)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.screen)
	require.Len(t, created, 2)
	second := created[1]

	now := time.Now()
	m, cmd := sessionUpdate(t, m, TickMsg{Time: now, Generation: 1})
	assert.Nil(t, cmd, "the old chain ends here")
	assert.Empty(t, second.frames)

	// Only the current chain steps the game, once per tick
	m, cmd = sessionUpdate(t, m, TickMsg{Time: now, Generation: 2})
	assert.NotNil(t, cmd)
	assert.Len(t, second.frames, 1)
	assert.Empty(t, created[0].frames)
}
