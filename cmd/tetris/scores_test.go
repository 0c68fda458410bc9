package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagRecent, flagClear = false, false
		flagLimit = storage.DefaultLimit
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScoresEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")

	out, err := execute(t, "scores", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No scores recorded yet.")
}

func TestScoresListsRuns(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(db)
	require.NoError(t, err)
	_, err = store.SaveRun(storage.Run{GameID: "tetris", Score: 1200, Lines: 11, Level: 3})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	out, err := execute(t, "scores", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "1200")
	assert.Contains(t, out, "Best: 1200  Runs: 1")
}

func TestScoresDatabaseErrorFails(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	require.NoError(t, os.WriteFile(db, []byte("not a database"), 0o644))

	_, err := execute(t, "scores", "--db", db)
	assert.Error(t, err)
}

func TestScoresUnknownGameFails(t *testing.T) {
	_, err := execute(t, "scores", "pong", "--db", filepath.Join(t.TempDir(), "scores.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown game "pong"`)
}
