package application

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readme-games/omok-engine/internal/apperror"
	"github.com/readme-games/omok-engine/internal/config"
	"github.com/readme-games/omok-engine/internal/entity"
	"github.com/readme-games/omok-engine/internal/repository"
)

const readmeFixture = `# Omok

### Current Game State

old board

### 📋 How to Play

Open an issue.
`

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()

	readmePath := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readmePath, []byte(readmeFixture), 0o644))

	return &config.Config{
		LogLevel: "info",
		Storage: config.Storage{
			Backend:    config.BackendFile,
			StateFile:  filepath.Join(dir, "game_state.json"),
			SQLitePath: filepath.Join(dir, "history.db"),
		},
		Render: config.Render{
			ReadmePath: readmePath,
			SVGPath:    filepath.Join(dir, "board.svg"),
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadState(t *testing.T, conf *config.Config) *entity.Game {
	t.Helper()

	game, err := repository.NewFileGameRepository(conf.Storage.StateFile).Load(context.Background())
	require.NoError(t, err)

	return game
}

func TestRunApp_Move(t *testing.T) {
	// Given: a fresh environment
	conf := newTestConfig(t)

	// When: a move request is processed
	err := RunApp(testLogger(), conf, Options{Move: "Play at H,8", IssueNumber: 1})

	// Then: the snapshot, README and SVG all reflect the move
	require.NoError(t, err)

	game := loadState(t, conf)
	assert.Equal(t, 1, game.MoveCount)
	assert.Equal(t, entity.StoneWhite, game.Turn)
	assert.Equal(t, entity.StoneBlack, game.Board.At(entity.Coordinate{Col: 7, Row: 7}))

	readme, err := os.ReadFile(conf.Render.ReadmePath)
	require.NoError(t, err)
	assert.Contains(t, string(readme), "**Next turn:** White")
	assert.NotContains(t, string(readme), "old board")

	_, err = os.Stat(conf.Render.SVGPath)
	require.NoError(t, err)

	_, err = os.Stat(conf.Storage.SQLitePath)
	require.NoError(t, err)
}

func TestRunApp_RejectedMove(t *testing.T) {
	// Given: a game where black already took H,8
	conf := newTestConfig(t)
	require.NoError(t, RunApp(testLogger(), conf, Options{Move: "H,8"}))

	// When: the same cell is requested again
	err := RunApp(testLogger(), conf, Options{Move: "H 8"})

	// Then: the request fails and the stored state is unchanged
	require.ErrorIs(t, err, apperror.ErrCellOccupied)

	game := loadState(t, conf)
	assert.Equal(t, 1, game.MoveCount)
	assert.Equal(t, entity.StoneWhite, game.Turn)
}

func TestRunApp_ResetWinsOverMove(t *testing.T) {
	// Given: an ongoing game with one move
	conf := newTestConfig(t)
	require.NoError(t, RunApp(testLogger(), conf, Options{Move: "H,8"}))

	// When: a reset and a move arrive in the same invocation
	err := RunApp(testLogger(), conf, Options{Reset: true, Move: "A,1"})

	// Then: the game is reset and the accompanying move is ignored
	require.NoError(t, err)

	game := loadState(t, conf)
	require.Equal(t, entity.NewGame(), game)
}

func TestRunApp_Status(t *testing.T) {
	// Given: no stored snapshot at all
	conf := newTestConfig(t)

	// When: asking for the status
	err := RunApp(testLogger(), conf, Options{Status: true})

	// Then: it reports on a fresh game without persisting anything
	require.NoError(t, err)

	_, err = os.Stat(conf.Storage.StateFile)
	assert.True(t, os.IsNotExist(err))
}

func TestRunApp_UnknownBackend(t *testing.T) {
	conf := newTestConfig(t)
	conf.Storage.Backend = "postgres"

	err := RunApp(testLogger(), conf, Options{Status: true})

	require.ErrorIs(t, err, ErrUnknownBackend)
}
