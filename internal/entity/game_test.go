package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readme-games/omok-engine/internal/apperror"
)

func TestNewGame(t *testing.T) {
	// When: create a new game instance
	game := NewGame()

	// Then: the game should have the expected initial state
	require.NotNil(t, game)
	assert.Equal(t, StoneBlack, game.Turn)
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Equal(t, 0, game.MoveCount)
	assert.Empty(t, game.Winner)
	assert.Nil(t, game.LastMove)

	// Then: every cell should be empty
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			require.Equal(t, StoneEmpty, game.Board[row][col])
		}
	}
}

func TestBoard_Place(t *testing.T) {
	t.Run("Place on empty cell", func(t *testing.T) {
		// Given: a fresh board
		board := NewBoard()
		coord := Coordinate{Col: 7, Row: 7}

		// When: a black stone is placed on an empty cell
		err := board.Place(coord, StoneBlack)

		// Then: the placement should succeed and be readable
		require.NoError(t, err)
		assert.Equal(t, StoneBlack, board.At(coord))
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board with a black stone at H,8
		board := NewBoard()
		coord := Coordinate{Col: 7, Row: 7}
		require.NoError(t, board.Place(coord, StoneBlack))

		// When: a white stone targets the same cell
		err := board.Place(coord, StoneWhite)

		// Then: an ErrCellOccupied error should be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// Then: the cell should keep its original stone
		assert.Equal(t, StoneBlack, board.At(coord))
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a game mid-way with a finished status
	game := NewGame()
	coord := Coordinate{Col: 0, Row: 0}
	require.NoError(t, game.Board.Place(coord, StoneBlack))
	game.MoveCount = 1
	game.LastMove = &coord
	game.Turn = StoneWhite
	game.Status = StatusBlackWins
	game.Winner = StoneBlack

	// When: the game is reset
	game.Reset()

	// Then: the game should match a brand new game
	require.Equal(t, NewGame(), game)
}

func TestGame_StatusPredicates(t *testing.T) {
	t.Run("IsOngoing returns true for a fresh game", func(t *testing.T) {
		game := NewGame()

		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
	})

	t.Run("IsFinished returns true for every terminal status", func(t *testing.T) {
		for _, status := range []string{StatusBlackWins, StatusWhiteWins, StatusDraw} {
			game := NewGame()
			game.Status = status

			assert.True(t, game.IsFinished(), status)
			assert.False(t, game.IsOngoing(), status)
		}
	})
}

func TestToggleStone(t *testing.T) {
	assert.Equal(t, StoneWhite, ToggleStone(StoneBlack))
	assert.Equal(t, StoneBlack, ToggleStone(StoneWhite))
}

func TestCoordinate(t *testing.T) {
	t.Run("NewCoordinate accepts in-range positions", func(t *testing.T) {
		coord, err := NewCoordinate(0, 0)
		require.NoError(t, err)
		assert.Equal(t, "A,1", coord.String())

		coord, err = NewCoordinate(14, 14)
		require.NoError(t, err)
		assert.Equal(t, "O,15", coord.String())

		coord, err = NewCoordinate(7, 7)
		require.NoError(t, err)
		assert.Equal(t, "H,8", coord.String())
	})

	t.Run("NewCoordinate rejects out-of-range positions", func(t *testing.T) {
		_, err := NewCoordinate(-1, 0)
		require.Error(t, err)

		_, err = NewCoordinate(15, 0)
		require.Error(t, err)

		_, err = NewCoordinate(0, -1)
		require.Error(t, err)

		_, err = NewCoordinate(0, 15)
		require.Error(t, err)
	})
}
