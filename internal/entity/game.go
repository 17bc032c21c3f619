package entity

import (
	"github.com/readme-games/omok-engine/internal/apperror"
)

const BoardSize = 15

const (
	StatusOngoing   = "ongoing"
	StatusBlackWins = "black_wins"
	StatusWhiteWins = "white_wins"
	StatusDraw      = "draw"

	StoneBlack = "black"
	StoneWhite = "white"
	StoneEmpty = "empty"
)

// Board - a fixed 15x15 grid of stone values. Cells hold StoneEmpty,
// StoneBlack or StoneWhite and never revert to empty except on reset.
type Board [BoardSize][BoardSize]string

func NewBoard() Board {
	var board Board
	for row := range board {
		for col := range board[row] {
			board[row][col] = StoneEmpty
		}
	}

	return board
}

func (that *Board) At(coord Coordinate) string {
	return that[coord.Row][coord.Col]
}

// Place - puts a stone on an empty cell. Out-of-range coordinates are
// prevented by construction, so only occupancy is checked here.
func (that *Board) Place(coord Coordinate, stone string) error {
	if that[coord.Row][coord.Col] != StoneEmpty {
		return apperror.ErrCellOccupied
	}

	that[coord.Row][coord.Col] = stone

	return nil
}

// Game - the single unit of persisted truth: the board plus turn,
// status and move bookkeeping.
type Game struct {
	Board     Board
	Turn      string
	Status    string
	Winner    string
	MoveCount int
	LastMove  *Coordinate
}

func NewGame() *Game {
	return &Game{
		Board:  NewBoard(),
		Turn:   StoneBlack,
		Status: StatusOngoing,
	}
}

// Reset - reinitializes to the starting position with black to move.
// This is the only way occupied cells go back to empty.
func (that *Game) Reset() {
	that.Board = NewBoard()
	that.Turn = StoneBlack
	that.Status = StatusOngoing
	that.Winner = ""
	that.MoveCount = 0
	that.LastMove = nil
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status != StatusOngoing
}

func (that *Game) IsBoardFull() bool {
	return that.MoveCount >= BoardSize*BoardSize
}

func ToggleStone(stone string) string {
	if stone == StoneBlack {
		return StoneWhite
	}
	return StoneBlack
}

// StoneName - human-readable stone color for status messages.
func StoneName(stone string) string {
	switch stone {
	case StoneBlack:
		return "Black"
	case StoneWhite:
		return "White"
	default:
		return ""
	}
}
