package omok

import (
	"github.com/readme-games/omok-engine/internal/apperror"
	"github.com/readme-games/omok-engine/internal/entity"
)

const winLength = 5

// directions - one delta per axis; the win scan walks each axis in both
// directions from the new stone.
var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal down-right
	{1, -1}, // diagonal down-left
}

// MakeMove - places the current turn's stone and updates bookkeeping and
// status. Nothing is mutated before the placement is validated.
func MakeMove(game *entity.Game, coord entity.Coordinate) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	stone := game.Turn
	if err := game.Board.Place(coord, stone); err != nil {
		return err
	}

	game.MoveCount++
	placed := coord
	game.LastMove = &placed

	updateGameStatus(game, coord, stone)

	return nil
}

// updateGameStatus - settles the game status after a placement: win keeps
// the turn, a full board is a draw, otherwise the turn flips.
func updateGameStatus(game *entity.Game, coord entity.Coordinate, stone string) {
	switch {
	case CheckWin(&game.Board, coord, stone):
		game.Winner = stone
		if stone == entity.StoneBlack {
			game.Status = entity.StatusBlackWins
		} else {
			game.Status = entity.StatusWhiteWins
		}
	case game.IsBoardFull():
		game.Status = entity.StatusDraw
	default:
		game.Turn = entity.ToggleStone(stone)
	}
}

// CheckWin - reports whether the stone just placed at coord completes
// five or more contiguous same-color stones on any axis. The scan is
// bounded by the board dimension, never a full-board rescan.
func CheckWin(board *entity.Board, coord entity.Coordinate, stone string) bool {
	for _, dir := range directions {
		count := 1 +
			countRun(board, coord, stone, dir[0], dir[1]) +
			countRun(board, coord, stone, -dir[0], -dir[1])

		if count >= winLength {
			return true
		}
	}

	return false
}

// countRun - counts contiguous same-color stones from coord (exclusive)
// along one direction, stopping at the edge or the first other cell.
func countRun(board *entity.Board, coord entity.Coordinate, stone string, dRow, dCol int) int {
	count := 0

	row, col := coord.Row+dRow, coord.Col+dCol
	for row >= 0 && row < entity.BoardSize && col >= 0 && col < entity.BoardSize && board[row][col] == stone {
		count++
		row += dRow
		col += dCol
	}

	return count
}
