package render

import (
	"fmt"
	"strings"

	"github.com/readme-games/omok-engine/internal/entity"
)

const (
	blackStone = "●"
	whiteStone = "○"
	emptySpot  = "·"
)

// BoardText - the Unicode board with column headers A-O and row numbers,
// the last move bracketed.
func BoardText(game *entity.Game) string {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := 0; col < entity.BoardSize; col++ {
		fmt.Fprintf(&sb, " %c ", rune('A'+col))
	}

	for row := 0; row < entity.BoardSize; row++ {
		fmt.Fprintf(&sb, "\n%2d ", row+1)
		for col := 0; col < entity.BoardSize; col++ {
			sb.WriteString(cellContent(game, row, col))
		}
	}

	return sb.String()
}

func cellContent(game *entity.Game, row, col int) string {
	isLastMove := game.LastMove != nil && game.LastMove.Row == row && game.LastMove.Col == col

	switch game.Board[row][col] {
	case entity.StoneBlack:
		if isLastMove {
			return "[" + blackStone + "]"
		}
		return " " + blackStone + " "
	case entity.StoneWhite:
		if isLastMove {
			return "[" + whiteStone + "]"
		}
		return " " + whiteStone + " "
	default:
		return " " + emptySpot + " "
	}
}

// StatusLine - the one-line game status shown under the board.
func StatusLine(game *entity.Game) string {
	switch game.Status {
	case entity.StatusBlackWins:
		return "Black wins!"
	case entity.StatusWhiteWins:
		return "White wins!"
	case entity.StatusDraw:
		return "It's a draw!"
	default:
		return fmt.Sprintf("Current turn: %s (Move #%d)", entity.StoneName(game.Turn), game.MoveCount+1)
	}
}

// StatusMessage - the markdown status block: status, move count, last
// move, and either the winner or the next turn.
func StatusMessage(game *entity.Game) string {
	lines := []string{
		fmt.Sprintf("**Game Status:** %s", StatusLine(game)),
		fmt.Sprintf("**Moves played:** %d", game.MoveCount),
	}

	if game.LastMove != nil {
		// odd move counts mean black placed last
		lastPlayer := "White"
		if game.MoveCount%2 == 1 {
			lastPlayer = "Black"
		}
		lines = append(lines, fmt.Sprintf("**Last move:** %s at %s", lastPlayer, game.LastMove))
	}

	switch {
	case game.Winner != "":
		lines = append(lines, fmt.Sprintf("**Winner:** %s", entity.StoneName(game.Winner)))
	case game.IsBoardFull():
		lines = append(lines, "**Result:** Draw - Board is full")
	default:
		lines = append(lines, fmt.Sprintf("**Next turn:** %s", entity.StoneName(game.Turn)))
	}

	return strings.Join(lines, "\n")
}

// CompleteDisplay - the fenced board plus the status block, as embedded
// into the README.
func CompleteDisplay(game *entity.Game) string {
	return fmt.Sprintf("```\n%s\n```\n\n%s", BoardText(game), StatusMessage(game))
}
