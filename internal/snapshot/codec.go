package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/readme-games/omok-engine/internal/entity"
)

var ErrInvalidSnapshot = errors.New("invalid game snapshot")

// snapshot mirrors the persisted JSON layout, so snapshots written by
// earlier versions of the game stay readable.
type snapshot struct {
	Board         [][]string `json:"board"`
	CurrentPlayer string     `json:"current_player"`
	GameStatus    string     `json:"game_status"`
	MoveCount     int        `json:"move_count"`
	Winner        *string    `json:"winner"`
	LastMove      []int      `json:"last_move"` // [row, col]
}

// Encode - serializes a game into the persisted snapshot form.
func Encode(game *entity.Game) ([]byte, error) {
	snap := snapshot{
		Board:         make([][]string, entity.BoardSize),
		CurrentPlayer: game.Turn,
		GameStatus:    game.Status,
		MoveCount:     game.MoveCount,
	}

	for row := range game.Board {
		cells := make([]string, entity.BoardSize)
		copy(cells, game.Board[row][:])
		snap.Board[row] = cells
	}

	if game.Winner != "" {
		winner := game.Winner
		snap.Winner = &winner
	}

	if game.LastMove != nil {
		snap.LastMove = []int{game.LastMove.Row, game.LastMove.Col}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not marshal snapshot: %w", err)
	}

	return data, nil
}

// Decode - parses and validates a persisted snapshot. A malformed
// snapshot is an error for the caller to handle, never a silent reset.
func Decode(data []byte) (*entity.Game, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	game := entity.NewGame()
	game.Turn = snap.CurrentPlayer
	game.Status = snap.GameStatus
	game.MoveCount = snap.MoveCount

	if err := decodeBoard(game, snap.Board); err != nil {
		return nil, err
	}

	if err := validateValues(&snap); err != nil {
		return nil, err
	}

	if snap.Winner != nil {
		game.Winner = *snap.Winner
	}

	if snap.LastMove != nil {
		coord, err := decodeLastMove(snap.LastMove)
		if err != nil {
			return nil, err
		}
		game.LastMove = &coord
	}

	occupied := 0
	for row := range game.Board {
		for col := range game.Board[row] {
			if game.Board[row][col] != entity.StoneEmpty {
				occupied++
			}
		}
	}
	if occupied != game.MoveCount {
		return nil, fmt.Errorf("%w: move count %d does not match %d occupied cells",
			ErrInvalidSnapshot, game.MoveCount, occupied)
	}

	return game, nil
}

func decodeBoard(game *entity.Game, board [][]string) error {
	if len(board) != entity.BoardSize {
		return fmt.Errorf("%w: board has %d rows, want %d", ErrInvalidSnapshot, len(board), entity.BoardSize)
	}

	for row := range board {
		if len(board[row]) != entity.BoardSize {
			return fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrInvalidSnapshot, row, len(board[row]), entity.BoardSize)
		}

		for col, cell := range board[row] {
			switch cell {
			case entity.StoneEmpty, entity.StoneBlack, entity.StoneWhite:
				game.Board[row][col] = cell
			default:
				return fmt.Errorf("%w: unknown cell value %q", ErrInvalidSnapshot, cell)
			}
		}
	}

	return nil
}

func validateValues(snap *snapshot) error {
	switch snap.CurrentPlayer {
	case entity.StoneBlack, entity.StoneWhite:
	default:
		return fmt.Errorf("%w: unknown player %q", ErrInvalidSnapshot, snap.CurrentPlayer)
	}

	switch snap.GameStatus {
	case entity.StatusOngoing, entity.StatusBlackWins, entity.StatusWhiteWins, entity.StatusDraw:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidSnapshot, snap.GameStatus)
	}

	if snap.MoveCount < 0 || snap.MoveCount > entity.BoardSize*entity.BoardSize {
		return fmt.Errorf("%w: move count %d out of range", ErrInvalidSnapshot, snap.MoveCount)
	}

	if snap.Winner != nil && *snap.Winner != entity.StoneBlack && *snap.Winner != entity.StoneWhite {
		return fmt.Errorf("%w: unknown winner %q", ErrInvalidSnapshot, *snap.Winner)
	}

	return nil
}

func decodeLastMove(lastMove []int) (entity.Coordinate, error) {
	if len(lastMove) != 2 {
		return entity.Coordinate{}, fmt.Errorf("%w: last move must be [row, col]", ErrInvalidSnapshot)
	}

	coord, err := entity.NewCoordinate(lastMove[1], lastMove[0])
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	return coord, nil
}
