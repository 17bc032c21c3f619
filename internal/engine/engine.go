package engine

import (
	"log/slog"

	"github.com/readme-games/omok-engine/internal/apperror"
	"github.com/readme-games/omok-engine/internal/entity"
	"github.com/readme-games/omok-engine/internal/omok"
	"github.com/readme-games/omok-engine/internal/parser"
)

// MoveResult - the structured outcome of an accepted move, handed to the
// rendering/reporting side.
type MoveResult struct {
	Coordinate entity.Coordinate
	Color      string
	Status     string
	NextTurn   string
}

// Engine - validates and applies one move request against one game state.
// It owns the state exclusively for the duration of a call and performs
// no locking itself; serializing concurrent requests is the caller's job.
type Engine struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Engine {
	return &Engine{
		logger: logger.With("component", "engine"),
	}
}

// ApplyMove - parses raw move text, places the current turn's stone and
// settles the verdict. Every error path leaves the game untouched.
func (that *Engine) ApplyMove(game *entity.Game, rawText string) (*MoveResult, error) {
	if game.IsFinished() {
		return nil, apperror.ErrGameFinished
	}

	coord, err := parser.ParseCoordinate(rawText)
	if err != nil {
		return nil, err
	}

	stone := game.Turn
	if err = omok.MakeMove(game, coord); err != nil {
		return nil, err
	}

	that.logger.Info("stone placed",
		"coordinate", coord.String(),
		"color", stone,
		"status", game.Status,
		"move", game.MoveCount,
	)

	nextTurn := ""
	if game.IsOngoing() {
		nextTurn = game.Turn
	}

	return &MoveResult{
		Coordinate: coord,
		Color:      stone,
		Status:     game.Status,
		NextTurn:   nextTurn,
	}, nil
}

// Reset - reinitializes the game unconditionally; this is the only
// operation permitted once the status is terminal.
func (that *Engine) Reset(game *entity.Game) {
	game.Reset()

	that.logger.Info("game reset", "turn", game.Turn)
}
