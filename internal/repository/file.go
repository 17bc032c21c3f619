package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/readme-games/omok-engine/internal/apperror"
	"github.com/readme-games/omok-engine/internal/entity"
	"github.com/readme-games/omok-engine/internal/snapshot"
)

type fileGame struct {
	path string
}

// NewFileGameRepository - persists the snapshot as a JSON file, the way
// the automation workflow commits it back to the repository.
func NewFileGameRepository(path string) GameRepository {
	return &fileGame{
		path: path,
	}
}

func (that *fileGame) Load(_ context.Context) (*entity.Game, error) {
	data, err := os.ReadFile(that.path)

	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperror.ErrStateNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read game snapshot: %w", err)
	}

	game, err := snapshot.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode game snapshot: %w", err)
	}

	return game, nil
}

// Save - writes to a temp file and renames, so a failed write never
// corrupts a previously valid snapshot.
func (that *fileGame) Save(_ context.Context, game *entity.Game) error {
	data, err := snapshot.Encode(game)
	if err != nil {
		return fmt.Errorf("could not encode game snapshot: %w", err)
	}

	tmpPath := that.path + ".tmp"
	if err = os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write game snapshot: %w", err)
	}

	if err = os.Rename(tmpPath, that.path); err != nil {
		return fmt.Errorf("failed to replace game snapshot: %w", err)
	}

	return nil
}

func (that *fileGame) Delete(_ context.Context) error {
	err := os.Remove(that.path)

	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to delete game snapshot: %w", err)
	}

	return nil
}
