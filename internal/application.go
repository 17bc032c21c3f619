package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/readme-games/omok-engine/internal/apperror"
	"github.com/readme-games/omok-engine/internal/config"
	"github.com/readme-games/omok-engine/internal/engine"
	"github.com/readme-games/omok-engine/internal/entity"
	"github.com/readme-games/omok-engine/internal/render"
	"github.com/readme-games/omok-engine/internal/repository"
	"github.com/readme-games/omok-engine/internal/repository/storage"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Options - the command for one engine invocation. The automation layer
// runs at most one invocation at a time against the stored snapshot.
type Options struct {
	Reset       bool
	Move        string
	IssueNumber int
	Status      bool
}

// RunApp - wires storage, engine and renderers and executes one command.
func RunApp(logger *slog.Logger, conf *config.Config, opts Options) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	gameRepo, closeStorage, err := newGameRepository(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open game storage: %w", err)
	}

	defer func() {
		if closeErr := closeStorage(); closeErr != nil {
			log.Error("could not close game storage", "error", closeErr)
		}
	}()

	game, err := gameRepo.Load(ctx)
	if errors.Is(err, apperror.ErrStateNotFound) {
		game = entity.NewGame()
	} else if err != nil {
		return fmt.Errorf("could not load game state: %w", err)
	}

	gameEngine := engine.New(logger)

	// reset strictly wins over any move arriving in the same invocation
	switch {
	case opts.Reset:
		return runReset(ctx, log, conf, gameEngine, gameRepo, game)
	case opts.Move != "":
		return runMove(ctx, log, conf, gameEngine, gameRepo, game, opts)
	default:
		return runStatus(log, game)
	}
}

func runReset(ctx context.Context, log *slog.Logger, conf *config.Config, gameEngine *engine.Engine, gameRepo repository.GameRepository, game *entity.Game) error {
	gameEngine.Reset(game)

	if err := persistAndRender(ctx, conf, gameRepo, game); err != nil {
		return err
	}

	log.Info("game reset", "status", render.StatusLine(game))

	return nil
}

func runMove(ctx context.Context, log *slog.Logger, conf *config.Config, gameEngine *engine.Engine, gameRepo repository.GameRepository, game *entity.Game, opts Options) error {
	result, err := gameEngine.ApplyMove(game, opts.Move)
	if err != nil {
		log.Error("move rejected", "title", opts.Move, "error", err)
		return fmt.Errorf("move rejected: %w", err)
	}

	if err = persistAndRender(ctx, conf, gameRepo, game); err != nil {
		return err
	}

	if err = appendHistory(ctx, log, conf, game, result, opts); err != nil {
		// the history log is auxiliary; a failed append must not undo the move
		log.Error("could not archive move", "error", err)
	}

	log.Info("move accepted",
		"coordinate", result.Coordinate.String(),
		"color", result.Color,
		"status", render.StatusLine(game),
	)

	return nil
}

func runStatus(log *slog.Logger, game *entity.Game) error {
	fmt.Println(render.CompleteDisplay(game))

	log.Info("status shown", "status", render.StatusLine(game), "moves", game.MoveCount)

	return nil
}

func persistAndRender(ctx context.Context, conf *config.Config, gameRepo repository.GameRepository, game *entity.Game) error {
	if err := gameRepo.Save(ctx, game); err != nil {
		return fmt.Errorf("could not save game state: %w", err)
	}

	updater := render.NewReadmeUpdater(conf.Render.ReadmePath)
	if err := updater.Update(game); err != nil {
		return fmt.Errorf("could not update readme: %w", err)
	}

	if err := render.WriteBoardSVG(conf.Render.SVGPath, game); err != nil {
		return fmt.Errorf("could not write board svg: %w", err)
	}

	return nil
}

func appendHistory(ctx context.Context, log *slog.Logger, conf *config.Config, game *entity.Game, result *engine.MoveResult, opts Options) error {
	sqliteStorage, err := storage.NewSQLiteStorage(conf.Storage.SQLitePath)
	if err != nil {
		return fmt.Errorf("could not open history storage: %w", err)
	}

	defer func() {
		if closeErr := sqliteStorage.Close(); closeErr != nil {
			log.Error("could not close history storage", "error", closeErr)
		}
	}()

	history := repository.NewHistoryRepository(sqliteStorage.Connection)
	if err = history.Init(ctx); err != nil {
		return err
	}

	return history.Append(ctx, &repository.MoveRecord{
		MoveNumber:  game.MoveCount,
		Color:       result.Color,
		Coordinate:  result.Coordinate,
		RawTitle:    opts.Move,
		IssueNumber: opts.IssueNumber,
		PlayedAt:    time.Now(),
	})
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	switch conf.Storage.Backend {
	case config.BackendFile:
		return repository.NewFileGameRepository(conf.Storage.StateFile), func() error { return nil }, nil
	case config.BackendRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Storage.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisGameRepository(redisStorage.Connection), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownBackend, conf.Storage.Backend)
	}
}
