package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/readme-games/omok-engine/internal/apperror"
	"github.com/readme-games/omok-engine/internal/entity"
	"github.com/readme-games/omok-engine/internal/snapshot"
)

// gameKey - the single board lives under one fixed key; there is no
// multi-board management.
const gameKey = "omok:game"

// GameRepository - load/save of the one persisted game snapshot.
type GameRepository interface {
	Load(ctx context.Context) (*entity.Game, error)
	Save(ctx context.Context, game *entity.Game) error
	Delete(ctx context.Context) error
}

type redisGame struct {
	client *redis.Client
}

func NewRedisGameRepository(client *redis.Client) GameRepository {
	return &redisGame{
		client: client,
	}
}

func (that *redisGame) Load(ctx context.Context) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrStateNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game snapshot: %w", err)
	}

	game, err := snapshot.Decode([]byte(response))
	if err != nil {
		return nil, fmt.Errorf("failed to decode game snapshot: %w", err)
	}

	return game, nil
}

func (that *redisGame) Save(ctx context.Context, game *entity.Game) error {
	data, err := snapshot.Encode(game)
	if err != nil {
		return fmt.Errorf("could not encode game snapshot: %w", err)
	}

	if err = that.client.Set(ctx, gameKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game snapshot: %w", err)
	}

	return nil
}

func (that *redisGame) Delete(ctx context.Context) error {
	if err := that.client.Del(ctx, gameKey).Err(); err != nil {
		return fmt.Errorf("failed to delete game snapshot: %w", err)
	}

	return nil
}
