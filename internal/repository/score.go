package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gridtactoe/internal/entity"
)

const scoreKey = "scores"

var ErrUnknownResult = errors.New("unknown game result")

type ScoreRepository interface {
	Record(ctx context.Context, result entity.Result) error
	Get(ctx context.Context) (*entity.Score, error)
	Reset(ctx context.Context) error
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func (that *dbScore) Record(ctx context.Context, result entity.Result) error {
	if err := validateResult(result); err != nil {
		return err
	}

	if err := that.client.HIncrBy(ctx, scoreKey, string(result), 1).Err(); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *dbScore) Get(ctx context.Context) (*entity.Score, error) {
	fields, err := that.client.HGetAll(ctx, scoreKey).Result()
	if err != nil {
		return &entity.Score{}, fmt.Errorf("failed to get scores: %w", err)
	}

	score := &entity.Score{}
	targets := map[entity.Result]*int64{
		entity.ResultWinX: &score.XWins,
		entity.ResultWinO: &score.OWins,
		entity.ResultDraw: &score.Draws,
	}

	for result, target := range targets {
		value, ok := fields[string(result)]
		if !ok {
			continue
		}

		if *target, err = strconv.ParseInt(value, 10, 64); err != nil {
			return &entity.Score{}, fmt.Errorf("failed to parse %s score: %w", result, err)
		}
	}

	return score, nil
}

func (that *dbScore) Reset(ctx context.Context) error {
	if err := that.client.Del(ctx, scoreKey).Err(); err != nil {
		return fmt.Errorf("failed to reset scores: %w", err)
	}

	return nil
}

func validateResult(result entity.Result) error {
	switch result {
	case entity.ResultWinX, entity.ResultWinO, entity.ResultDraw:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownResult, result)
	}
}
