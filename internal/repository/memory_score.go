package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/gridtactoe/internal/entity"
)

// memoryScore keeps the tally for the lifetime of the process.
type memoryScore struct {
	mu    sync.RWMutex
	score entity.Score
}

func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{}
}

func (that *memoryScore) Record(_ context.Context, result entity.Result) error {
	if err := validateResult(result); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.score.Add(result)

	return nil
}

func (that *memoryScore) Get(_ context.Context) (*entity.Score, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	score := that.score

	return &score, nil
}

func (that *memoryScore) Reset(_ context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.score = entity.Score{}

	return nil
}
