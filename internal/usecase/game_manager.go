package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gridtactoe/internal/entity"
	"github.com/rocketscienceinc/gridtactoe/internal/tictactoe"
)

type scoreRepo interface {
	Record(ctx context.Context, result entity.Result) error
	Get(ctx context.Context) (*entity.Score, error)
	Reset(ctx context.Context) error
}

type GameManager struct {
	logger    *slog.Logger
	scoreRepo scoreRepo
}

func NewGameManager(logger *slog.Logger, scoreRepo scoreRepo) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		scoreRepo: scoreRepo,
	}
}

// NewGame - starts a game session on an empty board.
func (that *GameManager) NewGame(conf tictactoe.Config) (*entity.Game, error) {
	game, err := entity.NewGame(uuid.NewString(), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game started", "gameID", game.ID, "rows", conf.Rows, "cols", conf.Cols, "winLength", conf.WinLength)

	return game, nil
}

// MakeTurn - plays the cell for the player whose turn it is. When the move ends the game
// the result is recorded; a scoreboard failure is returned but the move stays applied.
func (that *GameManager) MakeTurn(ctx context.Context, game *entity.Game, row, col int) (tictactoe.GameState, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	player := game.Turn

	state, err := game.MakeTurn(player, row, col)
	if err != nil {
		log.Debug("move rejected", "player", player.String(), "row", row, "col", col, "error", err)
		return state, fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("move applied", "player", player.String(), "row", row, "col", col, "status", state.Status)

	result, finished := entity.ResultOf(state)
	if !finished {
		return state, nil
	}

	log.Info("game finished", "result", result, "moves", len(game.Board.Moves()))

	if err = that.scoreRepo.Record(ctx, result); err != nil {
		log.Error("failed to record result", "error", err)
		return state, fmt.Errorf("failed to record result: %w", err)
	}

	return state, nil
}

func (that *GameManager) Scores(ctx context.Context) (*entity.Score, error) {
	score, err := that.scoreRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	return score, nil
}

func (that *GameManager) ResetScores(ctx context.Context) error {
	if err := that.scoreRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset scores: %w", err)
	}

	that.logger.Info("scores reset")

	return nil
}
