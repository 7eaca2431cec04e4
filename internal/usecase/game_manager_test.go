package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gridtactoe/internal/apperror"
	"github.com/rocketscienceinc/gridtactoe/internal/entity"
	"github.com/rocketscienceinc/gridtactoe/internal/tictactoe"
)

var errRedisDown = errors.New("redis down")

var classic = tictactoe.Config{Rows: 3, Cols: 3, WinLength: 3}

type mockScoreRepo struct {
	mock.Mock
}

func newMockScoreRepo(t *testing.T) *mockScoreRepo {
	t.Helper()

	repo := &mockScoreRepo{}
	t.Cleanup(func() {
		repo.AssertExpectations(t)
	})

	return repo
}

func (that *mockScoreRepo) Record(ctx context.Context, result entity.Result) error {
	args := that.Called(ctx, result)
	return args.Error(0)
}

func (that *mockScoreRepo) Get(ctx context.Context) (*entity.Score, error) {
	args := that.Called(ctx)
	score, _ := args.Get(0).(*entity.Score)
	return score, args.Error(1)
}

func (that *mockScoreRepo) Reset(ctx context.Context) error {
	args := that.Called(ctx)
	return args.Error(0)
}

func newManager(t *testing.T, repo scoreRepo) *GameManager {
	t.Helper()

	return NewGameManager(slog.New(slog.NewTextHandler(io.Discard, nil)), repo)
}

func TestGameManager_NewGame(t *testing.T) {
	t.Run("Creates a game with a unique id", func(t *testing.T) {
		// Given: a game manager
		manager := newManager(t, newMockScoreRepo(t))

		// When: two games are started
		first, err := manager.NewGame(classic)
		require.NoError(t, err)
		second, err := manager.NewGame(classic)
		require.NoError(t, err)

		// Then: both are fresh games with different ids
		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, tictactoe.PlayerX, first.Turn)
		assert.Equal(t, classic, first.Board.Config())
	})

	t.Run("Returns error on invalid config", func(t *testing.T) {
		manager := newManager(t, newMockScoreRepo(t))

		game, err := manager.NewGame(tictactoe.Config{Rows: 3, Cols: 3, WinLength: 0})

		require.ErrorIs(t, err, apperror.ErrInvalidConfig)
		assert.Nil(t, game)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Alternates players and does not touch the scoreboard mid game", func(t *testing.T) {
		// Given: a new game and a scoreboard that expects no calls
		manager := newManager(t, newMockScoreRepo(t))
		game, err := manager.NewGame(classic)
		require.NoError(t, err)

		// When: two moves are played
		_, err = manager.MakeTurn(ctx, game, 0, 0)
		require.NoError(t, err)
		state, err := manager.MakeTurn(ctx, game, 1, 1)
		require.NoError(t, err)

		// Then: X and O were placed in turn
		assert.Equal(t, tictactoe.StatusInProgress, state.Status)
		assert.Equal(t, tictactoe.PlayerX, game.Board.MarkAt(0, 0))
		assert.Equal(t, tictactoe.PlayerO, game.Board.MarkAt(1, 1))
		assert.Equal(t, tictactoe.PlayerX, game.Turn)
	})

	t.Run("Records the winner", func(t *testing.T) {
		// Given: a scoreboard expecting an X win
		repo := newMockScoreRepo(t)
		repo.On("Record", mock.Anything, entity.ResultWinX).Return(nil).Once()

		manager := newManager(t, repo)
		game, err := manager.NewGame(classic)
		require.NoError(t, err)

		// When: X takes the top row
		var state tictactoe.GameState
		for _, cell := range []tictactoe.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 0, Col: 2}} {
			state, err = manager.MakeTurn(ctx, game, cell.Row, cell.Col)
			require.NoError(t, err)
		}

		// Then: X wins and the result was recorded once
		assert.Equal(t, tictactoe.StatusWin, state.Status)
		assert.Equal(t, tictactoe.PlayerX, state.Winner)
	})

	t.Run("Records a draw", func(t *testing.T) {
		// Given: a scoreboard expecting a draw
		repo := newMockScoreRepo(t)
		repo.On("Record", mock.Anything, entity.ResultDraw).Return(nil).Once()

		manager := newManager(t, repo)
		game, err := manager.NewGame(tictactoe.Config{Rows: 1, Cols: 2, WinLength: 3})
		require.NoError(t, err)

		// When: the unwinnable board is filled
		_, err = manager.MakeTurn(ctx, game, 0, 0)
		require.NoError(t, err)
		state, err := manager.MakeTurn(ctx, game, 0, 1)

		// Then: the game is a draw
		require.NoError(t, err)
		assert.Equal(t, tictactoe.StatusDraw, state.Status)
	})

	t.Run("Rejected move is not recorded", func(t *testing.T) {
		// Given: a game with X on 0-0
		manager := newManager(t, newMockScoreRepo(t))
		game, err := manager.NewGame(classic)
		require.NoError(t, err)
		_, err = manager.MakeTurn(ctx, game, 0, 0)
		require.NoError(t, err)

		// When: O plays the same cell
		_, err = manager.MakeTurn(ctx, game, 0, 0)

		// Then: ErrCellOccupied is returned and it is still O's turn
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, tictactoe.PlayerO, game.Turn)
	})

	t.Run("Move after the game is over", func(t *testing.T) {
		repo := newMockScoreRepo(t)
		repo.On("Record", mock.Anything, entity.ResultWinX).Return(nil).Once()

		manager := newManager(t, repo)
		game, err := manager.NewGame(tictactoe.Config{Rows: 2, Cols: 2, WinLength: 1})
		require.NoError(t, err)

		_, err = manager.MakeTurn(ctx, game, 0, 0)
		require.NoError(t, err)

		_, err = manager.MakeTurn(ctx, game, 1, 1)
		require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
	})

	t.Run("Scoreboard failure keeps the move", func(t *testing.T) {
		// Given: a scoreboard that is down
		repo := newMockScoreRepo(t)
		repo.On("Record", mock.Anything, entity.ResultWinX).Return(errRedisDown).Once()

		manager := newManager(t, repo)
		game, err := manager.NewGame(tictactoe.Config{Rows: 1, Cols: 1, WinLength: 1})
		require.NoError(t, err)

		// When: X wins
		state, err := manager.MakeTurn(ctx, game, 0, 0)

		// Then: the error is returned but the game is finished
		require.ErrorIs(t, err, errRedisDown)
		assert.Equal(t, tictactoe.StatusWin, state.Status)
		assert.True(t, game.IsFinished())
	})
}

func TestGameManager_Scores(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the tally", func(t *testing.T) {
		repo := newMockScoreRepo(t)
		repo.On("Get", mock.Anything).Return(&entity.Score{XWins: 1, Draws: 2}, nil).Once()

		score, err := newManager(t, repo).Scores(ctx)

		require.NoError(t, err)
		assert.Equal(t, &entity.Score{XWins: 1, Draws: 2}, score)
	})

	t.Run("Returns error if repository fails", func(t *testing.T) {
		repo := newMockScoreRepo(t)
		repo.On("Get", mock.Anything).Return(nil, errRedisDown).Once()

		score, err := newManager(t, repo).Scores(ctx)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, score)
	})

	t.Run("Reset", func(t *testing.T) {
		repo := newMockScoreRepo(t)
		repo.On("Reset", mock.Anything).Return(nil).Once()

		err := newManager(t, repo).ResetScores(ctx)

		require.NoError(t, err)
	})
}
