package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gridtactoe/internal/config"
	"github.com/rocketscienceinc/gridtactoe/internal/console"
	"github.com/rocketscienceinc/gridtactoe/internal/repository"
	"github.com/rocketscienceinc/gridtactoe/internal/repository/storage"
	"github.com/rocketscienceinc/gridtactoe/internal/usecase"
)

var (
	ErrAddrNotFound       = errors.New("redis address string is empty")
	ErrScoresNotPersisted = errors.New("the memory scoreboard only lives for one game session, use the redis backend to keep scores")
)

// RunApp - runs the console game until the players quit or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	scoreRepo, closeRepo, err := newScoreRepository(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	gameManager := usecase.NewGameManager(logger, scoreRepo)
	app := console.New(logger, gameManager, conf.Board.Engine(), in, out)

	// run console
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console", "scoreboard", conf.Scoreboard.Backend)
		consoleErrCh <- app.Run(ctx)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("console error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// ShowScores - prints the scoreboard, clearing it first when reset is set.
// Only a persistent backend has anything to show outside a running game.
func ShowScores(ctx context.Context, logger *slog.Logger, conf *config.Config, reset bool, out io.Writer) error {
	if conf.Scoreboard.Backend == config.BackendMemory {
		return ErrScoresNotPersisted
	}

	scoreRepo, closeRepo, err := newScoreRepository(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	gameManager := usecase.NewGameManager(logger, scoreRepo)

	if reset {
		if err = gameManager.ResetScores(ctx); err != nil {
			return err
		}
	}

	score, err := gameManager.Scores(ctx)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(out, console.FormatScore(score)); err != nil {
		return fmt.Errorf("failed to print scores: %w", err)
	}

	return nil
}

func newScoreRepository(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.ScoreRepository, func(), error) {
	log := logger.With("component", "app")

	if conf.Scoreboard.Backend != config.BackendRedis {
		return repository.NewMemoryScoreRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeRepo := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewScoreRepository(redisStorage.Connection), closeRepo, nil
}
