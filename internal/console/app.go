package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gridtactoe/internal/entity"
	"github.com/rocketscienceinc/gridtactoe/internal/tictactoe"
)

const quitCommand = "q"

type screen int

const (
	screenSetup screen = iota
	screenPlaying
	screenFinished
	screenClosed
)

var errInputClosed = errors.New("input closed")

type gameManager interface {
	NewGame(conf tictactoe.Config) (*entity.Game, error)
	MakeTurn(ctx context.Context, game *entity.Game, row, col int) (tictactoe.GameState, error)
	Scores(ctx context.Context) (*entity.Score, error)
}

// App is the terminal front end for local two-player games. It owns the current screen
// and game, and is driven by Run until the players quit or the input ends.
type App struct {
	logger  *slog.Logger
	manager gameManager

	in  *bufio.Scanner
	out io.Writer

	defaults tictactoe.Config
	screen   screen
	game     *entity.Game
}

func New(logger *slog.Logger, manager gameManager, defaults tictactoe.Config, in io.Reader, out io.Writer) *App {
	return &App{
		logger:   logger.With("component", "console"),
		manager:  manager,
		in:       bufio.NewScanner(in),
		out:      out,
		defaults: defaults,
		screen:   screenSetup,
	}
}

// Run - runs the setup, play and end screens until the players quit.
// End of input is a normal way to leave and returns nil.
func (that *App) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.printf("Grid tic-tac-toe. Enter moves as row-col, %q quits.\n", quitCommand)

	for that.screen != screenClosed {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch that.screen {
		case screenSetup:
			err = that.setup()
		case screenPlaying:
			err = that.playTurn(ctx)
		case screenFinished:
			err = that.finish(ctx)
		}

		if errors.Is(err, errInputClosed) {
			log.Debug("input closed")
			that.screen = screenClosed
			break
		}

		if err != nil {
			return err
		}
	}

	that.printf("bye\n")

	return nil
}

// setup - the start prompt. Blank answers keep the defaults.
func (that *App) setup() error {
	conf := that.defaults

	fields := []struct {
		label string
		value *int
	}{
		{"N° of rows", &conf.Rows},
		{"N° of cols", &conf.Cols},
		{"chain winning", &conf.WinLength},
	}

	for _, field := range fields {
		answer, err := that.ask(fmt.Sprintf("%s [%d]: ", field.label, *field.value))
		if err != nil {
			return err
		}

		if answer == quitCommand {
			that.screen = screenClosed
			return nil
		}

		if answer == "" {
			continue
		}

		value, err := strconv.Atoi(answer)
		if err != nil {
			that.printf("error, one or all the parameters are wrong: %q is not a number\n", answer)
			return nil
		}
		*field.value = value
	}

	game, err := that.manager.NewGame(conf)
	if err != nil {
		that.printf("error, one or all the parameters are wrong: %v\n", err)
		return nil
	}

	that.game = game
	that.screen = screenPlaying

	return nil
}

func (that *App) playTurn(ctx context.Context) error {
	that.printf("\n%s\n", that.game.Board)

	answer, err := that.ask(fmt.Sprintf("%s to move (row-col): ", that.game.Turn))
	if err != nil {
		return err
	}

	if answer == quitCommand {
		that.screen = screenClosed
		return nil
	}

	coord, err := tictactoe.ParseCoord(answer)
	if err != nil {
		that.printf("%v\n", err)
		return nil
	}

	state, err := that.manager.MakeTurn(ctx, that.game, coord.Row, coord.Col)
	if err != nil && !state.IsTerminal() {
		that.printf("%v\n", err)
		return nil
	}

	if err != nil {
		that.logger.Warn("game finished with error", "error", err)
	}

	if state.IsTerminal() {
		that.screen = screenFinished
	}

	return nil
}

// finish - the end prompt.
func (that *App) finish(ctx context.Context) error {
	state := that.game.State()

	that.printf("\n%s\n", that.game.Board)

	switch state.Status {
	case tictactoe.StatusWin:
		that.printf("player with %s has won (%s)\n", state.Winner, formatLine(state.Line))
	case tictactoe.StatusDraw:
		that.printf("the game ended in a draw\n")
	}

	score, err := that.manager.Scores(ctx)
	if err != nil {
		that.logger.Warn("failed to get scores", "error", err)
	} else {
		that.printf("%s\n", FormatScore(score))
	}

	answer, err := that.ask("new game? [y/N]: ")
	if err != nil {
		return err
	}

	// the next start prompt offers the board that was just played
	that.defaults = that.game.Board.Config()
	that.game = nil

	if strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
		that.screen = screenSetup
		return nil
	}

	that.screen = screenClosed

	return nil
}

func (that *App) ask(prompt string) (string, error) {
	that.printf("%s", prompt)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		that.printf("\n")

		return "", errInputClosed
	}

	return strings.TrimSpace(that.in.Text()), nil
}

func (that *App) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func formatLine(line []tictactoe.Coord) string {
	parts := make([]string, 0, len(line))
	for _, coord := range line {
		parts = append(parts, coord.String())
	}

	return strings.Join(parts, " ")
}

// FormatScore - one line summary of the tally.
func FormatScore(score *entity.Score) string {
	return fmt.Sprintf("score: X %d, O %d, draws %d", score.XWins, score.OWins, score.Draws)
}
