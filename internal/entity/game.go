package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gridtactoe/internal/apperror"
	"github.com/rocketscienceinc/gridtactoe/internal/tictactoe"
)

// Game is one local session: the board plus whose turn it is.
type Game struct {
	ID    string           `json:"id"`
	Board *tictactoe.Board `json:"-"`
	Turn  tictactoe.Mark   `json:"player_turn"`
}

// NewGame - creates a game on an empty board, X moves first.
func NewGame(id string, conf tictactoe.Config) (*Game, error) {
	board, err := tictactoe.New(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Game{
		ID:    id,
		Board: board,
		Turn:  tictactoe.PlayerX,
	}, nil
}

func (that *Game) State() tictactoe.GameState {
	return that.Board.State()
}

func (that *Game) IsFinished() bool {
	return that.Board.State().IsTerminal()
}

// MakeTurn - applies the move for playerMark if it is that player's turn.
func (that *Game) MakeTurn(playerMark tictactoe.Mark, row, col int) (tictactoe.GameState, error) {
	if that.IsFinished() {
		return that.State(), apperror.ErrGameAlreadyOver
	}

	if that.Turn != playerMark {
		return that.State(), fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.Turn)
	}

	state, err := that.Board.ApplyMove(row, col, playerMark)
	if err != nil {
		return state, err
	}

	if state.IsTerminal() {
		that.Turn = tictactoe.Empty
	} else {
		that.Turn = playerMark.Opponent()
	}

	return state, nil
}
