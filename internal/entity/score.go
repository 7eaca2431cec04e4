package entity

import "github.com/rocketscienceinc/gridtactoe/internal/tictactoe"

type Result string

const (
	ResultWinX Result = "x"
	ResultWinO Result = "o"
	ResultDraw Result = "draw"
)

// ResultOf - maps a terminal state to a result, ok is false while the game is in progress.
func ResultOf(state tictactoe.GameState) (Result, bool) {
	switch {
	case state.Status == tictactoe.StatusDraw:
		return ResultDraw, true
	case state.Status == tictactoe.StatusWin && state.Winner == tictactoe.PlayerX:
		return ResultWinX, true
	case state.Status == tictactoe.StatusWin && state.Winner == tictactoe.PlayerO:
		return ResultWinO, true
	default:
		return "", false
	}
}

// Score is the tally of finished games.
type Score struct {
	XWins int64 `json:"x_wins"`
	OWins int64 `json:"o_wins"`
	Draws int64 `json:"draws"`
}

func (that *Score) Add(result Result) {
	switch result {
	case ResultWinX:
		that.XWins++
	case ResultWinO:
		that.OWins++
	case ResultDraw:
		that.Draws++
	}
}

func (that *Score) Total() int64 {
	return that.XWins + that.OWins + that.Draws
}
