package tictactoe

import "slices"

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

type Status string

// Mark is the content of a cell. PlayerX and PlayerO double as the two player identities.
type Mark uint8

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other player, Empty stays Empty.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// GameState is derived from the board after every move.
type GameState struct {
	Status Status  `json:"status"`
	Winner Mark    `json:"winner,omitempty"`
	Line   []Coord `json:"line,omitempty"`
}

func (that GameState) IsTerminal() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

func (that GameState) clone() GameState {
	that.Line = slices.Clone(that.Line)
	return that
}
