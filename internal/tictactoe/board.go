package tictactoe

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/gridtactoe/internal/apperror"
)

// MaxCells caps Rows*Cols so the cell slice stays allocatable and the product cannot overflow.
const MaxCells = 1 << 20

var ErrUnknownPlayer = errors.New("unknown player mark")

// directions - the four axes checked for a line: horizontal, vertical, diagonal, anti-diagonal.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Config is set once at game start.
type Config struct {
	Rows      int `json:"rows"`
	Cols      int `json:"cols"`
	WinLength int `json:"win_length"`
}

// Validate - checks that every dimension and the win length are positive and that the grid
// has at most MaxCells cells. A win length larger than both dimensions is valid, such a game
// always ends in a draw.
func (that Config) Validate() error {
	if that.Rows <= 0 || that.Cols <= 0 || that.WinLength <= 0 {
		return fmt.Errorf("%w: rows=%d cols=%d win-length=%d", apperror.ErrInvalidConfig, that.Rows, that.Cols, that.WinLength)
	}

	if that.Rows > MaxCells/that.Cols {
		return fmt.Errorf("%w: %dx%d board exceeds %d cells", apperror.ErrInvalidConfig, that.Rows, that.Cols, MaxCells)
	}

	return nil
}

// Move is a mark placed by a player.
type Move struct {
	Coord
	Player Mark `json:"player"`
}

// Board owns the grid of one game session. It must not be shared between goroutines.
type Board struct {
	config Config
	cells  []Mark
	moves  []Move
	state  GameState
}

// New - creates an all-empty board.
func New(conf Config) (*Board, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &Board{
		config: conf,
		cells:  make([]Mark, conf.Rows*conf.Cols),
		state:  GameState{Status: StatusInProgress},
	}, nil
}

func (that *Board) Config() Config {
	return that.config
}

// State returns the state produced by the last successful move.
func (that *Board) State() GameState {
	return that.state.clone()
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.config.Rows && col >= 0 && col < that.config.Cols
}

// MarkAt returns Empty for coordinates outside the grid.
func (that *Board) MarkAt(row, col int) Mark {
	if !that.InBounds(row, col) {
		return Empty
	}

	return that.cells[row*that.config.Cols+col]
}

func (that *Board) IsFull() bool {
	return len(that.moves) == len(that.cells)
}

// Moves returns the move history in play order.
func (that *Board) Moves() []Move {
	return slices.Clone(that.moves)
}

// EmptyCells returns every free coordinate in row-major order.
func (that *Board) EmptyCells() []Coord {
	free := make([]Coord, 0, len(that.cells)-len(that.moves))
	for i, mark := range that.cells {
		if mark == Empty {
			free = append(free, Coord{Row: i / that.config.Cols, Col: i % that.config.Cols})
		}
	}

	return free
}

// Clone returns a deep copy of the board.
func (that *Board) Clone() *Board {
	return &Board{
		config: that.config,
		cells:  slices.Clone(that.cells),
		moves:  slices.Clone(that.moves),
		state:  that.state.clone(),
	}
}

// ApplyMove - places the player's mark and returns the updated game state.
// Failed calls leave the board untouched.
func (that *Board) ApplyMove(row, col int, player Mark) (GameState, error) {
	if that.state.IsTerminal() {
		return that.State(), apperror.ErrGameAlreadyOver
	}

	if !player.IsPlayer() {
		return that.State(), fmt.Errorf("%w: %d", ErrUnknownPlayer, player)
	}

	if !that.InBounds(row, col) {
		return that.State(), fmt.Errorf("%w: %d-%d on %dx%d board", apperror.ErrOutOfBounds, row, col, that.config.Rows, that.config.Cols)
	}

	if that.MarkAt(row, col) != Empty {
		return that.State(), fmt.Errorf("%w: %d-%d", apperror.ErrCellOccupied, row, col)
	}

	that.cells[row*that.config.Cols+col] = player
	that.moves = append(that.moves, Move{Coord: Coord{Row: row, Col: col}, Player: player})

	that.state = that.stateAfterMove(row, col, player)

	return that.State(), nil
}

// stateAfterMove - only lines through the last placed cell can be new winning lines.
func (that *Board) stateAfterMove(row, col int, player Mark) GameState {
	for _, dir := range directions {
		if line := that.lineThrough(row, col, dir, player); line != nil {
			return GameState{Status: StatusWin, Winner: player, Line: line}
		}
	}

	if that.IsFull() {
		return GameState{Status: StatusDraw}
	}

	return GameState{Status: StatusInProgress}
}

// lineThrough - counts the run of player marks through (row, col) along dir and returns
// a winLength window of that run containing (row, col), or nil when the run is too short.
func (that *Board) lineThrough(row, col int, dir [2]int, player Mark) []Coord {
	back := 0
	for that.MarkAt(row-(back+1)*dir[0], col-(back+1)*dir[1]) == player {
		back++
	}

	forward := 0
	for that.MarkAt(row+(forward+1)*dir[0], col+(forward+1)*dir[1]) == player {
		forward++
	}

	winLength := that.config.WinLength
	if back+forward+1 < winLength {
		return nil
	}

	start := max(0, back-(winLength-1))
	startRow, startCol := row-(back-start)*dir[0], col-(back-start)*dir[1]

	return walk(startRow, startCol, dir, winLength)
}

// Evaluate - scans the whole grid for a winning line of winLength marks. It does not mutate the board.
// Cells are scanned in row-major order and the first line found is returned.
func Evaluate(board *Board, winLength int) GameState {
	conf := board.config

	if winLength > 0 {
		for row := range conf.Rows {
			for col := range conf.Cols {
				player := board.MarkAt(row, col)
				if player == Empty {
					continue
				}

				for _, dir := range directions {
					if runFrom(board, row, col, dir, player, winLength) {
						return GameState{Status: StatusWin, Winner: player, Line: walk(row, col, dir, winLength)}
					}
				}
			}
		}
	}

	if board.IsFull() {
		return GameState{Status: StatusDraw}
	}

	return GameState{Status: StatusInProgress}
}

func runFrom(board *Board, row, col int, dir [2]int, player Mark, length int) bool {
	for step := 1; step < length; step++ {
		if board.MarkAt(row+step*dir[0], col+step*dir[1]) != player {
			return false
		}
	}

	return true
}

func walk(row, col int, dir [2]int, length int) []Coord {
	line := make([]Coord, 0, length)
	for step := range length {
		line = append(line, Coord{Row: row + step*dir[0], Col: col + step*dir[1]})
	}

	return line
}
