package tictactoe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidNotation = errors.New("invalid move notation")

// Coord addresses a cell, top left is 0-0.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String - formats the coordinate as "row-col".
func (that Coord) String() string {
	return strconv.Itoa(that.Row) + "-" + strconv.Itoa(that.Col)
}

// ParseCoord - parses "row-col". Spaces and commas are accepted as separators as well.
func ParseCoord(text string) (Coord, error) {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '-' || r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidNotation, text)
	}

	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return Coord{}, fmt.Errorf("%w: row %q", ErrInvalidNotation, parts[0])
	}

	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return Coord{}, fmt.Errorf("%w: col %q", ErrInvalidNotation, parts[1])
	}

	return Coord{Row: row, Col: col}, nil
}
