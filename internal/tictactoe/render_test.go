package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_String(t *testing.T) {
	t.Run("Renders rows and dividers", func(t *testing.T) {
		// Given: a 2x3 board with X on 0-0 and O on 1-2
		board, err := New(Config{Rows: 2, Cols: 3, WinLength: 3})
		require.NoError(t, err)

		_, err = board.ApplyMove(0, 0, PlayerX)
		require.NoError(t, err)
		_, err = board.ApplyMove(1, 2, PlayerO)
		require.NoError(t, err)

		// When: rendering the board
		text := board.String()

		// Then: each row is followed by a newline and rows are separated by dashes
		expected := " X |   |   \n" +
			"-----------\n" +
			"   |   | O \n"
		assert.Equal(t, expected, text)
	})

	t.Run("Single cell", func(t *testing.T) {
		board, err := New(Config{Rows: 1, Cols: 1, WinLength: 1})
		require.NoError(t, err)

		assert.Equal(t, "   \n", board.String())
	})
}
