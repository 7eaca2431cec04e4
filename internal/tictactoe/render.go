package tictactoe

import "strings"

// String renders the grid as text, one line per row:
//
//	 X | O |
//	-----------
//	   | X |
func (that *Board) String() string {
	var sb strings.Builder

	divider := strings.Repeat("-", that.config.Cols*4-1)

	for row := range that.config.Rows {
		if row > 0 {
			sb.WriteString(divider)
			sb.WriteByte('\n')
		}

		for col := range that.config.Cols {
			if col > 0 {
				sb.WriteByte('|')
			}
			sb.WriteByte(' ')
			sb.WriteString(that.MarkAt(row, col).String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
