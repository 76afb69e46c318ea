package session

import (
	"strings"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
)

const boardSeparator = "-------+-------+------\n"

// Render draws the 9x9 grid as text, one sub-board per 3x3 block.
func Render(game *tictactoe.Game) string {
	var sb strings.Builder

	for boardRow := range entity.BoardSize {
		if boardRow > 0 {
			sb.WriteString(boardSeparator)
		}

		for cellRow := range entity.BoardSize {
			for boardCol := range entity.BoardSize {
				if boardCol > 0 {
					sb.WriteString(" |")
				}

				boardAt := entity.Coordinate{Row: boardRow, Col: boardCol}
				for cellCol := range entity.BoardSize {
					cell := entity.Coordinate{Row: cellRow, Col: cellCol}
					sb.WriteString(" ")
					sb.WriteString(game.Cell(boardAt, cell).String())
				}
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
