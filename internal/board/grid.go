package board

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"

// Marker is a cell that can be scored as part of a 3x3 grid.
type Marker interface {
	// Mark is the mark the cell contributes to a line.
	Mark() entity.CellState
	// Settled reports whether the cell counts as filled for draw detection.
	Settled() bool
}

// winLines lists the eight winning lines in scan order: three rows, three
// columns, the main diagonal and the anti-diagonal. The first and last
// coordinates of a line are its endpoints.
var winLines = buildWinLines()

func buildWinLines() [8][3]entity.Coordinate {
	at := func(row, col int) entity.Coordinate {
		return entity.Coordinate{Row: row, Col: col}
	}

	return [8][3]entity.Coordinate{
		{at(0, 0), at(0, 1), at(0, 2)},
		{at(1, 0), at(1, 1), at(1, 2)},
		{at(2, 0), at(2, 1), at(2, 2)},
		{at(0, 0), at(1, 0), at(2, 0)},
		{at(0, 1), at(1, 1), at(2, 1)},
		{at(0, 2), at(1, 2), at(2, 2)},
		{at(0, 0), at(1, 1), at(2, 2)},
		{at(2, 0), at(1, 1), at(0, 2)},
	}
}

// Grid is a 3x3 arrangement of cells scored like tic-tac-toe. A final
// outcome is cached, since a decided or drawn grid never changes again.
type Grid[C Marker] struct {
	cells   [entity.BoardSize][entity.BoardSize]C
	outcome entity.Outcome
}

// Cell returns the cell at coord. Out of range coordinates panic.
func (that *Grid[C]) Cell(coord entity.Coordinate) C {
	return that.cells[coord.Row][coord.Col]
}

func (that *Grid[C]) set(coord entity.Coordinate, cell C) {
	that.cells[coord.Row][coord.Col] = cell
}

// Outcome scores the grid, returning the cached result once it is final.
func (that *Grid[C]) Outcome() entity.Outcome {
	if that.outcome.IsFinal() {
		return that.outcome
	}

	outcome := that.evaluate()
	if outcome.IsFinal() {
		that.outcome = outcome
	}

	return outcome
}

func (that *Grid[C]) evaluate() entity.Outcome {
	var outcome entity.Outcome

	// One move can complete several lines at once. The last satisfied line in
	// scan order is the one recorded; the choice is arbitrary but stable.
	for _, line := range winLines {
		a, b, c := that.Cell(line[0]).Mark(), that.Cell(line[1]).Mark(), that.Cell(line[2]).Mark()
		if a != entity.Empty && a == b && b == c {
			outcome = entity.Outcome{
				Status: entity.StatusDecided,
				Winner: a.Player(),
				Line:   entity.Line{From: line[0], To: line[2]},
			}
		}
	}

	if outcome.IsDecided() {
		return outcome
	}

	for _, row := range that.cells {
		for _, cell := range row {
			if !cell.Settled() {
				return entity.Outcome{Status: entity.StatusUnresolved}
			}
		}
	}

	return entity.Outcome{Status: entity.StatusDraw}
}
