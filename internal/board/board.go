package board

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"

// SubBoard is one of the nine local boards. It is a passive grid: callers
// must only Set empty cells of an unresolved board.
type SubBoard struct {
	Grid[entity.CellState]
}

func NewSubBoard() *SubBoard {
	return &SubBoard{}
}

func (that *SubBoard) Set(coord entity.Coordinate, state entity.CellState) {
	that.set(coord, state)
}

// MetaCell is a position of the meta-board. Its mark is set only once the
// owned sub-board is won; a drawn sub-board leaves it Empty.
type MetaCell struct {
	mark  entity.CellState
	board *SubBoard
}

func (that *MetaCell) Mark() entity.CellState {
	return that.mark
}

// Settled reports whether the owned sub-board is decided or drawn.
func (that *MetaCell) Settled() bool {
	return that.board.Outcome().IsFinal()
}

func (that *MetaCell) Board() *SubBoard {
	return that.board
}

func (that *MetaCell) SetMark(player entity.Player) {
	that.mark = entity.Marked(player)
}

// MetaBoard is the 3x3 grid of sub-boards, scored with the marks of the
// sub-boards already won.
type MetaBoard struct {
	Grid[*MetaCell]
}

func NewMetaBoard() *MetaBoard {
	meta := &MetaBoard{}
	for _, coord := range entity.AllCoordinates() {
		meta.set(coord, &MetaCell{board: NewSubBoard()})
	}

	return meta
}

// SubBoard returns the local board at the given meta-board position.
func (that *MetaBoard) SubBoard(coord entity.Coordinate) *SubBoard {
	return that.Cell(coord).Board()
}
