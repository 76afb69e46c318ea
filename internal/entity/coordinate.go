package entity

import (
	"errors"
	"fmt"
	"strings"
)

// BoardSize is the side length of both a sub-board and the meta-board.
const BoardSize = 3

var ErrInvalidCoordinate = errors.New("invalid coordinate")

var squareNames = [BoardSize][BoardSize]string{
	{"top left", "top centre", "top right"},
	{"middle left", "middle centre", "middle right"},
	{"bottom left", "bottom centre", "bottom right"},
}

// Coordinate addresses a cell within a sub-board or a sub-board within the
// meta-board. (0,0) is top left.
type Coordinate struct {
	Row int
	Col int
}

// AllCoordinates lists the nine positions in row-major order.
func AllCoordinates() []Coordinate {
	coords := make([]Coordinate, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			coords = append(coords, Coordinate{Row: row, Col: col})
		}
	}
	return coords
}

func (that Coordinate) Valid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Name returns a human readable name such as "top left".
func (that Coordinate) Name() string {
	if !that.Valid() {
		return that.String()
	}
	return squareNames[that.Row][that.Col]
}

func (that Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// ParseCoordinate reads a two digit "rc" pair such as "02".
func ParseCoordinate(s string) (Coordinate, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}

	coord := Coordinate{Row: int(s[0]) - '0', Col: int(s[1]) - '0'}
	if !coord.Valid() {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}

	return coord, nil
}

// ParseMove reads a board and a cell, either as "11 02" or "1 1 0 2".
func ParseMove(s string) (Coordinate, Coordinate, error) {
	fields := strings.Fields(s)

	switch len(fields) {
	case 2:
	case 4:
		fields = []string{fields[0] + fields[1], fields[2] + fields[3]}
	default:
		return Coordinate{}, Coordinate{}, fmt.Errorf("%w: expected board and cell, got %q", ErrInvalidCoordinate, s)
	}

	board, err := ParseCoordinate(fields[0])
	if err != nil {
		return Coordinate{}, Coordinate{}, fmt.Errorf("failed to parse board: %w", err)
	}

	cell, err := ParseCoordinate(fields[1])
	if err != nil {
		return Coordinate{}, Coordinate{}, fmt.Errorf("failed to parse cell: %w", err)
	}

	return board, cell, nil
}
