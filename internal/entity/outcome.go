package entity

import "fmt"

type Status uint8

const (
	StatusUnresolved Status = iota
	StatusDecided
	StatusDraw
)

func (that Status) String() string {
	switch that {
	case StatusUnresolved:
		return "unresolved"
	case StatusDecided:
		return "decided"
	case StatusDraw:
		return "draw"
	default:
		return fmt.Sprintf("status(%d)", uint8(that))
	}
}

// Line holds the two endpoints of a winning line.
type Line struct {
	From Coordinate
	To   Coordinate
}

// Outcome is the result of a board. Winner and Line are only meaningful when
// Status is StatusDecided.
type Outcome struct {
	Status Status
	Winner Player
	Line   Line
}

func (that Outcome) IsUnresolved() bool {
	return that.Status == StatusUnresolved
}

func (that Outcome) IsDecided() bool {
	return that.Status == StatusDecided
}

// IsFinal reports whether the board can no longer change.
func (that Outcome) IsFinal() bool {
	return that.Status != StatusUnresolved
}
