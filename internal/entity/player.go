package entity

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

var ErrInvalidPlayer = errors.New("invalid player mark")

// Player is one of the two marks. The zero value means no player.
type Player uint8

const (
	NoPlayer Player = iota
	PlayerX
	PlayerO
)

// ParsePlayer accepts "x", "X", "o" or "O". An empty string yields NoPlayer.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return NoPlayer, nil
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return NoPlayer, fmt.Errorf("%w: %q", ErrInvalidPlayer, s)
	}
}

// RandomPlayer picks X or O with equal probability.
func RandomPlayer() Player {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX
	}
	return PlayerO
}

// Other returns the opposing mark.
func (that Player) Other() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return NoPlayer
	}
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "-"
	}
}

// CellState is either Empty or the mark of a player.
type CellState uint8

const Empty CellState = 0

// Marked returns the cell state holding the player's mark.
func Marked(player Player) CellState {
	return CellState(player)
}

// Player returns the mark owner, NoPlayer for an empty cell.
func (that CellState) Player() Player {
	return Player(that)
}

func (that CellState) IsEmpty() bool {
	return that == Empty
}

// Mark and Settled let a plain cell take part in line scoring.
func (that CellState) Mark() CellState {
	return that
}

func (that CellState) Settled() bool {
	return that != Empty
}

func (that CellState) String() string {
	if that == Empty {
		return "."
	}
	return that.Player().String()
}
