package tictactoe

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"

// BoardDecided is published when a move wins a sub-board.
type BoardDecided struct {
	Board  entity.Coordinate
	Winner entity.Player
	Line   entity.Line
}

// GameDecided is published when the meta-board is won or drawn. Winner is
// NoPlayer for a draw.
type GameDecided struct {
	Outcome entity.Outcome
}

// Subscriber receives game notifications. Nil funcs are skipped.
type Subscriber struct {
	Status       func(message string)
	BoardDecided func(event BoardDecided)
	GameDecided  func(event GameDecided)
	TurnChanged  func(player entity.Player)
}

type notification func(subscriber Subscriber)

func statusNotification(message string) notification {
	return func(subscriber Subscriber) {
		if subscriber.Status != nil {
			subscriber.Status(message)
		}
	}
}

func boardDecidedNotification(event BoardDecided) notification {
	return func(subscriber Subscriber) {
		if subscriber.BoardDecided != nil {
			subscriber.BoardDecided(event)
		}
	}
}

func gameDecidedNotification(event GameDecided) notification {
	return func(subscriber Subscriber) {
		if subscriber.GameDecided != nil {
			subscriber.GameDecided(event)
		}
	}
}

func turnChangedNotification(player entity.Player) notification {
	return func(subscriber Subscriber) {
		if subscriber.TurnChanged != nil {
			subscriber.TurnChanged(player)
		}
	}
}
