package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/board"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// Game is one match of ultimate tic-tac-toe. It is not safe for concurrent
// use; callers sharing a Game must guard it with a single lock.
type Game struct {
	board *board.MetaBoard

	activePlayer entity.Player
	lastMove     entity.Coordinate
	hasLastMove  bool

	// openBoards holds exactly the sub-boards whose outcome is unresolved.
	openBoards map[entity.Coordinate]struct{}
	outcome    entity.Outcome

	subscribers []Subscriber
}

// New creates a game. A NoPlayer starting player is picked at random.
func New(startingPlayer entity.Player) *Game {
	switch startingPlayer {
	case entity.NoPlayer:
		startingPlayer = entity.RandomPlayer()
	case entity.PlayerX, entity.PlayerO:
	default:
		panic(fmt.Sprintf("tictactoe: invalid starting player %d", startingPlayer))
	}

	openBoards := make(map[entity.Coordinate]struct{}, entity.BoardSize*entity.BoardSize)
	for _, coord := range entity.AllCoordinates() {
		openBoards[coord] = struct{}{}
	}

	return &Game{
		board:        board.NewMetaBoard(),
		activePlayer: startingPlayer,
		openBoards:   openBoards,
	}
}

// Subscribe registers a subscriber for every later notification.
func (that *Game) Subscribe(subscriber Subscriber) {
	that.subscribers = append(that.subscribers, subscriber)
}

// Start announces the player to move first. It does nothing once a move has
// been played.
func (that *Game) Start() {
	if that.hasLastMove {
		return
	}

	that.publish([]notification{
		statusNotification(fmt.Sprintf("%s to play", that.activePlayer)),
		turnChangedNotification(that.activePlayer),
	})
}

func (that *Game) ActivePlayer() entity.Player {
	return that.activePlayer
}

func (that *Game) Outcome() entity.Outcome {
	return that.outcome
}

func (that *Game) IsFinished() bool {
	return that.outcome.IsFinal()
}

// LastMove returns the cell coordinate of the most recent move.
func (that *Game) LastMove() (entity.Coordinate, bool) {
	return that.lastMove, that.hasLastMove
}

// Cell returns the state of a cell inside a sub-board.
func (that *Game) Cell(boardAt, cell entity.Coordinate) entity.CellState {
	mustBeValid("board", boardAt)
	mustBeValid("cell", cell)

	return that.board.SubBoard(boardAt).Cell(cell)
}

// BoardMark returns the board-level mark of a sub-board, Empty unless won.
func (that *Game) BoardMark(boardAt entity.Coordinate) entity.CellState {
	mustBeValid("board", boardAt)

	return that.board.Cell(boardAt).Mark()
}

func (that *Game) BoardOutcome(boardAt entity.Coordinate) entity.Outcome {
	mustBeValid("board", boardAt)

	return that.board.SubBoard(boardAt).Outcome()
}

// OpenBoards returns the undecided sub-boards in row-major order.
func (that *Game) OpenBoards() []entity.Coordinate {
	open := make([]entity.Coordinate, 0, len(that.openBoards))
	for _, coord := range entity.AllCoordinates() {
		if _, ok := that.openBoards[coord]; ok {
			open = append(open, coord)
		}
	}

	return open
}

// LegalBoards returns the sub-boards the active player may play in. The
// board matching the last move's cell is forced while it is unresolved;
// otherwise every open board is allowed. A finished game has none.
func (that *Game) LegalBoards() []entity.Coordinate {
	if that.IsFinished() {
		return nil
	}

	if that.hasLastMove && that.board.SubBoard(that.lastMove).Outcome().IsUnresolved() {
		return []entity.Coordinate{that.lastMove}
	}

	return that.OpenBoards()
}

func (that *Game) isLegalBoard(boardAt entity.Coordinate) bool {
	for _, coord := range that.LegalBoards() {
		if coord == boardAt {
			return true
		}
	}

	return false
}

// Play places the active player's mark on cell of the sub-board at boardAt.
// An illegal move returns an error wrapping apperror.ErrInvalidMove and
// leaves the game untouched. Out of range coordinates panic.
func (that *Game) Play(boardAt, cell entity.Coordinate) error {
	mustBeValid("board", boardAt)
	mustBeValid("cell", cell)

	if err := that.validateMove(boardAt, cell); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	player := that.activePlayer
	metaCell := that.board.Cell(boardAt)
	subBoard := metaCell.Board()

	subBoard.Set(cell, entity.Marked(player))

	notifications := []notification{
		statusNotification(fmt.Sprintf("%s played in the %s square of the %s board", player, cell.Name(), boardAt.Name())),
	}

	switch local := subBoard.Outcome(); local.Status {
	case entity.StatusDecided:
		metaCell.SetMark(local.Winner)
		delete(that.openBoards, boardAt)

		notifications = append(notifications,
			statusNotification(fmt.Sprintf("%s won the %s board with a line from %s to %s",
				local.Winner, boardAt.Name(), local.Line.From.Name(), local.Line.To.Name())),
			boardDecidedNotification(BoardDecided{Board: boardAt, Winner: local.Winner, Line: local.Line}),
		)
	case entity.StatusDraw:
		delete(that.openBoards, boardAt)

		notifications = append(notifications,
			statusNotification(fmt.Sprintf("the %s board is a draw", boardAt.Name())),
		)
	case entity.StatusUnresolved:
	}

	that.outcome = that.board.Outcome()

	switch that.outcome.Status {
	case entity.StatusDecided:
		notifications = append(notifications,
			statusNotification(fmt.Sprintf("%s won the game overall with a line from %s to %s",
				that.outcome.Winner, that.outcome.Line.From.Name(), that.outcome.Line.To.Name())),
			gameDecidedNotification(GameDecided{Outcome: that.outcome}),
		)
	case entity.StatusDraw:
		notifications = append(notifications,
			statusNotification("the game is a draw"),
			gameDecidedNotification(GameDecided{Outcome: that.outcome}),
		)
	case entity.StatusUnresolved:
	}

	that.lastMove, that.hasLastMove = cell, true

	if !that.IsFinished() {
		that.activePlayer = player.Other()

		notifications = append(notifications,
			statusNotification(fmt.Sprintf("%s to play", that.activePlayer)),
			turnChangedNotification(that.activePlayer),
		)
	}

	that.publish(notifications)

	return nil
}

// validateMove - checks if the move is legal without touching any state.
func (that *Game) validateMove(boardAt, cell entity.Coordinate) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	subBoard := that.board.SubBoard(boardAt)

	if subBoard.Outcome().IsFinal() {
		return fmt.Errorf("%w: %s board", apperror.ErrBoardDecided, boardAt.Name())
	}

	if !subBoard.Cell(cell).IsEmpty() {
		return fmt.Errorf("%w: %s square of the %s board", apperror.ErrCellOccupied, cell.Name(), boardAt.Name())
	}

	if !that.isLegalBoard(boardAt) {
		return fmt.Errorf("%w: %s board", apperror.ErrBoardNotAvailable, boardAt.Name())
	}

	return nil
}

func (that *Game) publish(notifications []notification) {
	for _, notify := range notifications {
		for _, subscriber := range that.subscribers {
			notify(subscriber)
		}
	}
}

func mustBeValid(name string, coord entity.Coordinate) {
	if !coord.Valid() {
		panic(fmt.Sprintf("tictactoe: %s coordinate %s out of range", name, coord))
	}
}
