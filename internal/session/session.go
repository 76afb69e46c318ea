package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tictactoe"
)

const helpText = `commands:
  <board> <cell>  play, each as "rc" digits, e.g. "11 02" or "1 1 0 2"
  board           show the board
  legal           list the boards you may play in
  help            show this help
  quit            leave the game`

type Options struct {
	StartingPlayer entity.Player
	Prompt         string
	HideBoard      bool
}

// Session drives one game from line based input and writes the transcript
// to out.
type Session struct {
	logger *slog.Logger
	id     string
	game   *tictactoe.Game
	out    io.Writer
	opts   Options
}

func New(logger *slog.Logger, out io.Writer, opts Options) *Session {
	id := uuid.NewString()

	that := &Session{
		logger: logger.With("component", "session", "gameID", id),
		id:     id,
		game:   tictactoe.New(opts.StartingPlayer),
		out:    out,
		opts:   opts,
	}

	that.game.Subscribe(tictactoe.Subscriber{
		Status:       that.onStatus,
		BoardDecided: that.onBoardDecided,
		GameDecided:  that.onGameDecided,
	})

	return that
}

func (that *Session) ID() string {
	return that.id
}

func (that *Session) Game() *tictactoe.Game {
	return that.game
}

// Run reads commands until the input ends, the player quits, the game is
// over or ctx is cancelled.
func (that *Session) Run(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		readErr <- scanner.Err()
	}()

	log.Info("game started", "player", that.game.ActivePlayer().String())
	that.printf("new game %s\n", that.id)
	that.game.Start()
	that.showBoard()

	for {
		that.printf("%s", that.opts.Prompt)

		select {
		case <-ctx.Done():
			log.Info("session cancelled")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}

				log.Info("input closed")
				return nil
			}

			if that.Handle(line) {
				return nil
			}
		}
	}
}

// Handle executes one command line and reports whether the session is over.
func (that *Session) Handle(line string) bool {
	log := that.logger.With("method", "Handle")

	command := strings.ToLower(strings.TrimSpace(line))

	switch command {
	case "":
		return false
	case "quit", "exit":
		log.Info("player quit")
		return true
	case "help":
		that.printf("%s\n", helpText)
		return false
	case "board":
		that.printf("%s", Render(that.game))
		return false
	case "legal":
		that.printf("legal boards: %s\n", boardNames(that.game.LegalBoards()))
		return false
	}

	boardAt, cell, err := entity.ParseMove(command)
	if err != nil {
		log.Debug("failed to parse move", "line", line, "error", err)
		that.printf("could not read move %q, type help for usage\n", line)
		return false
	}

	log = log.With("board", boardAt.String(), "cell", cell.String(), "player", that.game.ActivePlayer().String())

	if err = that.game.Play(boardAt, cell); err != nil {
		if errors.Is(err, apperror.ErrInvalidMove) {
			log.Warn("rejected move", "error", err)
			that.printf("%v\n", err)
			return false
		}

		log.Error("failed to play", "error", err)
		that.printf("%v\n", err)
		return false
	}

	log.Debug("move played")
	that.showBoard()

	return that.game.IsFinished()
}

func (that *Session) showBoard() {
	if that.opts.HideBoard {
		return
	}

	that.printf("%s", Render(that.game))

	if legal := that.game.LegalBoards(); len(legal) > 0 {
		that.printf("legal boards: %s\n", boardNames(legal))
	}
}

func (that *Session) onStatus(message string) {
	that.printf("%s\n", message)
}

func (that *Session) onBoardDecided(event tictactoe.BoardDecided) {
	that.logger.Info("board won",
		"board", event.Board.String(),
		"winner", event.Winner.String(),
		"from", event.Line.From.String(),
		"to", event.Line.To.String(),
	)
}

func (that *Session) onGameDecided(event tictactoe.GameDecided) {
	that.logger.Info("game finished",
		"status", event.Outcome.Status.String(),
		"winner", event.Outcome.Winner.String(),
	)
}

func (that *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func boardNames(coords []entity.Coordinate) string {
	if len(coords) == 0 {
		return "none"
	}

	names := make([]string, 0, len(coords))
	for _, coord := range coords {
		names = append(names, fmt.Sprintf("%s %d%d", coord.Name(), coord.Row, coord.Col))
	}

	return strings.Join(names, ", ")
}
