package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	commandNew  = "new"
	commandQuit = "quit"
)

type gameController interface {
	ApplyMove(row, col int) (tictactoe.MoveResult, error)
	ActivePlayer() entity.Player
	Outcome() entity.Outcome
	BoardSnapshot() entity.Snapshot
	Reset()
}

// Session renders a game to a text terminal and forwards typed coordinates to the engine.
// It never touches the board directly.
type Session struct {
	logger *slog.Logger
	game   gameController
	out    io.Writer
}

func NewSession(logger *slog.Logger, game gameController, out io.Writer) *Session {
	return &Session{
		logger: logger.With("component", "console"),
		game:   game,
		out:    out,
	}
}

// Run - reads moves from in until EOF, "quit" or ctx cancellation.
func (that *Session) Run(ctx context.Context, in io.Reader) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- nil
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	if err := that.render(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("session canceled")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}

			quit, err := that.handleLine(line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// Replay - applies moves in order and prints the resulting board.
// It stops at the first rejected move.
func (that *Session) Replay(moves []string) error {
	log := that.logger.With("method", "Replay")

	for i, move := range moves {
		row, col, err := ParseMove(move)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}

		if _, err = that.game.ApplyMove(row, col); err != nil {
			log.Info("move rejected", "move", i+1, "row", row, "col", col, "error", err)
			return fmt.Errorf("move %d: %w", i+1, err)
		}
	}

	return that.render()
}

func (that *Session) handleLine(line string) (bool, error) {
	log := that.logger.With("method", "handleLine")

	switch command := strings.ToLower(strings.TrimSpace(line)); command {
	case "":
		return false, nil
	case commandQuit:
		return true, nil
	case commandNew:
		that.game.Reset()
		log.Debug("new game started")
		return false, that.render()
	}

	row, col, err := ParseMove(line)
	if err != nil {
		log.Info("unreadable input", "input", line, "error", err)
		return false, that.printf("Enter a move as \"row col\" (0-2), %q or %q.\n", commandNew, commandQuit)
	}

	result, err := that.game.ApplyMove(row, col)
	if err != nil {
		log.Info("move rejected", "row", row, "col", col, "error", err)
		return false, that.printf("%s\n", rejectionMessage(err))
	}

	log.Debug("move accepted", "player", result.Player.Name, "mark", result.Mark, "row", row, "col", col, "outcome", result.Outcome.String())

	return false, that.render()
}

func (that *Session) render() error {
	if err := that.printf("%s", that.game.BoardSnapshot()); err != nil {
		return err
	}

	player := that.game.ActivePlayer()
	outcome := that.game.Outcome()

	switch outcome.Status {
	case entity.StatusWin:
		return that.printf("%s (%s) wins! Type %q to play again.\n", player.Name, outcome.Winner, commandNew)
	case entity.StatusDraw:
		return that.printf("It's a draw! Type %q to play again.\n", commandNew)
	default:
		return that.printf("%s's turn (%s)\n", player.Name, player.Mark)
	}
}

func (that *Session) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrOutOfRange):
		return "That cell is off the board, use rows and columns 0-2."
	case errors.Is(err, apperror.ErrInvalidMove):
		return "That cell is already taken."
	case errors.Is(err, apperror.ErrGameOver):
		return fmt.Sprintf("The game is over. Type %q to play again.", commandNew)
	default:
		return err.Error()
	}
}

// ParseMove - parses "row col" or "row,col".
func ParseMove(input string) (int, int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected two coordinates, got %q", apperror.ErrInvalidInput, input)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", apperror.ErrInvalidInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: col %q", apperror.ErrInvalidInput, fields[1])
	}

	return row, col, nil
}
