package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type position struct {
	row, col int
}

// winLines are checked in order: rows top to bottom, columns left to right,
// then the \ diagonal and the / diagonal.
var winLines = [8][3]position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// MoveResult describes an accepted move and the state it left the game in.
type MoveResult struct {
	Row     int
	Col     int
	Mark    entity.Mark
	Player  entity.Player
	Outcome entity.Outcome
}

// GameController owns the board and both players. It is not safe for concurrent use.
type GameController struct {
	board   *entity.Board
	players [2]entity.Player
	active  int
	outcome entity.Outcome
	moves   int
}

func NewGameController(playerOneName, playerTwoName string) *GameController {
	if playerOneName == "" {
		playerOneName = entity.DefaultPlayerOneName
	}
	if playerTwoName == "" {
		playerTwoName = entity.DefaultPlayerTwoName
	}

	return &GameController{
		board: entity.NewBoard(),
		players: [2]entity.Player{
			{Name: playerOneName, Mark: entity.PlayerX},
			{Name: playerTwoName, Mark: entity.PlayerO},
		},
		outcome: entity.InProgress(),
	}
}

// ApplyMove places the active player's mark at (row, col).
// A rejected move never changes the board, the turn or the outcome.
func (that *GameController) ApplyMove(row, col int) (MoveResult, error) {
	if that.outcome.IsFinished() {
		return MoveResult{}, fmt.Errorf("%w: %s", apperror.ErrGameOver, that.outcome)
	}

	if _, err := that.board.Get(row, col); err != nil {
		return MoveResult{}, fmt.Errorf("invalid move: %w", err)
	}

	player := that.ActivePlayer()
	if !that.board.Place(row, col, player.Mark) {
		return MoveResult{}, fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidMove, row, col)
	}
	that.moves++

	that.outcome = evaluate(that.board.Snapshot())
	if that.outcome.IsInProgress() {
		that.switchPlayer()
	}

	return MoveResult{
		Row:     row,
		Col:     col,
		Mark:    player.Mark,
		Player:  player,
		Outcome: that.outcome,
	}, nil
}

// ActivePlayer returns the player expected to move next, or the player who
// made the final move once the game is over.
func (that *GameController) ActivePlayer() entity.Player {
	return that.players[that.active]
}

func (that *GameController) Players() [2]entity.Player {
	return that.players
}

func (that *GameController) Outcome() entity.Outcome {
	return that.outcome
}

func (that *GameController) BoardSnapshot() entity.Snapshot {
	return that.board.Snapshot()
}

func (that *GameController) MoveCount() int {
	return that.moves
}

// Reset starts a new round with the same players. Player one moves first.
func (that *GameController) Reset() {
	that.board = entity.NewBoard()
	that.active = 0
	that.outcome = entity.InProgress()
	that.moves = 0
}

func (that *GameController) switchPlayer() {
	that.active = 1 - that.active
}

func evaluate(snapshot entity.Snapshot) entity.Outcome {
	if winner := findWinner(snapshot); winner != entity.Empty {
		return entity.Win(winner)
	}

	if snapshot.IsFull() {
		return entity.Draw()
	}

	return entity.InProgress()
}

func findWinner(snapshot entity.Snapshot) entity.Mark {
	for _, line := range winLines {
		a := snapshot[line[0].row][line[0].col]
		b := snapshot[line[1].row][line[1].col]
		c := snapshot[line[2].row][line[2].col]
		if a != entity.Empty && a == b && b == c {
			return a
		}
	}

	return entity.Empty
}
