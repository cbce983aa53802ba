package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 3

// Snapshot is an immutable copy of the board marks, indexed [row][col].
type Snapshot [BoardSize][BoardSize]Mark

// Board is a fixed 3x3 grid. Row 0 is the top row, column 0 the left-most column.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// InRange reports whether (row, col) addresses a cell on the board.
func InRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Get returns a copy of the cell at (row, col).
func (that *Board) Get(row, col int) (Cell, error) {
	if !InRange(row, col) {
		return Cell{}, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	return that.cells[row][col], nil
}

func (that *Board) Snapshot() Snapshot {
	var snapshot Snapshot
	for row := range that.cells {
		for col := range that.cells[row] {
			snapshot[row][col] = that.cells[row][col].Value()
		}
	}

	return snapshot
}

// Place puts mark into an empty cell. It is the only way to change board content:
// an occupied or off-board target leaves the board untouched and returns false.
func (that *Board) Place(row, col int, mark Mark) bool {
	if !InRange(row, col) {
		return false
	}

	cell := &that.cells[row][col]
	if !cell.Value().IsEmpty() {
		return false
	}

	cell.SetValue(mark)

	return true
}

func (that *Board) IsFull() bool {
	return that.Snapshot().IsFull()
}

func (that *Board) String() string {
	return that.Snapshot().String()
}

func (that Snapshot) IsFull() bool {
	for _, row := range that {
		for _, mark := range row {
			if mark.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// String renders the snapshot as a plain text grid, one line per row
// with "---+---+---" separators.
func (that Snapshot) String() string {
	var sb strings.Builder

	for row := range that {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}
		cells := make([]string, 0, BoardSize)
		for _, mark := range that[row] {
			cells = append(cells, " "+mark.String()+" ")
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")
	}

	return sb.String()
}
