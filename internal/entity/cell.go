package entity

// Cell represents one square on the board.
// Occupancy checks belong to the Board, the cell only holds a value.
type Cell struct {
	value Mark
}

func (that *Cell) Value() Mark {
	return that.value
}

func (that *Cell) SetValue(mark Mark) {
	that.value = mark
}
