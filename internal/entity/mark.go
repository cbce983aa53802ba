package entity

// Mark is the token occupying a cell.
type Mark string

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

func (that Mark) IsEmpty() bool {
	return that == Empty
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Mark) String() string {
	if that == Empty {
		return " "
	}
	return string(that)
}
