package entity

// Player marks the owner of a cell and whose turn it is. Empty is only ever a cell state.
type Player uint8

const (
	Empty Player = iota
	PlayerOne
	PlayerTwo
)

// Opponent - returns the other side. Empty has no opponent.
func (that Player) Opponent() Player {
	switch that {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

func (that Player) String() string {
	switch that {
	case PlayerOne:
		return "Player 1"
	case PlayerTwo:
		return "Player 2"
	default:
		return ""
	}
}

// Mark - returns the disc drawn for the player.
func (that Player) Mark() string {
	switch that {
	case PlayerOne:
		return "X"
	case PlayerTwo:
		return "O"
	default:
		return " "
	}
}

func (that Player) IsEmpty() bool {
	return that == Empty
}
