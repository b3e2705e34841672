package entity

const (
	StatusInProgress = "in_progress"
	StatusWin        = "win"
	StatusDraw       = "draw"
)

// Outcome is derived from the board on every query and never stored.
type Outcome struct {
	Status string `json:"status"`
	Winner Player `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Win(player Player) Outcome {
	return Outcome{Status: StatusWin, Winner: player}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsWin() bool {
	return that.Status == StatusWin
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

// IsTerminal - no further moves are accepted until reset.
func (that Outcome) IsTerminal() bool {
	return that.IsWin() || that.IsDraw()
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return that.Winner.String() + " wins!"
	case StatusDraw:
		return "It's a draw!"
	default:
		return "in progress"
	}
}

// Move is an accepted disc drop.
type Move struct {
	Player Player `json:"player"`
	Cell   Cell   `json:"cell"`
}

type TurnResult struct {
	Move    Move    `json:"move"`
	Outcome Outcome `json:"outcome"`
}

// GameState is a read-only snapshot for rendering.
type GameState struct {
	Preset      Preset  `json:"preset"`
	Board       Board   `json:"board"`
	Turn        Player  `json:"player_turn"`
	Outcome     Outcome `json:"outcome"`
	WinningLine []Cell  `json:"winning_line,omitempty"`
}

// IsWinningCell - reports whether the cell belongs to the highlighted line.
func (that GameState) IsWinningCell(cell Cell) bool {
	for _, c := range that.WinningLine {
		if c == cell {
			return true
		}
	}

	return false
}
