package entity

// Cell addresses a board position. Row 0 is the top of the board.
type Cell struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Board is a rows x cols grid of cell owners.
type Board [][]Player

func NewBoard(rows, cols int) Board {
	board := make(Board, rows)
	for i := range board {
		board[i] = make([]Player, cols)
	}

	return board
}

func (that Board) Rows() int {
	return len(that)
}

func (that Board) Cols() int {
	if len(that) == 0 {
		return 0
	}

	return len(that[0])
}

// At - returns the owner of the cell, or Empty when the cell is off the board.
func (that Board) At(cell Cell) Player {
	if cell.Row < 0 || cell.Row >= that.Rows() || cell.Column < 0 || cell.Column >= that.Cols() {
		return Empty
	}

	return that[cell.Row][cell.Column]
}

// Clone - creates a deep copy of the board.
func (that Board) Clone() Board {
	board := make(Board, len(that))
	for i := range that {
		board[i] = make([]Player, len(that[i]))
		copy(board[i], that[i])
	}

	return board
}

// Clear - sets every cell back to Empty.
func (that Board) Clear() {
	for i := range that {
		for j := range that[i] {
			that[i][j] = Empty
		}
	}
}

// IsColumnFull - the top cell of the column is taken, so nothing more fits.
func (that Board) IsColumnFull(column int) bool {
	return that.At(Cell{Row: 0, Column: column}) != Empty
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}
