package connectfour

import "github.com/rocketscienceinc/connectfour/internal/entity"

const lineLength = 4

type direction struct {
	dRow, dCol int
}

// Scan order: horizontal, vertical, diagonal down-right, anti-diagonal (up-right).
var directions = []direction{
	{dRow: 0, dCol: 1},
	{dRow: 1, dCol: 0},
	{dRow: 1, dCol: 1},
	{dRow: -1, dCol: 1},
}

// findLine - scans the whole board and returns the owner and cells of the first
// four-in-a-row. Returns Empty and nil when there is none.
func findLine(board entity.Board) (entity.Player, []entity.Cell) {
	for _, d := range directions {
		for row := 0; row < board.Rows(); row++ {
			for col := 0; col < board.Cols(); col++ {
				if player := lineFrom(board, row, col, d); player != entity.Empty {
					return player, lineCells(row, col, d)
				}
			}
		}
	}

	return entity.Empty, nil
}

// lineFrom - returns the owner if lineLength equal non-empty cells start at
// (row, col) and run in direction d.
func lineFrom(board entity.Board, row, col int, d direction) entity.Player {
	endRow, endCol := row+d.dRow*(lineLength-1), col+d.dCol*(lineLength-1)
	if endRow < 0 || endRow >= board.Rows() || endCol < 0 || endCol >= board.Cols() {
		return entity.Empty
	}

	player := board[row][col]
	if player == entity.Empty {
		return entity.Empty
	}

	for k := 1; k < lineLength; k++ {
		if board[row+d.dRow*k][col+d.dCol*k] != player {
			return entity.Empty
		}
	}

	return player
}

func lineCells(row, col int, d direction) []entity.Cell {
	cells := make([]entity.Cell, lineLength)
	for k := range cells {
		cells[k] = entity.Cell{Row: row + d.dRow*k, Column: col + d.dCol*k}
	}

	return cells
}
