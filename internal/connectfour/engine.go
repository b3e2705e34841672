package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	MinRows = lineLength
	MinCols = lineLength
)

// Engine owns one board and the turn. It is not safe for concurrent use.
type Engine struct {
	board entity.Board
	turn  entity.Player
}

// New - creates an empty rows x cols game with PlayerOne to move.
func New(rows, cols int) (*Engine, error) {
	if rows < MinRows || cols < MinCols {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", apperror.ErrInvalidDimensions, rows, cols, MinRows, MinCols)
	}

	return &Engine{
		board: entity.NewBoard(rows, cols),
		turn:  entity.PlayerOne,
	}, nil
}

func NewFromPreset(preset entity.Preset) (*Engine, error) {
	engine, err := New(preset.Rows, preset.Cols)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", preset.Name, err)
	}

	return engine, nil
}

// DropDisc - drops the current player's disc into the column. The disc lands in
// the lowest empty cell. Rejected drops leave the game untouched.
func (that *Engine) DropDisc(column int) (entity.Move, error) {
	if that.Outcome().IsTerminal() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	if err := that.validateColumn(column); err != nil {
		return entity.Move{}, fmt.Errorf("invalid drop: %w", err)
	}

	row := that.lowestEmptyRow(column)
	if row < 0 {
		return entity.Move{}, fmt.Errorf("invalid drop: %w: column %d", apperror.ErrColumnFull, column)
	}

	player := that.turn
	that.board[row][column] = player
	that.updateTurn()

	return entity.Move{
		Player: player,
		Cell:   entity.Cell{Row: row, Column: column},
	}, nil
}

// Outcome - win is checked before draw, so a full board with a line is a win.
func (that *Engine) Outcome() entity.Outcome {
	if winner, _ := findLine(that.board); winner != entity.Empty {
		return entity.Win(winner)
	}

	if that.board.IsFull() {
		return entity.Draw()
	}

	return entity.InProgress()
}

// WinningLine - returns the cells of the first four-in-a-row, or nil.
func (that *Engine) WinningLine() []entity.Cell {
	_, line := findLine(that.board)
	return line
}

func (that *Engine) Reset() {
	that.board.Clear()
	that.turn = entity.PlayerOne
}

// Board - returns a copy; changing it does not affect the game.
func (that *Engine) Board() entity.Board {
	return that.board.Clone()
}

func (that *Engine) CurrentPlayer() entity.Player {
	return that.turn
}

func (that *Engine) Rows() int {
	return that.board.Rows()
}

func (that *Engine) Cols() int {
	return that.board.Cols()
}

func (that *Engine) validateColumn(column int) error {
	if column < 0 || column >= that.Cols() {
		return fmt.Errorf("%w: column %d, board has %d", apperror.ErrOutOfRange, column, that.Cols())
	}

	return nil
}

func (that *Engine) lowestEmptyRow(column int) int {
	for row := that.Rows() - 1; row >= 0; row-- {
		if that.board[row][column] == entity.Empty {
			return row
		}
	}

	return -1
}

// updateTurn - the turn only passes on while the game is in progress.
func (that *Engine) updateTurn() {
	if that.Outcome().IsTerminal() {
		return
	}

	next := that.turn.Opponent()
	if next == entity.Empty {
		panic(fmt.Sprintf("connectfour: turn out of sync: %d", that.turn))
	}

	that.turn = next
}
