package suite

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/stretchr/testify/require"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Logs holds everything written through Logger as JSON lines.
	Logs *bytes.Buffer
}

type dropper interface {
	DropDisc(column int) (entity.Move, error)
}

func New(t *testing.T) *Suite {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &Suite{
		T:      t,
		Logger: logger,
		Logs:   logs,
	}
}

// Drop - plays the columns in order and fails the test on the first rejected drop.
func (that *Suite) Drop(game dropper, columns ...int) []entity.Move {
	that.Helper()

	moves := make([]entity.Move, 0, len(columns))
	for i, column := range columns {
		move, err := game.DropDisc(column)
		require.NoErrorf(that, err, "drop #%d into column %d", i+1, column)

		moves = append(moves, move)
	}

	return moves
}

// DrawSequence - returns a legal alternating drop order that fills a rows x cols
// board without ever forming four-in-a-row. Columns are paired into stripes
// (AABBAABB...) and the stripes swap owners on every row, so no line is longer
// than two. Each row takes an equal number of discs from both players, which
// needs cols to be a multiple of four.
func DrawSequence(rows, cols int) []int {
	if cols%4 != 0 {
		panic("suite: DrawSequence needs a column count divisible by four")
	}

	sequence := make([]int, 0, rows*cols)
	for height := 0; height < rows; height++ {
		var first, second []int
		for col := 0; col < cols; col++ {
			if (col/2+height)%2 == 0 {
				first = append(first, col)
			} else {
				second = append(second, col)
			}
		}

		for i := range first {
			sequence = append(sequence, first[i], second[i])
		}
	}

	return sequence
}

// AntiDiagonalWin - on a board with at least 7 columns, PlayerOne finishes a line
// rising from the bottom of column 0 to column 3 with the last drop. On a 6-row
// board that is (5,0) (4,1) (3,2) (2,3).
func AntiDiagonalWin() []int {
	return []int{0, 1, 1, 2, 3, 2, 2, 3, 6, 3, 3}
}
