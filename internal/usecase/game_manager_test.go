package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/testing/suite"
)

var errBoardCorrupted = errors.New("board corrupted")

type mockEngine struct {
	mock.Mock
}

func (that *mockEngine) DropDisc(column int) (entity.Move, error) {
	args := that.Called(column)
	return args.Get(0).(entity.Move), args.Error(1)
}

func (that *mockEngine) Outcome() entity.Outcome {
	return that.Called().Get(0).(entity.Outcome)
}

func (that *mockEngine) WinningLine() []entity.Cell {
	line, _ := that.Called().Get(0).([]entity.Cell)
	return line
}

func (that *mockEngine) Reset() {
	that.Called()
}

func (that *mockEngine) Board() entity.Board {
	return that.Called().Get(0).(entity.Board)
}

func (that *mockEngine) CurrentPlayer() entity.Player {
	return that.Called().Get(0).(entity.Player)
}

func newManager(t *testing.T, preset entity.Preset) (*suite.Suite, *GameManager) {
	t.Helper()

	st := suite.New(t)
	engine, err := connectfour.NewFromPreset(preset)
	require.NoError(t, err)

	return st, NewGameManager(st.Logger, preset, engine)
}

func TestGameManager_MakeTurn(t *testing.T) {
	t.Run("Accepted turn returns the move and outcome", func(t *testing.T) {
		// Given: a fresh 5x8 game
		_, manager := newManager(t, entity.Presets[0])

		// When: PlayerOne drops into column 4
		result, err := manager.MakeTurn(4)

		// Then: the disc lands on the bottom row and the game continues
		require.NoError(t, err)
		assert.Equal(t, entity.TurnResult{
			Move:    entity.Move{Player: entity.PlayerOne, Cell: entity.Cell{Row: 4, Column: 4}},
			Outcome: entity.InProgress(),
		}, result)
		assert.Equal(t, entity.PlayerTwo, manager.State().Turn)
	})

	t.Run("Full column is rejected and logged", func(t *testing.T) {
		// Given: a 5x8 game with column 0 filled
		st, manager := newManager(t, entity.Presets[0])
		for i := 0; i < 5; i++ {
			_, err := manager.MakeTurn(0)
			require.NoError(t, err)
		}

		// When: another disc goes into column 0
		_, err := manager.MakeTurn(0)

		// Then: ErrColumnFull is returned and the rejection is logged
		require.ErrorIs(t, err, apperror.ErrColumnFull)
		assert.Contains(t, st.Logs.String(), `"msg":"turn rejected"`)
		assert.Contains(t, st.Logs.String(), `"player":"Player 2"`)
	})

	t.Run("Column out of range is rejected", func(t *testing.T) {
		// Given: a 6x10 game
		_, manager := newManager(t, entity.Presets[1])

		// When: a disc goes into column 10
		_, err := manager.MakeTurn(10)

		// Then: ErrOutOfRange is returned and the board is untouched
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
		assert.Equal(t, entity.NewBoard(6, 10), manager.State().Board)
	})

	t.Run("Winning turn reports the winner and logs it", func(t *testing.T) {
		// Given: a 7x12 game one move from an anti-diagonal win
		st, manager := newManager(t, entity.Presets[2])
		sequence := suite.AntiDiagonalWin()
		for _, column := range sequence[:len(sequence)-1] {
			_, err := manager.MakeTurn(column)
			require.NoError(t, err)
		}

		// When: PlayerOne makes the last move
		result, err := manager.MakeTurn(sequence[len(sequence)-1])

		// Then: the win is reported with the winning line in the state
		require.NoError(t, err)
		assert.Equal(t, entity.Win(entity.PlayerOne), result.Outcome)
		assert.Len(t, manager.State().WinningLine, 4)
		assert.Contains(t, st.Logs.String(), `"msg":"game won"`)

		// Then: no more turns are accepted
		_, err = manager.MakeTurn(5)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Drawn game is logged", func(t *testing.T) {
		// Given: a 5x8 game
		st, manager := newManager(t, entity.Presets[0])

		// When: the board is filled without a line
		var result entity.TurnResult
		for _, column := range suite.DrawSequence(5, 8) {
			var err error
			result, err = manager.MakeTurn(column)
			require.NoError(t, err)
		}

		// Then: the last turn is a draw
		assert.Equal(t, entity.Draw(), result.Outcome)
		assert.Contains(t, st.Logs.String(), `"msg":"game drawn"`)
	})

	t.Run("Unexpected engine error is wrapped", func(t *testing.T) {
		// Given: an engine that fails for an unknown reason
		st := suite.New(t)
		engine := &mockEngine{}
		engine.On("CurrentPlayer").Return(entity.PlayerOne).Once()
		engine.On("DropDisc", 2).Return(entity.Move{}, fmt.Errorf("invalid drop: %w", errBoardCorrupted)).Once()
		manager := NewGameManager(st.Logger, entity.Presets[0], engine)

		// When: a turn is made
		_, err := manager.MakeTurn(2)

		// Then: the error is wrapped and logged as an error
		require.ErrorIs(t, err, errBoardCorrupted)
		assert.Contains(t, err.Error(), "failed make turn")
		assert.Contains(t, st.Logs.String(), `"level":"ERROR"`)
		engine.AssertExpectations(t)
	})
}

func TestGameManager_Restart(t *testing.T) {
	t.Run("Restart clears the game", func(t *testing.T) {
		// Given: a game PlayerOne has won
		st, manager := newManager(t, entity.Presets[1])
		for _, column := range suite.AntiDiagonalWin() {
			_, err := manager.MakeTurn(column)
			require.NoError(t, err)
		}
		require.True(t, manager.State().Outcome.IsWin())

		// When: the game is restarted
		manager.Restart()

		// Then: the state is a fresh game
		assert.Equal(t, entity.GameState{
			Preset:  entity.Presets[1],
			Board:   entity.NewBoard(6, 10),
			Turn:    entity.PlayerOne,
			Outcome: entity.InProgress(),
		}, manager.State())
		assert.Contains(t, st.Logs.String(), `"msg":"game restarted"`)
	})

	t.Run("Restart delegates to the engine", func(t *testing.T) {
		st := suite.New(t)
		engine := &mockEngine{}
		engine.On("Reset").Return().Once()
		manager := NewGameManager(st.Logger, entity.Presets[0], engine)

		manager.Restart()

		engine.AssertExpectations(t)
		assert.Equal(t, entity.Presets[0], manager.Preset())
	})
}
