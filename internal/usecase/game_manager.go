package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type gameEngine interface {
	DropDisc(column int) (entity.Move, error)
	Outcome() entity.Outcome
	WinningLine() []entity.Cell
	Reset()
	Board() entity.Board
	CurrentPlayer() entity.Player
}

// GameManager runs one local game for the view and logs what happens to it.
type GameManager struct {
	logger *slog.Logger
	preset entity.Preset
	engine gameEngine
}

func NewGameManager(logger *slog.Logger, preset entity.Preset, engine gameEngine) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game-manager", "preset", preset.Name),

		preset: preset,
		engine: engine,
	}
}

// MakeTurn - drops a disc for the current player and reports the resulting outcome.
func (that *GameManager) MakeTurn(column int) (entity.TurnResult, error) {
	log := that.logger.With("method", "MakeTurn", "column", column)

	player := that.engine.CurrentPlayer()

	move, err := that.engine.DropDisc(column)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrColumnFull), errors.Is(err, apperror.ErrOutOfRange):
			log.Info("turn rejected", "player", player.String(), "reason", err)
		case errors.Is(err, apperror.ErrGameFinished):
			log.Debug("turn after game end", "outcome", that.engine.Outcome().Status)
		default:
			log.Error("unexpected turn error", "error", err)
		}

		return entity.TurnResult{}, fmt.Errorf("failed make turn: %w", err)
	}

	outcome := that.engine.Outcome()
	log.Debug("turn made", "player", move.Player.String(), "row", move.Cell.Row)

	switch outcome.Status {
	case entity.StatusWin:
		log.Info("game won", "winner", outcome.Winner.String())
	case entity.StatusDraw:
		log.Info("game drawn")
	}

	return entity.TurnResult{Move: move, Outcome: outcome}, nil
}

// Restart - clears the board for a new round with PlayerOne to move.
func (that *GameManager) Restart() {
	that.engine.Reset()

	that.logger.Info("game restarted", "method", "Restart")
}

func (that *GameManager) State() entity.GameState {
	return entity.GameState{
		Preset:      that.preset,
		Board:       that.engine.Board(),
		Turn:        that.engine.CurrentPlayer(),
		Outcome:     that.engine.Outcome(),
		WinningLine: that.engine.WinningLine(),
	}
}

func (that *GameManager) Preset() entity.Preset {
	return that.preset
}
