package view

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Game is the part of the game manager the view drives.
type Game interface {
	MakeTurn(column int) (entity.TurnResult, error)
	Restart()
	State() entity.GameState
}

// GameStarter creates the game once the board size is known.
type GameStarter func(preset entity.Preset) (Game, error)

type screen int

const (
	screenChooseSize screen = iota
	screenPlaying
	screenRoundOver
	screenConfirmExit
)

const (
	msgColumnFull  = "Column is full. Try another."
	msgPlayAgain   = "Press enter to play again."
	msgConfirmExit = "Are you sure you want to exit? (y/n)"
)

// Model is the bubbletea model for one terminal session. It never touches the
// board directly; every change goes through Game.
type Model struct {
	logger *slog.Logger
	keys   KeyMap
	styles styles

	start    GameStarter
	presets  []entity.Preset
	selected int

	game     Game
	cursor   int
	screen   screen
	previous screen
	message  string
}

func New(logger *slog.Logger, start GameStarter, theme Theme) Model {
	return Model{
		logger:  logger.With("component", "view"),
		keys:    Keys,
		styles:  newStyles(theme),
		start:   start,
		presets: entity.Presets,
		screen:  screenChooseSize,
	}
}

// WithPreset - starts the game right away and skips the size menu.
func (m Model) WithPreset(preset entity.Preset) (Model, error) {
	if err := m.startGame(preset); err != nil {
		return m, err
	}

	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.screen == screenConfirmExit {
			return m.updateConfirmExit(msg)
		}

		if key.Matches(msg, m.keys.Quit) {
			m.previous = m.screen
			m.screen = screenConfirmExit
			return m, nil
		}

		switch m.screen {
		case screenChooseSize:
			return m.updateChooseSize(msg)
		case screenPlaying:
			return m.updatePlaying(msg)
		case screenRoundOver:
			return m.updateRoundOver(msg)
		}

	case tea.MouseMsg:
		if m.screen == screenPlaying {
			return m.updateMouse(msg)
		}
	}

	return m, nil
}

func (m Model) updateChooseSize(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.selected = (m.selected - 1 + len(m.presets)) % len(m.presets)

	case key.Matches(msg, m.keys.Down):
		m.selected = (m.selected + 1) % len(m.presets)

	case key.Matches(msg, m.keys.Presets):
		m.selected = int(msg.String()[0] - '1')
		m.chooseSelected()

	case key.Matches(msg, m.keys.Drop):
		m.chooseSelected()
	}

	return m, nil
}

func (m *Model) chooseSelected() {
	if m.selected < 0 || m.selected >= len(m.presets) {
		return
	}

	if err := m.startGame(m.presets[m.selected]); err != nil {
		m.logger.Error("could not start game", "error", err)
		m.message = err.Error()
	}
}

func (m *Model) startGame(preset entity.Preset) error {
	game, err := m.start(preset)
	if err != nil {
		return fmt.Errorf("failed start game: %w", err)
	}

	m.logger.Info("game started", "preset", preset.Name)

	m.game = game
	m.cursor = preset.Cols / 2
	m.screen = screenPlaying
	m.message = ""

	return nil
}

func (m Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.game.State().Board.Cols()

	switch {
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < cols-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Drop):
		m.drop(m.cursor)

	case key.Matches(msg, m.keys.Columns):
		m.drop(columnForKey(msg.String()))

	case key.Matches(msg, m.keys.Reset):
		m.restart()
	}

	return m, nil
}

func (m Model) updateRoundOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Drop, m.keys.Reset) {
		m.restart()
	}

	return m, nil
}

func (m Model) updateConfirmExit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.logger.Info("exit confirmed")
		return m, tea.Quit

	case key.Matches(msg, m.keys.No):
		m.screen = m.previous
	}

	return m, nil
}

// updateMouse - a left click anywhere on the board drops into that column.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.MouseLeft {
		return m, nil
	}

	board := m.game.State().Board
	row, column := msg.Y-boardTop, msg.X/cellWidth
	if row < 0 || row >= board.Rows() || column < 0 || column >= board.Cols() {
		return m, nil
	}

	m.drop(column)

	return m, nil
}

func (m *Model) drop(column int) {
	result, err := m.game.MakeTurn(column)

	switch {
	case err == nil:
		m.message = ""
		m.cursor = column
		if result.Outcome.IsTerminal() {
			m.screen = screenRoundOver
		}

	case errors.Is(err, apperror.ErrColumnFull):
		m.message = msgColumnFull

	case errors.Is(err, apperror.ErrOutOfRange):
		m.message = fmt.Sprintf("Column %d does not exist.", column+1)

	case errors.Is(err, apperror.ErrGameFinished):
		m.screen = screenRoundOver

	default:
		m.logger.Error("unexpected drop error", "column", column, "error", err)
		m.message = err.Error()
	}
}

func (m *Model) restart() {
	m.game.Restart()
	m.message = ""
	m.screen = screenPlaying
}
