package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	// boardTop is the screen line of the top board row: title, then column keys.
	boardTop = 2
	// cellWidth is the number of screen columns one board cell takes, "[X] ".
	cellWidth = 4
)

func (m Model) View() string {
	switch m.screen {
	case screenChooseSize:
		return m.renderSizeMenu("")
	case screenConfirmExit:
		if m.game == nil {
			return m.renderSizeMenu(msgConfirmExit)
		}
		return m.renderGame(m.styles.warning.Render(msgConfirmExit))
	default:
		return m.renderGame(m.renderStatus())
	}
}

func (m Model) renderSizeMenu(prompt string) string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Connect Four") + "\n\n")
	b.WriteString("Choose board dimensions\n\n")

	for i, preset := range m.presets {
		line := fmt.Sprintf("%d. %-5s %s", i+1, preset.Name, preset.Label())
		if i == m.selected {
			b.WriteString("> " + m.styles.cursor.Render(line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(m.styles.warning.Render(m.message) + "\n")
	}
	if prompt != "" {
		b.WriteString(m.styles.warning.Render(prompt) + "\n")
	}
	b.WriteString(m.renderHelp(m.keys.Up, m.keys.Down, m.keys.Drop, m.keys.Presets, m.keys.Quit))

	return b.String()
}

func (m Model) renderGame(status string) string {
	state := m.game.State()

	var b strings.Builder

	b.WriteString(m.styles.title.Render("Connect Four "+state.Preset.Name) + "\n")
	b.WriteString(m.renderColumnKeys(state.Board) + "\n")

	for row := 0; row < state.Board.Rows(); row++ {
		for column := 0; column < state.Board.Cols(); column++ {
			b.WriteString(m.renderCell(state, entity.Cell{Row: row, Column: column}))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + status + "\n")
	b.WriteString(m.renderHelp(m.keys.Left, m.keys.Right, m.keys.Drop, m.keys.Columns, m.keys.Reset, m.keys.Quit))

	return b.String()
}

// renderColumnKeys - the key of every column above it; the cursor column is
// highlighted, full columns are dimmed.
func (m Model) renderColumnKeys(board entity.Board) string {
	var b strings.Builder

	for column := 0; column < board.Cols(); column++ {
		label := columnLabel(column)

		switch {
		case column == m.cursor && m.screen != screenRoundOver:
			label = m.styles.cursor.Render(label)
		case board.IsColumnFull(column):
			label = m.styles.dimmed.Render(label)
		}

		b.WriteString(" " + label + "  ")
	}

	return b.String()
}

func (m Model) renderCell(state entity.GameState, cell entity.Cell) string {
	player := state.Board.At(cell)

	mark := m.styles.player(player).Render(player.Mark())
	if state.IsWinningCell(cell) {
		mark = m.styles.winning(player).Render(player.Mark())
	}

	return "[" + mark + "] "
}

func (m Model) renderStatus() string {
	state := m.game.State()

	switch {
	case state.Outcome.IsTerminal():
		return m.styles.result.Render(state.Outcome.String()) + " " + msgPlayAgain
	case m.message != "":
		return m.styles.warning.Render(m.message)
	default:
		return m.styles.player(state.Turn).Render(fmt.Sprintf("%s (%s) to move", state.Turn, state.Turn.Mark()))
	}
}

func (m Model) renderHelp(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}

	return m.styles.help.Render(strings.Join(parts, " • "))
}
