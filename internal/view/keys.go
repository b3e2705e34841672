package view

import "github.com/charmbracelet/bubbles/key"

// columnKeys follow the number row, one key per column of the widest board.
var columnKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="}

type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Drop    key.Binding
	Columns key.Binding
	Presets key.Binding
	Reset   key.Binding
	Quit    key.Binding
	Yes     key.Binding
	No      key.Binding
}

var Keys = KeyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Drop: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "drop"),
	),
	Columns: key.NewBinding(
		key.WithKeys(columnKeys...),
		key.WithHelp("1-9 0 - =", "drop in column"),
	),
	Presets: key.NewBinding(
		key.WithKeys("1", "2", "3"),
		key.WithHelp("1-3", "choose size"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "new round"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n", "no"),
	),
}

// columnForKey - maps a column key to its zero-based column, or -1.
func columnForKey(k string) int {
	for i, columnKey := range columnKeys {
		if columnKey == k {
			return i
		}
	}

	return -1
}

func columnLabel(column int) string {
	if column < len(columnKeys) {
		return columnKeys[column]
	}

	return "?"
}
