package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Theme carries the configurable disc colours.
type Theme struct {
	PlayerOneColor string
	PlayerTwoColor string
}

type styles struct {
	title     lipgloss.Style
	playerOne lipgloss.Style
	playerTwo lipgloss.Style
	empty     lipgloss.Style
	cursor    lipgloss.Style
	dimmed    lipgloss.Style
	warning   lipgloss.Style
	result    lipgloss.Style
	help      lipgloss.Style
}

func newStyles(theme Theme) styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		playerOne: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.PlayerOneColor)).Bold(true),
		playerTwo: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.PlayerTwoColor)).Bold(true),
		empty:     lipgloss.NewStyle(),
		cursor:    lipgloss.NewStyle().Reverse(true).Bold(true),
		dimmed:    lipgloss.NewStyle().Faint(true),
		warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		result:    lipgloss.NewStyle().Foreground(lipgloss.Color("#00D75F")).Bold(true),
		help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
	}
}

func (that styles) player(player entity.Player) lipgloss.Style {
	switch player {
	case entity.PlayerOne:
		return that.playerOne
	case entity.PlayerTwo:
		return that.playerTwo
	default:
		return that.empty
	}
}

func (that styles) winning(player entity.Player) lipgloss.Style {
	return that.player(player).Copy().Reverse(true)
}
