package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the lipgloss styles shared by the level picker and the
// scoreboard.
type Theme struct {
	Title       lipgloss.Style
	Description lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	ItemSolved  lipgloss.Style
	Controls    lipgloss.Style
	Border      lipgloss.Style
	Empty       lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ItemSolved:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Controls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4),
	}
}

// centerText centers text within given width, measuring its printable cells.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
