package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the level picker and results board.
// Symbol themes for the tiles themselves live in the engine.
type Theme struct {
	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemCleared lipgloss.Style // Level with at least one win
	MenuDescription lipgloss.Style

	// Results board styles
	BoardTitle    lipgloss.Style
	BoardBorder   lipgloss.Color
	BoardSelected lipgloss.Style
	BoardEmpty    lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style

	// Footer
	Controls lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuItemCleared: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		BoardTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		BoardBorder:   lipgloss.Color("240"),
		BoardSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		BoardEmpty:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
		TabActive:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1),
		TabInactive:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),

		Controls: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals with poor color support.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Reverse(true)
	theme.MenuItemCleared = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.BoardSelected = lipgloss.NewStyle().Reverse(true)
	theme.TabActive = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	return theme
}

// Global theme variable (can be changed at startup)
var uiTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	uiTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return uiTheme
}
