package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles used by menus and the scoreboard.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	ItemSolved  lipgloss.Style
	Description lipgloss.Style
	Controls    lipgloss.Style

	Border      lipgloss.Color
	SelectedFg  lipgloss.Color
	SelectedBg  lipgloss.Color
	EmptyNotice lipgloss.Style
}

// DefaultTheme is the cyan circuit look.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ItemSolved:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Border:      lipgloss.Color("240"),
		SelectedFg:  lipgloss.Color("229"),
		SelectedBg:  lipgloss.Color("57"),
		EmptyNotice: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
	}
}

// NeonTheme returns a brighter variant.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true) // Neon pink
	theme.ItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true)
	theme.ItemSolved = lipgloss.NewStyle().Foreground(lipgloss.Color("118"))
	theme.SelectedBg = lipgloss.Color("53")
	return theme
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.ItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.ItemSolved = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.SelectedFg = lipgloss.Color("255")
	theme.SelectedBg = lipgloss.Color("238")
	return theme
}

// ThemeNames lists the names accepted by ThemeByName.
var ThemeNames = []string{"default", "neon", "mono"}

// ThemeByName resolves a theme name from the command line.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "default":
		return DefaultTheme(), nil
	case "neon":
		return NeonTheme(), nil
	case "mono", "monochrome":
		return MonochromeTheme(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (want one of %v)", name, ThemeNames)
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return currentTheme
}
