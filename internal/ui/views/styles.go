package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title     lipgloss.Style
	Dim       lipgloss.Style
	Status    lipgloss.Style
	Query     lipgloss.Style
	Notice    lipgloss.Style
	Help      lipgloss.Style
	Main      lipgloss.Style
	HelpBox   lipgloss.Style
	HelpTitle lipgloss.Style
	Overlay   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Query:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // clamped to the real height at render time
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		HelpTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Overlay: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
