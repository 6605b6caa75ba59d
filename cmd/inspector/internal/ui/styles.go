package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	accentColor  = lipgloss.AdaptiveColor{Light: "#00A86B", Dark: "#2BD99F"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#7C7C7C", Dark: "#5C5C6F"}
	warnColor    = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#E5C07B"}

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 2).
			MarginRight(1)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(warnColor).
			Bold(true).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1).
			Padding(0, 1)
)

type keyMap struct {
	Drain key.Binding
	Sweep key.Binding
	Pause key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Drain: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "drain ring"),
	),
	Sweep: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sweep registry"),
	),
	Pause: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p", "pause"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
