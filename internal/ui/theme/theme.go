// Package theme holds the shared palette and lipgloss styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Dark, low-glare, readable over long study sessions.
var (
	Primary   = lipgloss.Color("#2DD4BF") // teal
	Secondary = lipgloss.Color("#818CF8") // periwinkle
	Accent    = lipgloss.Color("#FBBF24") // amber
	Success   = lipgloss.Color("#4ADE80") // green
	Error     = lipgloss.Color("#F87171") // red
	Text      = lipgloss.Color("#F1F5F9") // near-white
	TextDim   = lipgloss.Color("#8B98AC") // muted slate
	BgDark    = lipgloss.Color("#0C1222") // deep navy
	BgCard    = lipgloss.Color("#1C2536") // raised slate
	Border    = lipgloss.Color("#3A465C") // slate line
)

// Text styles.
var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
)

// Chrome.
var (
	Header = lipgloss.NewStyle().Background(BgCard).Padding(0, 2)
	Footer = lipgloss.NewStyle().Background(BgCard).Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// Selection and scoring states.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Component styles.
var (
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
