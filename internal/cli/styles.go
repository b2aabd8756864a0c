// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (harbor blue).
	PrimaryColor = lipgloss.Color("#5FA8D3")
	// SuccessColor indicates successful operations and READY status.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates pending items and conditional requirements.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates errors and sanctions flags.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages and the READY status.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats pending status and conditional rows.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages and sanctions risk flags.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))
)

// StatusStyle picks the style matching a readiness status string.
func StatusStyle(ready bool, noMandatory bool) lipgloss.Style {
	switch {
	case ready:
		return SuccessStyle
	case noMandatory:
		return SubtleStyle
	default:
		return WarningStyle
	}
}
