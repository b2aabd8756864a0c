package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/harborline/clear-to-ship/internal/cli"
	"github.com/harborline/clear-to-ship/internal/model"
	"github.com/harborline/clear-to-ship/internal/resolve"
)

var (
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
	providedStyle = lipgloss.NewStyle().Foreground(cli.SuccessColor)
	helpStyle     = lipgloss.NewStyle().Foreground(cli.SubtleColor)
)

// View renders the grid.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render("MEA Shipment Checklist"))
	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render(m.session.Selection.String()))
	b.WriteString("\n\n")

	status := resolve.ComputeStatus(m.session.Rows)
	style := cli.StatusStyle(status.State == model.Ready, status.State == model.NoMandatoryDocs)
	b.WriteString(fmt.Sprintf("%s %s\n\n", cli.BoldStyle.Render("Ready to Ship?"), style.Render(status.String())))

	page := m.pageSize()
	end := m.offset + page
	if end > len(m.session.Rows) {
		end = len(m.session.Rows)
	}

	for i := m.offset; i < end; i++ {
		b.WriteString(m.rowView(i))
		b.WriteString("\n")
	}

	if len(m.session.Rows) == 0 {
		b.WriteString(cli.SubtleStyle.Render("No requirements match this selection."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString(cli.InfoStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("Space toggle · a mark all · n clear all · s save · p export PDF · ? help · q quit"))

	return b.String()
}

func (m Model) rowView(i int) string {
	row := m.session.Rows[i]

	check := "[ ]"
	if row.Provided {
		check = providedStyle.Render("[x]")
	}

	marker := "  "
	if i == m.cursor {
		marker = cursorStyle.Render("> ")
	}

	doc := row.Requirement.Document
	if row.Requirement.Mandatory == model.MandatoryConditional {
		doc = cli.WarningStyle.Render(doc + " (conditional)")
	}

	line := fmt.Sprintf("%s%s %s  %s", marker, check, doc,
		cli.SubtleStyle.Render(string(row.Requirement.Responsibility)))

	if row.RiskFlag == model.RiskFlagSanctions {
		line += "  " + cli.ErrorStyle.Render("⚠ sanctions screen")
	}

	return line
}

func (m Model) helpView() string {
	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("Help"))
	b.WriteString("\n")
	for _, group := range m.keymap.FullHelp() {
		for _, binding := range group {
			b.WriteString(fmt.Sprintf("  %-12s %s\n",
				binding.Help().Key, binding.Help().Desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("press ? or q to close"))
	return b.String()
}
