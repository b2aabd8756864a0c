package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harborline/clear-to-ship/internal/model"
)

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()
		return m, nil

	case saveDoneMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("save failed: %v", msg.err)
		} else {
			m.statusMsg = "session saved"
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("export failed: %v", msg.err)
		} else {
			m.statusMsg = fmt.Sprintf("exported %s", msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Quit):
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ToggleHelp):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keymap.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keymap.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keymap.PageUp):
		m.moveCursor(-m.pageSize())

	case key.Matches(msg, m.keymap.PageDown):
		m.moveCursor(m.pageSize())

	case key.Matches(msg, m.keymap.Home):
		m.cursor = 0
		m.clampCursor()

	case key.Matches(msg, m.keymap.End):
		m.cursor = len(m.session.Rows) - 1
		m.clampCursor()

	case key.Matches(msg, m.keymap.Toggle):
		if m.cursor < len(m.session.Rows) {
			m.session.Rows[m.cursor].Provided = !m.session.Rows[m.cursor].Provided
			m.statusMsg = ""
		}

	case key.Matches(msg, m.keymap.MarkAll):
		m.setAll(true)

	case key.Matches(msg, m.keymap.ClearAll):
		m.setAll(false)

	case key.Matches(msg, m.keymap.Save):
		if m.config.Save != nil {
			m.statusMsg = "saving..."
			return m, m.saveCmd()
		}

	case key.Matches(msg, m.keymap.ExportPDF):
		if m.config.ExportPDF != nil {
			m.statusMsg = "exporting..."
			return m, m.exportCmd()
		}
	}

	return m, nil
}

func (m *Model) setAll(provided bool) {
	for i := range m.session.Rows {
		m.session.Rows[i].Provided = provided
	}
	m.statusMsg = ""
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.session.Rows) {
		m.cursor = len(m.session.Rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// pageSize is the number of rows visible at the current terminal height.
func (m Model) pageSize() int {
	// header block + status bar + footer
	reserved := 8
	size := m.height - reserved
	if size < 1 {
		return 1
	}
	return size
}

func (m Model) saveCmd() tea.Cmd {
	session := m.session
	save := m.config.Save
	return func() tea.Msg {
		return saveDoneMsg{err: save(context.Background(), session)}
	}
}

func (m Model) exportCmd() tea.Cmd {
	session := m.session
	export := m.config.ExportPDF
	return func() tea.Msg {
		path, err := export(session)
		return exportDoneMsg{path: path, err: err}
	}
}

// rowAt exposes a row for tests.
func (m Model) rowAt(i int) model.ResolvedRow {
	return m.session.Rows[i]
}
