// Package tui provides the interactive checklist grid: an editable table of
// resolved document requirements where the user marks rows provided, watches
// the readiness status update, and saves or exports the result.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harborline/clear-to-ship/internal/model"
)

// Config wires the grid to its collaborators. Save and ExportPDF are
// optional; the corresponding keys are inert when nil.
type Config struct {
	Save      func(context.Context, *model.Session) error
	ExportPDF func(*model.Session) (string, error)
	Session   *model.Session
	Width     int
	Height    int
}

// saveDoneMsg reports the outcome of a background save.
type saveDoneMsg struct {
	err error
}

// exportDoneMsg reports the outcome of a background PDF export.
type exportDoneMsg struct {
	err  error
	path string
}

// Model holds the grid state. Each run owns its session's rows exclusively;
// nothing is shared between concurrent grids.
type Model struct {
	config    Config
	session   *model.Session
	statusMsg string
	keymap    KeyMap
	cursor    int
	offset    int
	width     int
	height    int
	showHelp  bool
	quitting  bool
}

// newModel creates a grid over the configured session.
func newModel(cfg Config) Model {
	return Model{
		config:  cfg,
		session: cfg.Session,
		keymap:  DefaultKeyMap(),
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Session returns the session being edited.
func (m Model) Session() *model.Session {
	return m.session
}
