package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harborline/clear-to-ship/internal/model"
)

// Run drives the interactive grid until the user quits, returning the edited
// session. The session's provided flags reflect the user's edits on return.
func Run(ctx context.Context, cfg Config) (*model.Session, error) {
	if cfg.Session == nil {
		return nil, fmt.Errorf("tui: session is required")
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("checklist grid failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("checklist grid returned unexpected model type %T", final)
	}

	return m.Session(), nil
}
