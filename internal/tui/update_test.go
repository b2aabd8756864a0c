package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harborline/clear-to-ship/internal/model"
	"github.com/harborline/clear-to-ship/internal/resolve"
	"github.com/harborline/clear-to-ship/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridModel(t *testing.T) Model {
	t.Helper()

	sel := model.Selection{
		Country:   "United Arab Emirates",
		Incoterm:  model.IncotermDAP,
		Mode:      model.ModeAir,
		Commodity: model.CommodityElectronics,
	}
	rows, err := resolve.New(rules.NewStore()).Checklist(sel)
	require.NoError(t, err)

	return newModel(Config{
		Session: model.NewSession(sel, rows),
		Width:   100,
		Height:  40,
	})
}

func keyPress(m Model, key string) Model {
	var msg tea.Msg
	switch key {
	case "space":
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestModel_ToggleProvided(t *testing.T) {
	m := gridModel(t)
	require.False(t, m.rowAt(0).Provided)

	m = keyPress(m, "space")
	assert.True(t, m.rowAt(0).Provided)

	m = keyPress(m, "x")
	assert.False(t, m.rowAt(0).Provided)
}

func TestModel_CursorNavigation(t *testing.T) {
	m := gridModel(t)

	m = keyPress(m, "j")
	m = keyPress(m, "j")
	assert.Equal(t, 2, m.cursor)

	m = keyPress(m, "k")
	assert.Equal(t, 1, m.cursor)

	// Cursor clamps at the ends.
	m = keyPress(m, "g")
	assert.Equal(t, 0, m.cursor)
	m = keyPress(m, "k")
	assert.Equal(t, 0, m.cursor)

	m = keyPress(m, "G")
	assert.Equal(t, len(m.session.Rows)-1, m.cursor)
	m = keyPress(m, "j")
	assert.Equal(t, len(m.session.Rows)-1, m.cursor)
}

func TestModel_ToggleFollowsCursor(t *testing.T) {
	m := gridModel(t)

	m = keyPress(m, "j")
	m = keyPress(m, "space")

	assert.False(t, m.rowAt(0).Provided)
	assert.True(t, m.rowAt(1).Provided)
}

func TestModel_MarkAndClearAll(t *testing.T) {
	m := gridModel(t)

	m = keyPress(m, "a")
	for i := range m.session.Rows {
		assert.True(t, m.rowAt(i).Provided, "row %d", i)
	}

	status := resolve.ComputeStatus(m.session.Rows)
	assert.Equal(t, model.Ready, status.State)

	m = keyPress(m, "n")
	for i := range m.session.Rows {
		assert.False(t, m.rowAt(i).Provided, "row %d", i)
	}
}

func TestModel_SaveTriggersCallback(t *testing.T) {
	saved := false
	m := gridModel(t)
	m.config.Save = func(_ context.Context, _ *model.Session) error {
		saved = true
		return nil
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = updated.(Model)
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, saveDoneMsg{}, msg)
	assert.True(t, saved)

	updated, _ = m.Update(msg)
	m = updated.(Model)
	assert.Equal(t, "session saved", m.statusMsg)
}

func TestModel_QuitKeys(t *testing.T) {
	m := gridModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, updated.(Model).quitting)
	require.NotNil(t, cmd)

	m = gridModel(t)
	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, updated.(Model).quitting)
	require.NotNil(t, cmd)
}

func TestModel_HelpToggle(t *testing.T) {
	m := gridModel(t)

	m = keyPress(m, "?")
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Help")

	// q closes help without quitting
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(Model)
	assert.False(t, m.showHelp)
	assert.False(t, m.quitting)
	assert.Nil(t, cmd)
}

func TestModel_ViewShowsStatus(t *testing.T) {
	m := gridModel(t)
	assert.Contains(t, m.View(), "PENDING (0/8)")

	m = keyPress(m, "a")
	assert.Contains(t, m.View(), "READY")
}
