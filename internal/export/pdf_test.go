package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/harborline/clear-to-ship/internal/model"
	"github.com/harborline/clear-to-ship/internal/resolve"
	"github.com/harborline/clear-to-ship/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderSession(t *testing.T) *model.Session {
	t.Helper()

	sel := model.Selection{
		Country:   "United Arab Emirates",
		Incoterm:  model.IncotermDAP,
		Mode:      model.ModeAir,
		Commodity: model.CommodityElectronics,
	}
	rows, err := resolve.New(rules.NewStore()).Checklist(sel)
	require.NoError(t, err)

	session := model.NewSession(sel, rows)
	session.Shipper = "Acme Exports"
	session.Consignee = "Gulf Trading LLC"
	session.Reference = "PO-1138"
	return session
}

func TestPDFRenderer_Render(t *testing.T) {
	renderer := NewPDFRenderer(PDFOptions{})
	renderer.now = func() time.Time {
		return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	}

	data, err := renderer.Render(renderSession(t))
	require.NoError(t, err)

	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
}

func TestPDFRenderer_EmptyChecklist(t *testing.T) {
	sel := model.Selection{
		Country:   "Iran",
		Incoterm:  model.IncotermEXW,
		Mode:      model.ModeCourier,
		Commodity: model.CommodityOther,
	}
	session := model.NewSession(sel, nil)

	renderer := NewPDFRenderer(PDFOptions{})
	data, err := renderer.Render(session)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderText(t *testing.T) {
	session := renderSession(t)
	session.Rows[0].Provided = true

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, session))

	out := buf.String()
	assert.Contains(t, out, "MEA Shipment Checklist")
	assert.Contains(t, out, "Commercial Invoice")
	assert.Contains(t, out, "Commercial Invoice (Attested)")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "PENDING (1/8)")
}

func TestRenderText_ReadyStatus(t *testing.T) {
	session := renderSession(t)
	for i := range session.Rows {
		session.Rows[i].Provided = true
	}

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, session))
	assert.Contains(t, buf.String(), "READY")
}
