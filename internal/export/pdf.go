package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/harborline/clear-to-ship/internal/model"
	"github.com/harborline/clear-to-ship/internal/resolve"
)

// PDFOptions configures the PDF renderer.
type PDFOptions struct {
	// FontPath points at a Unicode TTF to embed. When empty the renderer
	// uses the built-in Helvetica core font and sanitizes all text to ASCII.
	FontPath string
}

// PDFRenderer renders a checklist session as an A4 PDF document.
type PDFRenderer struct {
	now      func() time.Time
	fontPath string
}

// NewPDFRenderer creates a renderer.
func NewPDFRenderer(opts PDFOptions) *PDFRenderer {
	return &PDFRenderer{
		fontPath: opts.FontPath,
		now:      time.Now,
	}
}

// Render produces the PDF bytes for a session. Status is recomputed from the
// session's current rows.
func (r *PDFRenderer) Render(session *model.Session) ([]byte, error) {
	status := resolve.ComputeStatus(session.Rows)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	family := "Helvetica"
	clean := ASCIISafe
	if r.fontPath != "" {
		family = "Unicode"
		pdf.AddUTF8Font(family, "", r.fontPath)
		pdf.AddUTF8Font(family, "B", r.fontPath)
		pdf.AddUTF8Font(family, "I", r.fontPath)
		clean = func(s string) string { return strings.Join(strings.Fields(s), " ") }
	}

	pdf.SetHeaderFunc(func() {
		pdf.SetFont(family, "B", 12)
		pdf.CellFormat(0, 10, "MEA Shipment Checklist", "", 1, "C", false, 0, "")
		pdf.SetFont(family, "", 9)
		pdf.SetTextColor(80, 80, 80)
		pdf.CellFormat(0, 6, "Guide only. Verify with broker/forwarder based on HS code.", "", 1, "C", false, 0, "")
		pdf.Ln(2)
		pdf.SetTextColor(0, 0, 0)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(family, "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont(family, "", 10)

	r.renderMeta(pdf, family, clean, session)
	r.renderTable(pdf, family, clean, session.Rows)

	pdf.Ln(2)
	pdf.SetFont(family, "B", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", clean(status.String())), "", 1, "L", false, 0, "")
	pdf.SetFont(family, "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on %s", r.now().Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) renderMeta(pdf *fpdf.Fpdf, family string, clean func(string) string, session *model.Session) {
	label := func(w float64, text string) {
		pdf.SetFont(family, "B", 10)
		pdf.CellFormat(w, 6, text, "", 0, "L", false, 0, "")
	}
	value := func(w float64, text string) {
		pdf.SetFont(family, "", 10)
		pdf.CellFormat(w, 6, clean(text), "", 0, "L", false, 0, "")
	}

	label(28, "Country:")
	value(62, session.Selection.Country)
	label(26, "Incoterms:")
	value(20, string(session.Selection.Incoterm))
	pdf.Ln(6)

	label(28, "Mode:")
	value(62, string(session.Selection.Mode))
	label(26, "Commodity:")
	value(20, string(session.Selection.Commodity))
	pdf.Ln(6)

	if session.Shipper != "" || session.Consignee != "" || session.Reference != "" {
		label(28, "Shipper:")
		value(62, session.Shipper)
		label(26, "Consignee:")
		value(60, session.Consignee)
		pdf.Ln(6)
		if session.Reference != "" {
			label(28, "PO/Ref:")
			value(62, session.Reference)
			pdf.Ln(6)
		}
	}
	pdf.Ln(2)
}

func (r *PDFRenderer) renderTable(pdf *fpdf.Fpdf, family string, clean func(string) string, rows []model.ResolvedRow) {
	headers := []struct {
		text  string
		width float64
	}{
		{"Provided", 16},
		{"Document", 82},
		{"Mandatory", 20},
		{"Resp.", 20},
		{"Legal.", 20},
		{"Risk", 20},
	}

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont(family, "B", 10)
	for _, h := range headers {
		pdf.CellFormat(h.width, 8, h.text, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(8)
	pdf.SetFont(family, "", 9)

	for _, row := range rows {
		provided := "No"
		if row.Provided {
			provided = "Yes"
		}

		cells := []struct {
			text  string
			width float64
		}{
			{provided, 16},
			{row.Requirement.Document, 82},
			{string(row.Requirement.Mandatory), 20},
			{string(row.Requirement.Responsibility), 20},
			{string(row.Legalization), 20},
			{string(row.RiskFlag), 20},
		}

		for _, c := range cells {
			x, y := pdf.GetXY()
			pdf.MultiCell(c.width, 5, clean(c.text), "1", "L", false)
			pdf.SetXY(x+c.width, y)
		}
		pdf.Ln(5)

		if note := clean(row.Requirement.Notes); note != "" {
			pdf.SetFont(family, "I", 9)
			pdf.CellFormat(16, 6, "", "L", 0, "L", false, 0, "")
			pdf.MultiCell(162, 6, "Notes: "+note, "R", "L", false)
			pdf.SetFont(family, "", 9)
			pdf.Ln(2)
		}
	}
}

// Filename builds the export filename for a session:
// Shipment_Checklist_<Country>_<Incoterm>_<Mode>_<YYYYMMDD>.pdf with spaces
// replaced by underscores.
func Filename(session *model.Session, now time.Time) string {
	name := fmt.Sprintf("Shipment_Checklist_%s_%s_%s_%s.pdf",
		ASCIISafe(session.Selection.Country),
		session.Selection.Incoterm,
		session.Selection.Mode,
		now.Format("20060102"))
	return strings.ReplaceAll(name, " ", "_")
}
