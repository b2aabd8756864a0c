package export

import (
	"testing"
	"time"

	"github.com/harborline/clear-to-ship/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestASCIISafe(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "plain ascii untouched",
			input: "Commercial Invoice",
			want:  "Commercial Invoice",
		},
		{
			name:  "curly quotes replaced",
			input: "importer’s “copy”",
			want:  `importer's "copy"`,
		},
		{
			name:  "dashes and nbsp normalized",
			input: "8–10 digits — per line",
			want:  "8-10 digits - per line",
		},
		{
			name:  "accents stripped",
			input: "Côte d'Ivoire",
			want:  "Cote d'Ivoire",
		},
		{
			name:  "unencodable runes dropped",
			input: "checklist ✓ done",
			want:  "checklist done",
		},
		{
			name:  "whitespace collapsed",
			input: "  too   many\tspaces  ",
			want:  "too many spaces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ASCIISafe(tt.input))
		})
	}
}

func TestFilename(t *testing.T) {
	session := &model.Session{
		Selection: model.Selection{
			Country:   "United Arab Emirates",
			Incoterm:  model.IncotermDAP,
			Mode:      model.ModeAir,
			Commodity: model.CommodityElectronics,
		},
	}
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	assert.Equal(t,
		"Shipment_Checklist_United_Arab_Emirates_DAP_Air_20260826.pdf",
		Filename(session, now))
}

func TestFilename_SanitizesCountry(t *testing.T) {
	session := &model.Session{
		Selection: model.Selection{
			Country:   "Cote d'Ivoire",
			Incoterm:  model.IncotermFOB,
			Mode:      model.ModeSea,
			Commodity: model.CommodityOther,
		},
	}
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t,
		"Shipment_Checklist_Cote_d'Ivoire_FOB_Sea_20260102.pdf",
		Filename(session, now))
}
