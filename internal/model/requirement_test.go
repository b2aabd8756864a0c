package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	tests := []struct {
		parse   func(string) (string, error)
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "valid mode",
			parse: func(s string) (string, error) { v, err := ParseMode(s); return string(v), err },
			input: "Air",
			want:  "Air",
		},
		{
			name:  "wildcard mode parses",
			parse: func(s string) (string, error) { v, err := ParseMode(s); return string(v), err },
			input: "Any",
			want:  "Any",
		},
		{
			name:    "unknown mode",
			parse:   func(s string) (string, error) { v, err := ParseMode(s); return string(v), err },
			input:   "Rail",
			wantErr: true,
		},
		{
			name:  "valid commodity with parenthetical",
			parse: func(s string) (string, error) { v, err := ParseCommodity(s); return string(v), err },
			input: "Batteries (DG)",
			want:  "Batteries (DG)",
		},
		{
			name:    "unknown commodity",
			parse:   func(s string) (string, error) { v, err := ParseCommodity(s); return string(v), err },
			input:   "Livestock",
			wantErr: true,
		},
		{
			name:  "valid incoterm",
			parse: func(s string) (string, error) { v, err := ParseIncoterm(s); return string(v), err },
			input: "DAP",
			want:  "DAP",
		},
		{
			name:    "lowercase incoterm rejected",
			parse:   func(s string) (string, error) { v, err := ParseIncoterm(s); return string(v), err },
			input:   "dap",
			wantErr: true,
		},
		{
			name:    "empty mandatory rejected",
			parse:   func(s string) (string, error) { v, err := ParseMandatory(s); return string(v), err },
			input:   "",
			wantErr: true,
		},
		{
			name:  "valid responsibility",
			parse: func(s string) (string, error) { v, err := ParseResponsibility(s); return string(v), err },
			input: "Shared",
			want:  "Shared",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentRequirement_AppliesTo(t *testing.T) {
	tests := []struct {
		name        string
		requirement DocumentRequirement
		mode        Mode
		commodity   Commodity
		incoterm    Incoterm
		want        bool
	}{
		{
			name: "all wildcards match everything",
			requirement: DocumentRequirement{
				Mode: ModeAny, Commodity: CommodityAny, Incoterm: IncotermAny,
			},
			mode:      ModeSea,
			commodity: CommodityOther,
			incoterm:  IncotermEXW,
			want:      true,
		},
		{
			name: "concrete mode matches itself",
			requirement: DocumentRequirement{
				Mode: ModeAir, Commodity: CommodityAny, Incoterm: IncotermAny,
			},
			mode:      ModeAir,
			commodity: CommodityElectronics,
			incoterm:  IncotermDAP,
			want:      true,
		},
		{
			name: "concrete mode rejects others",
			requirement: DocumentRequirement{
				Mode: ModeAir, Commodity: CommodityAny, Incoterm: IncotermAny,
			},
			mode:      ModeSea,
			commodity: CommodityElectronics,
			incoterm:  IncotermDAP,
			want:      false,
		},
		{
			name: "all conjuncts required",
			requirement: DocumentRequirement{
				Mode: ModeAir, Commodity: CommodityBatteries, Incoterm: IncotermAny,
			},
			mode:      ModeAir,
			commodity: CommodityElectronics,
			incoterm:  IncotermDAP,
			want:      false,
		},
		{
			name: "incoterm filter",
			requirement: DocumentRequirement{
				Mode: ModeAny, Commodity: CommodityAny, Incoterm: IncotermCIF,
			},
			mode:      ModeSea,
			commodity: CommodityOther,
			incoterm:  IncotermDAP,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.requirement.AppliesTo(tt.mode, tt.commodity, tt.incoterm)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentRequirement_Validate(t *testing.T) {
	valid := DocumentRequirement{
		Document:       "Commercial Invoice",
		Mandatory:      MandatoryYes,
		Responsibility: ResponsibilityShipper,
		Mode:           ModeAny,
		Commodity:      CommodityAny,
		Incoterm:       IncotermAny,
	}

	require.NoError(t, valid.Validate())

	missingName := valid
	missingName.Document = ""
	require.Error(t, missingName.Validate())

	badMode := valid
	badMode.Mode = "Teleport"
	require.Error(t, badMode.Validate())

	badIncoterm := valid
	badIncoterm.Incoterm = "CIF/CIP or when risk transfers pre-delivery."
	require.Error(t, badIncoterm.Validate())
}
