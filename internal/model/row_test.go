package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowID(t *testing.T) {
	t.Run("deterministic across calls", func(t *testing.T) {
		a := RowID("Kenya", "Commercial Invoice", 0)
		b := RowID("Kenya", "Commercial Invoice", 0)
		assert.Equal(t, a, b)
	})

	t.Run("ordinal disambiguates repeated documents", func(t *testing.T) {
		// The transport document appears once per mode under the same name.
		air := RowID("Kenya", "Transport Document", 6)
		sea := RowID("Kenya", "Transport Document", 7)
		assert.NotEqual(t, air, sea)
	})

	t.Run("country is part of identity", func(t *testing.T) {
		kenya := RowID("Kenya", "Commercial Invoice", 0)
		ghana := RowID("Ghana", "Commercial Invoice", 0)
		assert.NotEqual(t, kenya, ghana)
	})
}

func TestSelection_Validate(t *testing.T) {
	tests := []struct {
		name      string
		selection Selection
		wantErr   string
	}{
		{
			name: "valid concrete selection",
			selection: Selection{
				Country:   "United Arab Emirates",
				Incoterm:  IncotermDAP,
				Mode:      ModeAir,
				Commodity: CommodityElectronics,
			},
		},
		{
			name: "empty country",
			selection: Selection{
				Incoterm:  IncotermDAP,
				Mode:      ModeAir,
				Commodity: CommodityElectronics,
			},
			wantErr: "unknown country",
		},
		{
			name: "wildcard incoterm rejected",
			selection: Selection{
				Country:   "Kenya",
				Incoterm:  IncotermAny,
				Mode:      ModeAir,
				Commodity: CommodityElectronics,
			},
			wantErr: "wildcard value not allowed",
		},
		{
			name: "wildcard mode rejected",
			selection: Selection{
				Country:   "Kenya",
				Incoterm:  IncotermDAP,
				Mode:      ModeAny,
				Commodity: CommodityElectronics,
			},
			wantErr: "wildcard value not allowed",
		},
		{
			name: "wildcard commodity rejected",
			selection: Selection{
				Country:   "Kenya",
				Incoterm:  IncotermDAP,
				Mode:      ModeAir,
				Commodity: CommodityAny,
			},
			wantErr: "wildcard value not allowed",
		},
		{
			name: "unrecognized mode rejected",
			selection: Selection{
				Country:   "Kenya",
				Incoterm:  IncotermDAP,
				Mode:      "Rail",
				Commodity: CommodityElectronics,
			},
			wantErr: "unknown transport mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.selection.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   string
	}{
		{
			name:   "ready",
			status: Status{State: Ready, Provided: 8, Required: 8},
			want:   "READY",
		},
		{
			name:   "pending shows counts",
			status: Status{State: Pending, Provided: 3, Required: 8},
			want:   "PENDING (3/8)",
		},
		{
			name:   "no mandatory docs",
			status: Status{State: NoMandatoryDocs},
			want:   "No mandatory docs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}
