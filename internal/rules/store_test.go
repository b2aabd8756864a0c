package rules

import (
	"sort"
	"testing"

	"github.com/harborline/clear-to-ship/internal/common"
	"github.com/harborline/clear-to-ship/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Countries(t *testing.T) {
	store := NewStore()
	countries := store.Countries()

	t.Run("union of both groups, deduplicated", func(t *testing.T) {
		assert.Len(t, countries, len(middleEast)+len(africa))
	})

	t.Run("sorted lexicographically", func(t *testing.T) {
		names := store.CountryNames()
		assert.True(t, sort.StringsAreSorted(names))
	})

	t.Run("regions assigned", func(t *testing.T) {
		byName := make(map[string]Country)
		for _, c := range countries {
			byName[c.Name] = c
		}
		assert.Equal(t, RegionMiddleEast, byName["United Arab Emirates"].Region)
		assert.Equal(t, RegionMiddleEast, byName["Egypt"].Region)
		assert.Equal(t, RegionAfrica, byName["Kenya"].Region)
	})
}

func TestStore_Attributes(t *testing.T) {
	store := NewStore()

	tests := []struct {
		name         string
		country      string
		legalization model.Legalization
		risk         model.RiskFlag
	}{
		{
			name:         "Iran is sanctions flagged",
			country:      "Iran",
			legalization: model.LegalizationAsRequested,
			risk:         model.RiskFlagSanctions,
		},
		{
			name:         "Kenya has neither flag",
			country:      "Kenya",
			legalization: model.LegalizationAsRequested,
			risk:         model.RiskFlagNone,
		},
		{
			name:         "Egypt legalization likely",
			country:      "Egypt",
			legalization: model.LegalizationLikely,
			risk:         model.RiskFlagNone,
		},
		{
			name:         "Syria carries both flags",
			country:      "Syria",
			legalization: model.LegalizationLikely,
			risk:         model.RiskFlagSanctions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			legal, risk, err := store.Attributes(tt.country)
			require.NoError(t, err)
			assert.Equal(t, tt.legalization, legal)
			assert.Equal(t, tt.risk, risk)
		})
	}

	t.Run("unknown country fails", func(t *testing.T) {
		_, _, err := store.Attributes("Atlantis")
		require.ErrorIs(t, err, common.ErrUnknownCountry)
	})
}

func TestStore_CountrySpecific(t *testing.T) {
	store := NewStore()

	t.Run("UAE carries the GCC additions", func(t *testing.T) {
		reqs, err := store.CountrySpecific("United Arab Emirates")
		require.NoError(t, err)
		require.Len(t, reqs, 2)
		assert.Equal(t, "Commercial Invoice (Attested)", reqs[0].Document)
		assert.Equal(t, model.MandatoryYes, reqs[0].Mandatory)
		assert.Equal(t, "COO (Legalized)", reqs[1].Document)
		assert.Equal(t, model.MandatoryConditional, reqs[1].Mandatory)
	})

	t.Run("Nigeria order preserved", func(t *testing.T) {
		reqs, err := store.CountrySpecific("Nigeria")
		require.NoError(t, err)
		require.Len(t, reqs, 3)
		assert.Equal(t, "Form M", reqs[0].Document)
		assert.Equal(t, "SONCAP (regulated)", reqs[1].Document)
		assert.Equal(t, "PAAR", reqs[2].Document)
	})

	t.Run("Iran has no additions", func(t *testing.T) {
		reqs, err := store.CountrySpecific("Iran")
		require.NoError(t, err)
		assert.Empty(t, reqs)
	})

	t.Run("unknown country fails rather than returning empty", func(t *testing.T) {
		_, err := store.CountrySpecific("Atlantis")
		require.ErrorIs(t, err, common.ErrUnknownCountry)
	})

	t.Run("accessor returns a copy", func(t *testing.T) {
		reqs, err := store.CountrySpecific("Nigeria")
		require.NoError(t, err)
		reqs[0].Document = "mutated"

		again, err := store.CountrySpecific("Nigeria")
		require.NoError(t, err)
		assert.Equal(t, "Form M", again[0].Document)
	})
}

func TestStore_Baseline(t *testing.T) {
	store := NewStore()
	baseline := store.Baseline()

	require.Len(t, baseline, 15)
	assert.Equal(t, "Commercial Invoice", baseline[0].Document)

	// One transport document per concrete mode, all mandatory.
	var transport []model.DocumentRequirement
	for _, r := range baseline {
		if r.Document == "Transport Document" {
			transport = append(transport, r)
		}
	}
	require.Len(t, transport, 3)
	modes := []model.Mode{transport[0].Mode, transport[1].Mode, transport[2].Mode}
	assert.ElementsMatch(t, []model.Mode{model.ModeAir, model.ModeSea, model.ModeCourier}, modes)

	// Seller-insurance incoterms each get an insurance row.
	var insurance []model.Incoterm
	for _, r := range baseline {
		if r.Document == "Insurance Certificate" {
			insurance = append(insurance, r.Incoterm)
		}
	}
	assert.ElementsMatch(t, []model.Incoterm{model.IncotermCIF, model.IncotermCIP}, insurance)
}

func TestStore_Validate(t *testing.T) {
	require.NoError(t, NewStore().Validate())
}
