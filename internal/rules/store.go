// Package rules holds the immutable document-requirement table for Middle
// East/Africa export destinations: a baseline set applying to every country
// plus per-country additions, and the per-country legalization and sanctions
// attributes derived from named country groups.
package rules

import (
	"fmt"
	"sort"

	"github.com/harborline/clear-to-ship/internal/common"
	"github.com/harborline/clear-to-ship/internal/model"
)

// Store is the process-wide rule table. It is constructed once and never
// mutated afterward; accessors return copies so callers cannot reach the
// backing data. Safe for concurrent readers.
type Store struct {
	specific  map[string][]model.DocumentRequirement
	regions   map[string]Region
	countries []string
	baseline  []model.DocumentRequirement
}

// NewStore builds the store from the built-in rule table.
func NewStore() *Store {
	return newStore(buildCountrySpecific())
}

// NewStoreWithOverlay builds the store with extra country-specific
// requirements merged in after the built-ins. The merge happens before the
// store is handed out; nothing mutates it afterward.
func NewStoreWithOverlay(overlay *Overlay) (*Store, error) {
	specific := buildCountrySpecific()

	if overlay != nil {
		canonical := newStore(nil)
		for _, entry := range overlay.entries {
			if !canonical.HasCountry(entry.country) {
				return nil, fmt.Errorf("%w: %q in rules overlay", common.ErrUnknownCountry, entry.country)
			}
			specific[entry.country] = append(specific[entry.country], entry.requirement)
		}
	}

	return newStore(specific), nil
}

func newStore(specific map[string][]model.DocumentRequirement) *Store {
	seen := make(map[string]struct{})
	regions := make(map[string]Region)
	var countries []string

	for _, c := range middleEast {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			regions[c] = RegionMiddleEast
			countries = append(countries, c)
		}
	}
	for _, c := range africa {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			regions[c] = RegionAfrica
			countries = append(countries, c)
		}
	}
	sort.Strings(countries)

	return &Store{
		countries: countries,
		regions:   regions,
		baseline:  baselineDocs,
		specific:  specific,
	}
}

// Countries returns the canonical country list in lexicographic order.
func (s *Store) Countries() []Country {
	out := make([]Country, 0, len(s.countries))
	for _, name := range s.countries {
		out = append(out, Country{
			Name:               name,
			Region:             s.regions[name],
			LegalizationLikely: s.legalizationLikely(name),
			SanctionsFlag:      s.sanctionsFlag(name),
		})
	}
	return out
}

// CountryNames returns just the canonical country names in lexicographic order.
func (s *Store) CountryNames() []string {
	out := make([]string, len(s.countries))
	copy(out, s.countries)
	return out
}

// HasCountry reports whether name is on the canonical country list.
func (s *Store) HasCountry(name string) bool {
	_, ok := s.regions[name]
	return ok
}

// Baseline returns the baseline requirements in their defined order.
func (s *Store) Baseline() []model.DocumentRequirement {
	out := make([]model.DocumentRequirement, len(s.baseline))
	copy(out, s.baseline)
	return out
}

// CountrySpecific returns the additional requirements for one country in
// their defined order. Unknown countries yield an error rather than a silent
// empty result.
func (s *Store) CountrySpecific(name string) ([]model.DocumentRequirement, error) {
	if !s.HasCountry(name) {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownCountry, name)
	}
	reqs := s.specific[name]
	out := make([]model.DocumentRequirement, len(reqs))
	copy(out, reqs)
	return out, nil
}

// Attributes returns the derived legalization/sanctions labels for a country.
func (s *Store) Attributes(name string) (model.Legalization, model.RiskFlag, error) {
	if !s.HasCountry(name) {
		return "", "", fmt.Errorf("%w: %q", common.ErrUnknownCountry, name)
	}
	legal := model.LegalizationAsRequested
	if s.legalizationLikely(name) {
		legal = model.LegalizationLikely
	}
	risk := model.RiskFlagNone
	if s.sanctionsFlag(name) {
		risk = model.RiskFlagSanctions
	}
	return legal, risk, nil
}

// Validate checks every entry in the table. A failure is an authoring defect;
// it is run from tests rather than at startup.
func (s *Store) Validate() error {
	for i, r := range s.baseline {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("baseline[%d]: %w", i, err)
		}
	}
	for country, reqs := range s.specific {
		if !s.HasCountry(country) {
			return fmt.Errorf("%w: %q has country-specific rules", common.ErrUnknownCountry, country)
		}
		for i, r := range reqs {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("%s[%d]: %w", country, i, err)
			}
		}
	}
	return nil
}

func (s *Store) legalizationLikely(name string) bool {
	_, ok := legalizationLikely[name]
	return ok
}

func (s *Store) sanctionsFlag(name string) bool {
	_, ok := sanctionsScreen[name]
	return ok
}
