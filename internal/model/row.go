package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/harborline/clear-to-ship/internal/common"
)

// Legalization labels whether destination-country legalization is expected.
// It is a country property, uniform across every row of that country.
type Legalization string

// Legalization labels.
const (
	LegalizationLikely      Legalization = "Likely"
	LegalizationAsRequested Legalization = "As requested"
)

// RiskFlag labels whether a sanctions/export-control screen is expected.
type RiskFlag string

// RiskFlag labels.
const (
	RiskFlagNone      RiskFlag = "None"
	RiskFlagSanctions RiskFlag = "Sanctions/Export-Control Screen"
)

// rowNamespace seeds deterministic row IDs so the same (country, document,
// ordinal) triple always yields the same ID across processes.
var rowNamespace = uuid.MustParse("8f1c9a52-3e7b-4d0a-9c6e-2b5f8d41a7e3")

// RowID derives the stable synthetic identifier for a resolved row. The
// ordinal is the row's position within its country's requirement sequence and
// disambiguates repeated document names (the transport document appears once
// per mode).
func RowID(country, document string, ordinal int) uuid.UUID {
	return uuid.NewSHA1(rowNamespace, []byte(fmt.Sprintf("%s|%s|%d", country, document, ordinal)))
}

// ResolvedRow is one document requirement bound to one destination country,
// carrying the country-derived legalization and risk labels plus the mutable
// provided flag edited in the working view. Rule data itself is never mutated;
// resolved rows are regenerated on every selection change.
type ResolvedRow struct {
	ID           uuid.UUID
	Country      string
	Requirement  DocumentRequirement
	Legalization Legalization
	RiskFlag     RiskFlag
	Provided     bool
}

// Selection is the concrete four-dimension filter a checklist is resolved
// for. All fields must be concrete values; the Any wildcard is rejected.
type Selection struct {
	Country   string
	Incoterm  Incoterm
	Mode      Mode
	Commodity Commodity
}

// Validate rejects wildcard or unrecognized enum values. Country membership
// is validated against the rule store by the resolver, which knows the
// canonical list.
func (s Selection) Validate() error {
	if s.Country == "" {
		return fmt.Errorf("%w: empty country", common.ErrUnknownCountry)
	}
	if _, err := ParseIncoterm(string(s.Incoterm)); err != nil {
		return err
	}
	if s.Incoterm == IncotermAny {
		return fmt.Errorf("%w: incoterm", common.ErrWildcardInput)
	}
	if _, err := ParseMode(string(s.Mode)); err != nil {
		return err
	}
	if s.Mode == ModeAny {
		return fmt.Errorf("%w: mode", common.ErrWildcardInput)
	}
	if _, err := ParseCommodity(string(s.Commodity)); err != nil {
		return err
	}
	if s.Commodity == CommodityAny {
		return fmt.Errorf("%w: commodity", common.ErrWildcardInput)
	}
	return nil
}

func (s Selection) String() string {
	return fmt.Sprintf("%s / %s / %s / %s", s.Country, s.Incoterm, s.Mode, s.Commodity)
}
