// Package resolve turns the static rule table into per-shipment checklists.
// Everything here is pure: materialization expands the table, filtering
// selects the rows for one concrete shipment, and status is recomputed from
// scratch on every evaluation. Nothing is cached and nothing blocks.
package resolve

import (
	"fmt"

	"github.com/harborline/clear-to-ship/internal/common"
	"github.com/harborline/clear-to-ship/internal/model"
	"github.com/harborline/clear-to-ship/internal/rules"
)

// Resolver expands and filters the rule store. It holds only an immutable
// store reference and is safe for concurrent use.
type Resolver struct {
	store *rules.Store
}

// New creates a resolver over the given rule store.
func New(store *rules.Store) *Resolver {
	return &Resolver{store: store}
}

// Materialize expands the rule store into one flat row sequence: for each
// country in lexicographic order, every baseline requirement in its defined
// order, then every country-specific requirement in its defined order. The
// result is deterministic; row IDs are stable across invocations.
func (r *Resolver) Materialize() []model.ResolvedRow {
	baseline := r.store.Baseline()

	var rows []model.ResolvedRow
	for _, country := range r.store.CountryNames() {
		legal, risk, err := r.store.Attributes(country)
		if err != nil {
			// The country came from the store's own canonical list.
			panic(fmt.Sprintf("resolve: attributes for canonical country %q: %v", country, err))
		}

		specific, err := r.store.CountrySpecific(country)
		if err != nil {
			panic(fmt.Sprintf("resolve: rules for canonical country %q: %v", country, err))
		}

		ordinal := 0
		for _, requirement := range baseline {
			rows = append(rows, bind(country, requirement, ordinal, legal, risk))
			ordinal++
		}
		for _, requirement := range specific {
			rows = append(rows, bind(country, requirement, ordinal, legal, risk))
			ordinal++
		}
	}
	return rows
}

func bind(country string, requirement model.DocumentRequirement, ordinal int, legal model.Legalization, risk model.RiskFlag) model.ResolvedRow {
	return model.ResolvedRow{
		ID:           model.RowID(country, requirement.Document, ordinal),
		Country:      country,
		Requirement:  requirement,
		Legalization: legal,
		RiskFlag:     risk,
	}
}

// Filter returns the ordered subsequence of rows applying to the selection:
// exact country match, and mode/commodity/incoterm each matching exactly or
// via the Any wildcard. All four conjuncts are required. The selection is
// validated first; an unrecognized value is a caller bug and fails loudly
// rather than silently matching nothing.
func (r *Resolver) Filter(rows []model.ResolvedRow, sel model.Selection) ([]model.ResolvedRow, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	if !r.store.HasCountry(sel.Country) {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownCountry, sel.Country)
	}

	out := make([]model.ResolvedRow, 0, len(rows))
	for _, row := range rows {
		if row.Country != sel.Country {
			continue
		}
		if !row.Requirement.AppliesTo(sel.Mode, sel.Commodity, sel.Incoterm) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

// Checklist materializes and filters in one step, yielding the working row
// set for a shipment. Each call returns a fresh slice; callers never share
// row storage.
func (r *Resolver) Checklist(sel model.Selection) ([]model.ResolvedRow, error) {
	return r.Filter(r.Materialize(), sel)
}

// ComputeStatus derives readiness from the current rows. Only Yes-mandatory
// rows count: conditional requirements are advisory and never block
// readiness. Total over any row sequence; empty input yields NoMandatoryDocs.
func ComputeStatus(rows []model.ResolvedRow) model.Status {
	var required, provided int
	for _, row := range rows {
		if row.Requirement.Mandatory != model.MandatoryYes {
			continue
		}
		required++
		if row.Provided {
			provided++
		}
	}

	switch {
	case required == 0:
		return model.Status{State: model.NoMandatoryDocs}
	case provided == required:
		return model.Status{State: model.Ready, Provided: provided, Required: required}
	default:
		return model.Status{State: model.Pending, Provided: provided, Required: required}
	}
}
