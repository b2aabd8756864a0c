package model

import "fmt"

// ReadyState is the readiness classification of a checklist.
type ReadyState int

// Readiness states.
const (
	// NoMandatoryDocs means the checklist contains no Yes-mandatory rows.
	NoMandatoryDocs ReadyState = iota
	// Pending means at least one Yes-mandatory row is not yet provided.
	Pending
	// Ready means every Yes-mandatory row is marked provided.
	Ready
)

// Status is the computed readiness of a checklist. It is a pure function of
// the current rows, recomputed fresh on every evaluation; there is no stored
// state. Conditional rows never affect it.
type Status struct {
	State    ReadyState
	Provided int
	Required int
}

func (s Status) String() string {
	switch s.State {
	case Ready:
		return "READY"
	case Pending:
		return fmt.Sprintf("PENDING (%d/%d)", s.Provided, s.Required)
	default:
		return "No mandatory docs"
	}
}
