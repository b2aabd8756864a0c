package model

import (
	"time"

	"github.com/google/uuid"
)

// Session is a working checklist: a resolved row set for one selection plus
// optional shipment metadata. Sessions can be persisted and resumed; each
// session owns its rows and never aliases another session's.
type Session struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Shipper   string
	Consignee string
	Reference string
	Rows      []ResolvedRow
	Selection Selection
	ID        uuid.UUID
}

// NewSession creates a session over freshly resolved rows.
func NewSession(sel Selection, rows []ResolvedRow) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.New(),
		Selection: sel,
		Rows:      rows,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
