package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harborline/clear-to-ship/internal/common"
	"github.com/harborline/clear-to-ship/internal/model"
)

// SessionSummary is the listing view of a saved session, without its rows.
type SessionSummary struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Reference string
	Selection model.Selection
	ID        uuid.UUID
	RowCount  int
}

// SaveSession persists a session and all of its rows, replacing any previous
// save of the same session.
func (s *SQLiteStorage) SaveSession(ctx context.Context, session *model.Session) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSession(session); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	session.UpdatedAt = time.Now().UTC()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (id, country, incoterm, mode, commodity, shipper, consignee, reference, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			country = excluded.country,
			incoterm = excluded.incoterm,
			mode = excluded.mode,
			commodity = excluded.commodity,
			shipper = excluded.shipper,
			consignee = excluded.consignee,
			reference = excluded.reference,
			updated_at = excluded.updated_at`,
		session.ID.String(),
		session.Selection.Country,
		string(session.Selection.Incoterm),
		string(session.Selection.Mode),
		string(session.Selection.Commodity),
		session.Shipper,
		session.Consignee,
		session.Reference,
		session.CreatedAt,
		session.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	// Rows are replaced wholesale; the editor may have added or removed rows
	// since the last save.
	if _, err := tx.ExecContext(ctx, `DELETE FROM session_rows WHERE session_id = ?`, session.ID.String()); err != nil {
		return fmt.Errorf("failed to clear session rows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO session_rows (session_id, row_id, position, document, mandatory, responsibility, mode, commodity, incoterm, notes, legalization, risk_flag, provided)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare row insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, row := range session.Rows {
		if _, err := stmt.ExecContext(ctx,
			session.ID.String(),
			row.ID.String(),
			i,
			row.Requirement.Document,
			string(row.Requirement.Mandatory),
			string(row.Requirement.Responsibility),
			string(row.Requirement.Mode),
			string(row.Requirement.Commodity),
			string(row.Requirement.Incoterm),
			row.Requirement.Notes,
			string(row.Legalization),
			string(row.RiskFlag),
			row.Provided,
		); err != nil {
			return fmt.Errorf("failed to save row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}

	return nil
}

// GetSession loads a saved session with its rows in saved order.
func (s *SQLiteStorage) GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	session := &model.Session{ID: id}
	var incoterm, mode, commodity string

	err := s.db.QueryRowContext(ctx, `
		SELECT country, incoterm, mode, commodity, shipper, consignee, reference, created_at, updated_at
		FROM sessions WHERE id = ?`, id.String()).Scan(
		&session.Selection.Country,
		&incoterm,
		&mode,
		&commodity,
		&session.Shipper,
		&session.Consignee,
		&session.Reference,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	// Saved enum values went through validation on the way in; parse them back
	// fail-fast so a hand-edited database cannot smuggle in bad values.
	if session.Selection.Incoterm, err = model.ParseIncoterm(incoterm); err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	if session.Selection.Mode, err = model.ParseMode(mode); err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	if session.Selection.Commodity, err = model.ParseCommodity(commodity); err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT row_id, document, mandatory, responsibility, mode, commodity, incoterm, notes, legalization, risk_flag, provided
		FROM session_rows WHERE session_id = ? ORDER BY position`, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load session rows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var row model.ResolvedRow
		var rowID, mandatory, responsibility, rowMode, rowCommodity, rowIncoterm, legalization, riskFlag string

		if err := rows.Scan(&rowID, &row.Requirement.Document, &mandatory, &responsibility,
			&rowMode, &rowCommodity, &rowIncoterm, &row.Requirement.Notes,
			&legalization, &riskFlag, &row.Provided); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}

		if row.ID, err = uuid.Parse(rowID); err != nil {
			return nil, fmt.Errorf("invalid row id %q: %w", rowID, err)
		}
		if row.Requirement.Mandatory, err = model.ParseMandatory(mandatory); err != nil {
			return nil, err
		}
		if row.Requirement.Responsibility, err = model.ParseResponsibility(responsibility); err != nil {
			return nil, err
		}
		if row.Requirement.Mode, err = model.ParseMode(rowMode); err != nil {
			return nil, err
		}
		if row.Requirement.Commodity, err = model.ParseCommodity(rowCommodity); err != nil {
			return nil, err
		}
		if row.Requirement.Incoterm, err = model.ParseIncoterm(rowIncoterm); err != nil {
			return nil, err
		}
		row.Country = session.Selection.Country
		row.Legalization = model.Legalization(legalization)
		row.RiskFlag = model.RiskFlag(riskFlag)

		session.Rows = append(session.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate session rows: %w", err)
	}

	return session, nil
}

// ListSessions returns summaries of all saved sessions, most recent first.
func (s *SQLiteStorage) ListSessions(ctx context.Context) ([]SessionSummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.country, s.incoterm, s.mode, s.commodity, s.reference, s.created_at, s.updated_at,
			(SELECT COUNT(*) FROM session_rows r WHERE r.session_id = s.id)
		FROM sessions s ORDER BY s.updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []SessionSummary
	for rows.Next() {
		var sum SessionSummary
		var id, incoterm, mode, commodity string

		if err := rows.Scan(&id, &sum.Selection.Country, &incoterm, &mode, &commodity,
			&sum.Reference, &sum.CreatedAt, &sum.UpdatedAt, &sum.RowCount); err != nil {
			return nil, fmt.Errorf("failed to scan session summary: %w", err)
		}
		if sum.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid session id %q: %w", id, err)
		}
		sum.Selection.Incoterm = model.Incoterm(incoterm)
		sum.Selection.Mode = model.Mode(mode)
		sum.Selection.Commodity = model.Commodity(commodity)

		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return summaries, nil
}

// DeleteSession removes a saved session and its rows.
func (s *SQLiteStorage) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session %s: %w", id, common.ErrNotFound)
	}

	return nil
}
