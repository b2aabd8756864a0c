package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/harborline/clear-to-ship/internal/model"
)

func validateString(value, name string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return ctx.Err()
}

func validateSession(session *model.Session) error {
	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}
	if session.ID == uuid.Nil {
		return fmt.Errorf("session ID cannot be empty")
	}
	if err := session.Selection.Validate(); err != nil {
		return fmt.Errorf("invalid session selection: %w", err)
	}
	return nil
}
