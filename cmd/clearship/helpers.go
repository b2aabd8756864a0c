package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/harborline/clear-to-ship/internal/common"
	"github.com/harborline/clear-to-ship/internal/config"
	"github.com/harborline/clear-to-ship/internal/export"
	"github.com/harborline/clear-to-ship/internal/model"
	"github.com/harborline/clear-to-ship/internal/rules"
	"github.com/harborline/clear-to-ship/internal/storage"
	"github.com/spf13/viper"
)

// initStorage initializes the session store with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadRules builds the rule store, merging an overlay file when configured.
func loadRules(overlayPath string) (*rules.Store, error) {
	if overlayPath == "" {
		overlayPath = viper.GetString("rules.overlay")
	}
	if overlayPath == "" {
		return rules.NewStore(), nil
	}

	overlay, err := rules.LoadOverlay(config.ExpandPath(overlayPath))
	if err != nil {
		return nil, err
	}

	common.LogDebug("merging rules overlay", common.Fields{"path": overlayPath})
	return rules.NewStoreWithOverlay(overlay)
}

// getSession loads a saved session, turning a missing id into a message the
// user can act on.
func getSession(ctx context.Context, store *storage.SQLiteStorage, id uuid.UUID) (*model.Session, error) {
	session, err := store.GetSession(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return nil, common.NewUserError(
			fmt.Sprintf("no saved session %s; run 'clearship sessions list'", id), err)
	}
	return session, err
}

// pdfRenderer builds the PDF renderer, attempting the Unicode font when
// enabled. Font failures degrade to the ASCII core-font path; they never
// abort the export.
func pdfRenderer(ctx context.Context) *export.PDFRenderer {
	opts := export.PDFOptions{}

	if viper.GetBool("pdf.unicode") {
		fontDir := viper.GetString("pdf.font_dir")
		if fontDir == "" {
			fontDir = config.DefaultFontDir()
		} else {
			fontDir = config.ExpandPath(fontDir)
		}

		fontPath, err := export.EnsureFont(ctx, fontDir)
		if err != nil {
			common.LogError(err, "Unicode font unavailable, falling back to ASCII-safe PDF",
				common.Fields{"font_dir": fontDir})
		} else {
			opts.FontPath = fontPath
		}
	}

	return export.NewPDFRenderer(opts)
}
