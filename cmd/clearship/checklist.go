package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harborline/clear-to-ship/internal/cli"
	"github.com/harborline/clear-to-ship/internal/export"
	"github.com/harborline/clear-to-ship/internal/model"
	"github.com/harborline/clear-to-ship/internal/resolve"
	"github.com/harborline/clear-to-ship/internal/tui"
	"github.com/spf13/cobra"
)

func checklistCmd() *cobra.Command {
	var (
		country     string
		incoterm    string
		mode        string
		commodity   string
		shipper     string
		consignee   string
		reference   string
		rulesFile   string
		pdfOut      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Generate a shipment documentation checklist",
		Long: `Resolve the document requirements for one shipment: a destination country,
an incoterm, a transport mode, and a commodity class. Review the checklist in
the terminal, or edit it interactively and export it as a PDF.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			incotermVal, err := model.ParseIncoterm(incoterm)
			if err != nil {
				return err
			}
			modeVal, err := model.ParseMode(mode)
			if err != nil {
				return err
			}
			commodityVal, err := model.ParseCommodity(commodity)
			if err != nil {
				return err
			}

			sel := model.Selection{
				Country:   country,
				Incoterm:  incotermVal,
				Mode:      modeVal,
				Commodity: commodityVal,
			}

			store, err := loadRules(rulesFile)
			if err != nil {
				return err
			}

			rows, err := resolve.New(store).Checklist(sel)
			if err != nil {
				return err
			}

			session := model.NewSession(sel, rows)
			session.Shipper = shipper
			session.Consignee = consignee
			session.Reference = reference

			if interactive {
				session, err = runInteractive(ctx, session)
				if err != nil {
					return err
				}
			}

			if err := export.RenderText(os.Stdout, session); err != nil {
				return err
			}

			if pdfOut != "" {
				path, err := writePDF(ctx, session, pdfOut)
				if err != nil {
					return err
				}
				fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("PDF written to %s", path)))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&country, "country", "c", "United Arab Emirates", "destination country")
	cmd.Flags().StringVarP(&incoterm, "incoterm", "i", "DAP", "incoterm (EXW, FCA, FOB, CFR, CIF, CPT, CIP, DAP, DPU, DDP)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "Air", "transport mode (Air, Sea, Courier)")
	cmd.Flags().StringVar(&commodity, "commodity", "General Electronics", "commodity class")
	cmd.Flags().StringVar(&shipper, "shipper", "", "shipper name (optional)")
	cmd.Flags().StringVar(&consignee, "consignee", "", "consignee name (optional)")
	cmd.Flags().StringVar(&reference, "po", "", "PO/reference (optional)")
	cmd.Flags().StringVar(&rulesFile, "rules-file", "", "YAML overlay with extra country-specific requirements")
	cmd.Flags().StringVar(&pdfOut, "pdf", "", "write the checklist PDF to this directory or file")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "edit the checklist in an interactive grid")

	return cmd
}

// runInteractive opens the TUI grid wired to storage and PDF export.
func runInteractive(ctx context.Context, session *model.Session) (*model.Session, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	renderer := pdfRenderer(ctx)

	return tui.Run(ctx, tui.Config{
		Session: session,
		Save:    store.SaveSession,
		ExportPDF: func(s *model.Session) (string, error) {
			data, err := renderer.Render(s)
			if err != nil {
				return "", err
			}
			name := export.Filename(s, time.Now())
			if err := os.WriteFile(name, data, 0600); err != nil {
				return "", fmt.Errorf("failed to write PDF: %w", err)
			}
			return name, nil
		},
	})
}

// writePDF renders a session to the given directory or file path.
func writePDF(ctx context.Context, session *model.Session, out string) (string, error) {
	renderer := pdfRenderer(ctx)

	data, err := renderer.Render(session)
	if err != nil {
		return "", err
	}

	path := out
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		path = filepath.Join(out, export.Filename(session, time.Now()))
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}
	return path, nil
}
