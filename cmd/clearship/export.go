package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/harborline/clear-to-ship/internal/cli"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <session-id>",
		Short: "Export a saved session as a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid session id %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			session, err := getSession(ctx, store, id)
			if err != nil {
				return err
			}

			if out == "" {
				out = "."
			}
			path, err := writePDF(ctx, session, out)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("PDF written to %s", path)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output directory or file (default: current directory)")

	return cmd
}
