package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/harborline/clear-to-ship/internal/cli"
	"github.com/harborline/clear-to-ship/internal/export"
	"github.com/spf13/cobra"
)

func sessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage saved checklist sessions",
		Long:  `List, show, resume, and delete checklist sessions saved from the interactive grid.`,
	}

	cmd.AddCommand(listSessionsCmd())
	cmd.AddCommand(showSessionCmd())
	cmd.AddCommand(resumeSessionCmd())
	cmd.AddCommand(deleteSessionCmd())

	return cmd
}

func listSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			summaries, err := store.ListSessions(ctx)
			if err != nil {
				return err
			}

			if len(summaries) == 0 {
				fmt.Println(cli.InfoStyle.Render("No saved sessions. Use 'clearship checklist --interactive' and press 's' to save one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Selection"),
				cli.TableHeaderStyle.Render("Reference"),
				cli.TableHeaderStyle.Render("Rows"),
				cli.TableHeaderStyle.Render("Updated"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 36),
				strings.Repeat("-", 40),
				strings.Repeat("-", 12),
				strings.Repeat("-", 4),
				strings.Repeat("-", 16))

			for _, s := range summaries {
				ref := s.Reference
				if ref == "" {
					ref = cli.SubtleStyle.Render("(none)")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					s.ID, s.Selection, ref, s.RowCount,
					s.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}

			return nil
		},
	}
}

func showSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved session",
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

			return export.RenderText(os.Stdout, session)
		},
	}
}

func resumeSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume <id>",
		Short: "Reopen a saved session in the interactive grid",
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

			edited, err := runInteractive(ctx, session)
			if err != nil {
				return err
			}

			return export.RenderText(os.Stdout, edited)
		},
	}
}

func deleteSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved session",
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

			if err := store.DeleteSession(ctx, id); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted session %s", id)))
			return nil
		},
	}
}
