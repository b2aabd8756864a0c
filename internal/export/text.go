package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/harborline/clear-to-ship/internal/cli"
	"github.com/harborline/clear-to-ship/internal/model"
	"github.com/harborline/clear-to-ship/internal/resolve"
)

// RenderText writes a session as a terminal table with the computed status.
func RenderText(out io.Writer, session *model.Session) error {
	fmt.Fprintln(out, cli.TitleStyle.Render("MEA Shipment Checklist"))
	fmt.Fprintf(out, "%s\n\n", cli.SubtleStyle.Render(session.Selection.String()))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("Provided"),
		cli.TableHeaderStyle.Render("Document"),
		cli.TableHeaderStyle.Render("Mandatory"),
		cli.TableHeaderStyle.Render("Resp."),
		cli.TableHeaderStyle.Render("Legal."),
		cli.TableHeaderStyle.Render("Risk"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 8),
		strings.Repeat("-", 40),
		strings.Repeat("-", 11),
		strings.Repeat("-", 8),
		strings.Repeat("-", 12),
		strings.Repeat("-", 8))

	for _, row := range session.Rows {
		provided := "[ ]"
		if row.Provided {
			provided = "[x]"
		}

		risk := string(row.RiskFlag)
		if row.RiskFlag == model.RiskFlagSanctions {
			risk = cli.ErrorStyle.Render("Sanctions")
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			provided,
			row.Requirement.Document,
			string(row.Requirement.Mandatory),
			string(row.Requirement.Responsibility),
			string(row.Legalization),
			risk)

		if row.Requirement.Notes != "" {
			fmt.Fprintf(w, "\t%s\t\t\t\t\n", cli.SubtleStyle.Render(row.Requirement.Notes))
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to render checklist: %w", err)
	}

	status := resolve.ComputeStatus(session.Rows)
	style := cli.StatusStyle(status.State == model.Ready, status.State == model.NoMandatoryDocs)
	fmt.Fprintf(out, "\n%s %s\n", cli.BoldStyle.Render("Ready to Ship?"), style.Render(status.String()))

	return nil
}
