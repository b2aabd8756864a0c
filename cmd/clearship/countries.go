package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/harborline/clear-to-ship/internal/cli"
	"github.com/spf13/cobra"
)

func countriesCmd() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List covered destination countries",
		Long:  `Display the canonical destination list with region, legalization, and sanctions attributes.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := loadRules("")
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Country"),
				cli.TableHeaderStyle.Render("Region"),
				cli.TableHeaderStyle.Render("Legalization"),
				cli.TableHeaderStyle.Render("Risk Flag"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 24),
				strings.Repeat("-", 12),
				strings.Repeat("-", 12),
				strings.Repeat("-", 10))

			for _, c := range store.Countries() {
				if region != "" && !strings.EqualFold(region, string(c.Region)) {
					continue
				}

				legalization := "As requested"
				if c.LegalizationLikely {
					legalization = cli.WarningStyle.Render("Likely")
				}

				risk := "None"
				if c.SanctionsFlag {
					risk = cli.ErrorStyle.Render("Sanctions screen")
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name, c.Region, legalization, risk)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "", `filter by region ("Middle East" or "Africa")`)

	return cmd
}
