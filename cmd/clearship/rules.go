package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/harborline/clear-to-ship/internal/cli"
	"github.com/harborline/clear-to-ship/internal/model"
	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:   "rules <country>",
		Short: "Show the full requirement table for a country",
		Long: `Display every document requirement applicable to a country before any
mode/commodity/incoterm filtering: the baseline set plus the country's own
additions, in resolution order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			country := args[0]

			store, err := loadRules(rulesFile)
			if err != nil {
				return err
			}

			specific, err := store.CountrySpecific(country)
			if err != nil {
				return err
			}

			legal, risk, err := store.Attributes(country)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(country))
			fmt.Printf("Legalization: %s    Risk: %s\n\n", legal, risk)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Document"),
				cli.TableHeaderStyle.Render("Mandatory"),
				cli.TableHeaderStyle.Render("Resp."),
				cli.TableHeaderStyle.Render("Mode"),
				cli.TableHeaderStyle.Render("Commodity"),
				cli.TableHeaderStyle.Render("Incoterm"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 40),
				strings.Repeat("-", 11),
				strings.Repeat("-", 8),
				strings.Repeat("-", 7),
				strings.Repeat("-", 18),
				strings.Repeat("-", 8))

			printReq := func(r model.DocumentRequirement) {
				mandatory := string(r.Mandatory)
				if r.Mandatory == model.MandatoryConditional {
					mandatory = cli.WarningStyle.Render(mandatory)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					r.Document, mandatory, r.Responsibility, r.Mode, r.Commodity, r.Incoterm)
			}

			for _, r := range store.Baseline() {
				printReq(r)
			}
			for _, r := range specific {
				printReq(r)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules-file", "", "YAML overlay with extra country-specific requirements")

	return cmd
}
