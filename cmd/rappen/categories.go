package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rappen-dev/rappen/internal/cli"
	"github.com/rappen-dev/rappen/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	var showRules bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List known categories and their matching rules",
		RunE: func(_ *cobra.Command, _ []string) error {
			if !showRules {
				fmt.Println(cli.TitleStyle.Render("Categories"))
				for _, c := range model.Categories {
					fmt.Println("  " + string(c))
				}
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("Categorization rules (highest priority first)"))
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRIORITY\tCATEGORY\tPATTERNS")
			for _, rule := range newCategorizer().Rules() {
				fmt.Fprintf(w, "%d\t%s\t%s\n", rule.Priority, rule.Category, strings.Join(rule.Patterns, ", "))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&showRules, "rules", false, "Show the matching rules instead of the category list")

	return cmd
}
