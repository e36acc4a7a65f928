package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rappen-dev/rappen/internal/cli"
	"github.com/rappen-dev/rappen/internal/service"
	"github.com/rappen-dev/rappen/internal/zkb"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var (
		year   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as a statement-format CSV",
		Long: `Export writes stored transactions back out in the statement format
(semicolon-delimited, Swiss dates and numbers) with a trailing Category
column. The file re-imports cleanly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, year, output)
		},
	}

	cmd.Flags().StringVarP(&year, "year", "y", "", "Only export transactions from this year")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: transactions_export[_year]_<date>.csv)")

	return cmd
}

func runExport(cmd *cobra.Command, year, output string) error {
	ctx := cmd.Context()

	store, err := initStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	transactions, err := store.ListTransactions(ctx, service.TransactionFilter{YearKey: year})
	if err != nil {
		return fmt.Errorf("failed to fetch transactions: %w", err)
	}
	if len(transactions) == 0 {
		return fmt.Errorf("no transactions to export")
	}

	if output == "" {
		suffix := ""
		if year != "" {
			suffix = "_" + year
		}
		output = fmt.Sprintf("transactions_export%s_%s.csv", suffix, time.Now().Format("2006-01-02"))
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}

	if err := zkb.Export(f, transactions); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Printf("%s Exported %d transactions to %s\n",
		cli.SuccessStyle.Render("✓"), len(transactions), cli.BoldStyle.Render(output))

	return nil
}
