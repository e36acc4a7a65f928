package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rappen-dev/rappen/internal/cli"
	"github.com/rappen-dev/rappen/internal/common"
	"github.com/rappen-dev/rappen/internal/importer"
	"github.com/rappen-dev/rappen/internal/model"
	"github.com/rappen-dev/rappen/internal/zkb"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file.csv> [file.csv...]",
		Short: "Import ZKB statement CSV files",
		Long: `Import reads one or more ZKB account statement exports, normalizes the
Swiss-locale dates and numbers, categorizes every transaction, and stores
each file as its own batch. Rows already present (matched by the bank's
reference) are skipped, so re-importing a file is safe.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and categorize without writing to the database")

	return cmd
}

func runImport(cmd *cobra.Command, args []string, dryRun bool) error {
	ctx := cmd.Context()

	store, err := initStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	categorizer := newCategorizer()
	parser := zkb.NewParser(categorizer)

	if dryRun {
		return runImportDryRun(parser, args)
	}

	imp := importer.New(parser, store)

	bar := progressbar.NewOptions(len(args),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing statements..."),
	)

	totalImported, totalSkipped := 0, 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		result, err := imp.Import(ctx, data)
		if err != nil {
			if errors.Is(err, common.ErrEmptyImport) {
				return common.NewUserError(fmt.Sprintf("%s contains no valid transactions", path), err)
			}
			return fmt.Errorf("failed to import %s: %w", path, err)
		}

		totalImported += result.Imported
		totalSkipped += result.Skipped
		_ = bar.Add(1)

		fmt.Printf("\n%s %s: %s imported, %s skipped (batch %s)\n",
			cli.SuccessStyle.Render("✓"),
			path,
			cli.BoldStyle.Render(fmt.Sprintf("%d", result.Imported)),
			cli.SubtleStyle.Render(fmt.Sprintf("%d", result.Skipped)),
			cli.SubtleStyle.Render(result.BatchID))
	}

	fmt.Printf("\n%s\n", cli.TitleStyle.Render(
		fmt.Sprintf("Imported %d transactions (%d skipped) from %d file(s)", totalImported, totalSkipped, len(args))))

	return nil
}

func runImportDryRun(parser *zkb.Parser, args []string) error {
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		transactions, err := parser.Parse(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		fmt.Printf("%s: %d transactions\n", path, len(transactions))
		for _, tx := range transactions {
			amount := cli.AmountDebitStyle.Render(fmt.Sprintf("%10.2f", -tx.Amount))
			if tx.Type == model.TypeCredit {
				amount = cli.AmountCreditStyle.Render(fmt.Sprintf("%10.2f", tx.Amount))
			}
			fmt.Printf("  %s  %s  %-20s  %s\n",
				tx.Date.Format("02.01.2006"), amount, tx.Category, tx.BookingText)
		}
	}
	return nil
}
