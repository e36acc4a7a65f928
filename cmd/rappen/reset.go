package main

import (
	"fmt"

	"github.com/rappen-dev/rappen/internal/cli"
	"github.com/rappen-dev/rappen/internal/service"
	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	var (
		year  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete stored transactions",
		Long: `Reset deletes stored transactions, either everything or a single year.
This is a destructive operation; imported statements can be re-imported
from their CSV files afterwards.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			count, err := store.CountTransactions(ctx, service.TransactionFilter{YearKey: year})
			if err != nil {
				return fmt.Errorf("failed to count transactions: %w", err)
			}
			if count == 0 {
				fmt.Println("No transactions found. Nothing to reset.")
				return nil
			}

			if !force {
				scope := "all years"
				if year != "" {
					scope = "year " + year
				}
				fmt.Println(cli.WarningStyle.Render(
					fmt.Sprintf("This will delete %d transactions (%s).", count, scope)))
				fmt.Print("\nAre you sure you want to continue? [y/N]: ")

				var response string
				if _, err := fmt.Scanln(&response); err != nil {
					response = ""
				}
				if response != "y" && response != "Y" {
					fmt.Println("Reset canceled.")
					return nil
				}
			}

			deleted, err := store.DeleteTransactions(ctx, year)
			if err != nil {
				return fmt.Errorf("failed to delete transactions: %w", err)
			}

			fmt.Printf("%s Deleted %d transactions\n", cli.SuccessStyle.Render("✓"), deleted)
			return nil
		},
	}

	cmd.Flags().StringVar(&year, "year", "", "Only delete transactions from this year")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
