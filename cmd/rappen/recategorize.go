package main

import (
	"fmt"

	"github.com/rappen-dev/rappen/internal/cli"
	"github.com/rappen-dev/rappen/internal/service"
	"github.com/spf13/cobra"
)

func recategorizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recategorize",
		Short: "Re-run categorization over stored transactions",
		Long: `Recategorize applies the current rule set to every automatically
categorized transaction. Manually assigned categories are never touched.
The configured account holder name (see 'rappen settings') is used to
recognize transfers to your own savings account.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			userFullName, err := store.GetUserFullName(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			categorizer := newCategorizer()

			transactions, err := store.ListTransactions(ctx, service.TransactionFilter{AutoOnly: true})
			if err != nil {
				return fmt.Errorf("failed to fetch transactions: %w", err)
			}

			updated := 0
			for _, tx := range transactions {
				category := categorizer.Categorize(tx.BookingText, tx.PaymentPurpose, tx.Type, userFullName)
				if category == tx.Category {
					continue
				}
				if err := store.UpdateTransactionCategory(ctx, tx.ID, category, false); err != nil {
					return fmt.Errorf("failed to update transaction %d: %w", tx.ID, err)
				}
				updated++
			}

			fmt.Printf("%s Recategorized %s of %d transactions\n",
				cli.SuccessStyle.Render("✓"),
				cli.BoldStyle.Render(fmt.Sprintf("%d", updated)),
				len(transactions))
			return nil
		},
	}
}
