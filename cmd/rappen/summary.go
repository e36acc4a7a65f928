package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/rappen-dev/rappen/internal/cli"
	"github.com/rappen-dev/rappen/internal/model"
	"github.com/rappen-dev/rappen/internal/service"
	"github.com/rappen-dev/rappen/internal/summary"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize transactions by year, month, or day",
	}

	cmd.AddCommand(summaryYearCmd())
	cmd.AddCommand(summaryMonthCmd())
	cmd.AddCommand(summaryDayCmd())

	return cmd
}

func summaryYearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "year [year]",
		Short: "Monthly income and spending, optionally limited to one year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			filter := service.TransactionFilter{SortBy: "date"}
			if len(args) == 1 {
				filter.YearKey = args[0]
			}

			transactions, err := store.ListTransactions(ctx, filter)
			if err != nil {
				return fmt.Errorf("failed to fetch transactions: %w", err)
			}

			printBuckets("Monthly summary", summary.ByMonth(transactions), false)
			return nil
		},
	}
}

func summaryMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month <year> <month>",
		Short: "Daily income and spending for one month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			month, err := strconv.Atoi(args[1])
			if err != nil || month < 1 || month > 12 {
				return fmt.Errorf("invalid month: %s", args[1])
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			monthKey := fmt.Sprintf("%s-%02d", args[0], month)
			transactions, err := store.ListTransactions(ctx, service.TransactionFilter{MonthKey: monthKey})
			if err != nil {
				return fmt.Errorf("failed to fetch transactions: %w", err)
			}

			printBuckets("Daily summary for "+monthKey, summary.ByDay(transactions), true)
			printCategories(transactions)
			return nil
		},
	}
}

func summaryDayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day <year> <month> <day>",
		Short: "All transactions for one day",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			month, err := strconv.Atoi(args[1])
			if err != nil || month < 1 || month > 12 {
				return fmt.Errorf("invalid month: %s", args[1])
			}
			day, err := strconv.Atoi(args[2])
			if err != nil || day < 1 || day > 31 {
				return fmt.Errorf("invalid day: %s", args[2])
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			dayKey := fmt.Sprintf("%s-%02d-%02d", args[0], month, day)
			transactions, err := store.ListTransactions(ctx, service.TransactionFilter{DayKey: dayKey})
			if err != nil {
				return fmt.Errorf("failed to fetch transactions: %w", err)
			}

			bucket := summary.Fold(dayKey, "", transactions, true)
			printBuckets("Summary for "+dayKey, []model.BucketSummary{bucket}, true)

			if len(transactions) == 0 {
				return nil
			}

			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "AMOUNT\tCATEGORY\tBOOKING TEXT")
			for _, tx := range transactions {
				amount := cli.AmountDebitStyle.Render(fmt.Sprintf("%.2f", -tx.Amount))
				if tx.Type == model.TypeCredit {
					amount = cli.AmountCreditStyle.Render(fmt.Sprintf("%.2f", tx.Amount))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", amount, tx.Category, tx.BookingText)
			}
			return w.Flush()
		},
	}
}

func printBuckets(title string, buckets []model.BucketSummary, withBalance bool) {
	fmt.Println(cli.TitleStyle.Render(title))

	if len(buckets) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No transactions found."))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	header := "PERIOD\tINCOME\tOUTCOME\tSAVED\tSAVINGS MVMT\tTXNS"
	if withBalance {
		header += "\tBALANCE"
	}
	fmt.Fprintln(w, header)

	for _, b := range buckets {
		label := b.Label
		if label == "" {
			label = b.Key
		}
		row := fmt.Sprintf("%s\t%.2f\t%.2f\t%.2f\t%.2f\t%d",
			label, b.Income, b.Outcome, b.Savings, b.SavingsMovement, b.TransactionCount)
		if withBalance {
			if b.Balance != nil {
				row += fmt.Sprintf("\t%.2f", *b.Balance)
			} else {
				row += "\t-"
			}
		}
		fmt.Fprintln(w, row)
	}
	_ = w.Flush()
}

func printCategories(transactions []model.Transaction) {
	categories, total := summary.ByCategory(transactions)
	if len(categories) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Spending by category (%.2f total)", total)))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tTOTAL\tCOUNT\tSHARE")
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%.2f\t%d\t%d%%\n", c.Category, c.Total, c.Count, c.Percentage)
	}
	_ = w.Flush()
}
