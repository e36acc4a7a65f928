package main

import (
	"fmt"
	"strings"

	"github.com/rappen-dev/rappen/internal/cli"
	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View or change application settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			name, err := store.GetUserFullName(ctx)
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			if name == "" {
				fmt.Println(cli.SubtleStyle.Render("Account holder name is not set. Savings transfers will not be recognized."))
				return nil
			}
			fmt.Printf("Account holder name: %s\n", cli.BoldStyle.Render(name))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <full name>",
		Short: "Set the account holder name used to detect savings transfers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			name := strings.TrimSpace(strings.Join(args, " "))
			if err := store.SetUserFullName(ctx, name); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}

			fmt.Printf("%s Account holder name set to %s\n",
				cli.SuccessStyle.Render("✓"), cli.BoldStyle.Render(name))
			fmt.Println(cli.SubtleStyle.Render("Run 'rappen recategorize' to apply it to existing transactions."))
			return nil
		},
	})

	return cmd
}
