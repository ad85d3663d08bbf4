package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func (a *app) walletCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "wallet", Short: "Balances, deposits and withdrawals (requires an API key)"}

	var currency string

	// Every listing command takes the same optional currency filter, so they are generated from a
	// single table.
	listings := []struct {
		use   string
		short string
		fetch func(ctx context.Context, currency string) (interface{}, error)
	}{
		{"ledger", "List balance movements", func(ctx context.Context, c string) (interface{}, error) {
			return a.client.GetLedger(ctx, c)
		}},
		{"deposit-addresses", "List deposit addresses", func(ctx context.Context, c string) (interface{}, error) {
			return a.client.GetDepositAddresses(ctx, c)
		}},
		{"withdrawal-addresses", "List withdrawal addresses", func(ctx context.Context, c string) (interface{}, error) {
			return a.client.GetWithdrawalAddresses(ctx, c)
		}},
		{"deposits", "List deposits", func(ctx context.Context, c string) (interface{}, error) {
			return a.client.GetDeposits(ctx, c)
		}},
		{"withdrawals", "List withdrawals", func(ctx context.Context, c string) (interface{}, error) {
			return a.client.GetWithdrawals(ctx, c)
		}},
	}

	for _, l := range listings {
		fetch := l.fetch

		c := &cobra.Command{
			Use:   l.use,
			Short: l.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				result, err := fetch(cmd.Context(), currency)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			},
		}
		c.Flags().StringVar(&currency, "currency", "", "only show this currency")

		cmd.AddCommand(c)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "deposit ID",
			Short: "Show a deposit",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := a.client.GetDeposit(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			},
		},
		&cobra.Command{
			Use:   "withdrawal ID",
			Short: "Show a withdrawal",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := a.client.GetWithdrawal(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			},
		},
	)

	return cmd
}
