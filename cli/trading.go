package cli

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/cobinhood/exchange"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (a *app) tradingCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "trading", Short: "Orders and trades (requires an API key)"}

	var pair string

	orders := &cobra.Command{
		Use:   "orders",
		Short: "List the open orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.client.GetOrders(cmd.Context(), pair)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	history := &cobra.Command{
		Use:   "history",
		Short: "List the closed orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.client.GetOrderHistory(cmd.Context(), pair)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	trades := &cobra.Command{
		Use:   "trades",
		Short: "List the account's trades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.client.GetTradeHistory(cmd.Context(), pair)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	for _, c := range []*cobra.Command{orders, history, trades} {
		c.Flags().StringVar(&pair, "pair", "", "only show this trading pair")
	}

	cmd.AddCommand(
		orders,
		history,
		trades,
		&cobra.Command{
			Use:   "order ID",
			Short: "Show an order",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := a.client.GetOrder(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			},
		},
		&cobra.Command{
			Use:   "order-trades ID",
			Short: "List the trades that filled an order",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := a.client.GetOrderTrades(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			},
		},
		&cobra.Command{
			Use:   "trade ID",
			Short: "Show a trade",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := a.client.GetTrade(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			},
		},
		&cobra.Command{
			Use:   "place PAIR SIDE TYPE SIZE [PRICE]",
			Short: "Place an order",
			Args:  cobra.RangeArgs(4, 5),
			RunE: func(cmd *cobra.Command, args []string) error {
				side, ok := exchange.ParseSide(args[1])
				if !ok {
					return fmt.Errorf("unknown side %q", args[1])
				}

				orderType, ok := exchange.ParseOrderType(args[2])
				if !ok {
					return fmt.Errorf("unknown order type %q", args[2])
				}

				size, err := decimal.NewFromString(args[3])
				if err != nil {
					return fmt.Errorf("invalid size %q: %w", args[3], err)
				}

				var price decimal.NullDecimal

				if len(args) == 5 {
					if price.Decimal, err = decimal.NewFromString(args[4]); err != nil {
						return fmt.Errorf("invalid price %q: %w", args[4], err)
					}
					price.Valid = true
				}

				result, err := a.client.PlaceOrder(cmd.Context(), args[0], side, orderType, size, price)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			},
		},
		&cobra.Command{
			Use:   "modify ID SIZE PRICE",
			Short: "Change the size and price of an open order",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				size, err := decimal.NewFromString(args[1])
				if err != nil {
					return fmt.Errorf("invalid size %q: %w", args[1], err)
				}

				price, err := decimal.NewFromString(args[2])
				if err != nil {
					return fmt.Errorf("invalid price %q: %w", args[2], err)
				}

				ok, err := a.client.ModifyOrder(cmd.Context(), args[0], size, price)
				if err != nil {
					return err
				}
				printOutcome(cmd.OutOrStdout(), ok)
				return nil
			},
		},
		&cobra.Command{
			Use:   "cancel ID",
			Short: "Cancel an open order",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ok, err := a.client.CancelOrder(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printOutcome(cmd.OutOrStdout(), ok)
				return nil
			},
		},
	)

	return cmd
}

func printOutcome(w io.Writer, ok bool) {
	if ok {
		fmt.Fprintln(w, aurora.Bold(aurora.Green("accepted")))
		return
	}

	fmt.Fprintln(w, aurora.Bold(aurora.Red("rejected")))
}
