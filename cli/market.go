package cli

import (
	"github.com/lukehollenback/cobinhood/exchange/cobinhood"
	"github.com/spf13/cobra"
)

func (a *app) marketCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "market", Short: "Public market data"}

	var limit int

	orderBook := &cobra.Command{
		Use:   "orderbook PAIR",
		Short: "Show the order book of a trading pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.client.GetOrderBook(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), book)
		},
	}
	orderBook.Flags().IntVar(&limit, "limit", cobinhood.DefaultOrderBookLimit, "price levels per side")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "currencies",
			Short: "List the currencies",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				currencies, err := a.client.GetCurrencies(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), currencies)
			},
		},
		&cobra.Command{
			Use:   "pairs",
			Short: "List the trading pairs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				pairs, err := a.client.GetTradingPairs(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), pairs)
			},
		},
		orderBook,
		&cobra.Command{
			Use:   "stats",
			Short: "Show 24 hour statistics of every trading pair",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				stats, err := a.client.GetMarketStats(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), stats)
			},
		},
		&cobra.Command{
			Use:   "prices",
			Short: "Show the last price of every trading pair",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				prices, err := a.client.GetAllLastPrices(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), prices)
			},
		},
		&cobra.Command{
			Use:   "ticker PAIR",
			Short: "Show the ticker of a trading pair",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ticker, err := a.client.GetTicker(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), ticker)
			},
		},
		&cobra.Command{
			Use:   "trades PAIR",
			Short: "Show the recent trades of a trading pair",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				trades, err := a.client.GetRecentTrades(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), trades)
			},
		},
	)

	return cmd
}
