package cli

import (
	"fmt"
	"time"

	"github.com/lukehollenback/cobinhood/exchange"
	"github.com/lukehollenback/cobinhood/exchange/cobinhood"
	"github.com/spf13/cobra"
)

func (a *app) chartCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "chart", Short: "Chart data"}

	var timeframe, start, end string

	candles := &cobra.Command{
		Use:   "candles PAIR",
		Short: "Show the candles of a trading pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tf, ok := exchange.ParseTimeframe(timeframe)
			if !ok {
				return fmt.Errorf("unknown timeframe %q", timeframe)
			}

			startTime, err := parseTime(start)
			if err != nil {
				return err
			}

			endTime, err := parseTime(end)
			if err != nil {
				return err
			}

			result, err := a.client.GetCandles(cmd.Context(), args[0], tf, startTime, endTime)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	flags := candles.Flags()
	flags.StringVar(&timeframe, "timeframe", cobinhood.DefaultTimeframe.String(), "one of 1m 5m 15m 30m 1h 3h 6h 12h 1D 7D 14D 1M")
	flags.StringVar(&start, "start", "", "start of the range (RFC 3339)")
	flags.StringVar(&end, "end", "", "end of the range (RFC 3339)")

	cmd.AddCommand(candles)

	return cmd
}

// parseTime maps an empty string to the zero time, which leaves the filter off.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339, s)
}
