package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) systemCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "system", Short: "Exchange status"}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "info",
			Short: "Show the exchange phase and revision",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				info, err := a.client.GetSystemInfo(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), info)
			},
		},
		&cobra.Command{
			Use:   "time",
			Short: "Show the exchange clock (Unix milliseconds)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				t, err := a.client.GetSystemTime(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), t)
			},
		},
	)

	return cmd
}
