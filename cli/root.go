package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lukehollenback/cobinhood/config"
	"github.com/lukehollenback/cobinhood/exchange/cobinhood"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by every command: the resolved configuration and the client built
// from it.
type app struct {
	v          *viper.Viper
	configFile string
	client     *cobinhood.Client
}

// NewRootCommand builds the complete command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "cobinhood",
		Short:         "Query and trade on the Cobinhood exchange",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.client == nil {
				return nil
			}
			return a.client.Close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (yaml, json or toml)")
	flags.String("api-key", "", "API key for the trading and wallet commands")
	flags.Bool("console-log", false, "log every request to standard output")
	flags.String("log-file", "", "file to append the request log to")
	flags.String("base-url", "", "API base URL")

	_ = a.v.BindPFlag(config.KeyAPIKey, flags.Lookup("api-key"))
	_ = a.v.BindPFlag(config.KeyConsoleLog, flags.Lookup("console-log"))
	_ = a.v.BindPFlag(config.KeyLogFile, flags.Lookup("log-file"))
	_ = a.v.BindPFlag(config.KeyBaseURL, flags.Lookup("base-url"))

	root.AddCommand(
		a.systemCommand(),
		a.marketCommand(),
		a.chartCommand(),
		a.tradingCommand(),
		a.walletCommand(),
	)

	return root
}

func (a *app) connect() error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	a.client, err = cobinhood.New(cfg.ClientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to build client: %w", err)
	}

	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
