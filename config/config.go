package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lukehollenback/cobinhood/constants"
	"github.com/lukehollenback/cobinhood/exchange/cobinhood"
	"github.com/spf13/viper"
)

const (
	KeyAPIKey     = "api_key"
	KeyConsoleLog = "console_log"
	KeyLogFile    = "log_file"
	KeyBaseURL    = "base_url"
)

// Config holds everything needed to build a client from the command line.
type Config struct {
	APIKey     string `mapstructure:"api_key"`
	ConsoleLog bool   `mapstructure:"console_log"`
	LogFile    string `mapstructure:"log_file"`
	BaseURL    string `mapstructure:"base_url"`
}

// LoadDotEnv exports the variables of a .env file, if there is one. Variables that are already set
// win.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return godotenv.Load(path)
}

// Load resolves the configuration from (highest precedence first) whatever flags were bound to v,
// COBINHOOD_* environment variables, the config file (if configFile is non-empty) and the defaults.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	v.SetDefault(KeyAPIKey, "")
	v.SetDefault(KeyConsoleLog, false)
	v.SetDefault(KeyLogFile, constants.DefaultLogFile)
	v.SetDefault(KeyBaseURL, cobinhood.BaseURL)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ClientOptions translates the configuration into client options. An empty log file disables the
// file sink.
func (c *Config) ClientOptions() []cobinhood.Option {
	opts := []cobinhood.Option{
		cobinhood.WithConsoleLog(c.ConsoleLog),
	}

	if c.APIKey != "" {
		opts = append(opts, cobinhood.WithAPIKey(c.APIKey))
	}

	if c.LogFile == "" {
		opts = append(opts, cobinhood.WithoutLogFile())
	} else {
		opts = append(opts, cobinhood.WithLogFile(c.LogFile))
	}

	if c.BaseURL != "" {
		opts = append(opts, cobinhood.WithBaseURL(c.BaseURL))
	}

	return opts
}
