package main

import (
	"fmt"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/cobinhood/cli"
	"github.com/lukehollenback/cobinhood/config"
	"github.com/lukehollenback/cobinhood/constants"
)

func main() {
	logger := log.New(os.Stderr, fmt.Sprintf(constants.LogPrefixFmt, "≪"+constants.Name+"≫"), log.Ldate|log.Ltime|log.Lmsgprefix)

	// Pick up a .env file from the working directory before the configuration is resolved.
	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Fatalf("Failed to load .env file. (Error: %s)", err)
	}

	if err := cli.NewRootCommand().Execute(); err != nil {
		logger.Printf("%s", aurora.Red(err))
		os.Exit(1)
	}
}
