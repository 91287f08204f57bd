package main

import (
	"os"

	"github.com/rs/zerolog"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

func main() {
	deps := defaultDependencies()
	if err := newRootCommand(deps).Execute(); err != nil {
		logAndExit(newLogger(deps.Stderr, false), err)
	}
}

func logAndExit(logger zerolog.Logger, err error) {
	if err != nil {
		logger.Error().Err(err).Msg("tabled failed")
		exitFunc(1)
	}
}
