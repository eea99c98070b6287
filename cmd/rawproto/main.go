package main

import (
	"fmt"
	"os"

	"github.com/anirudhraja/rawproto/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	log := logging.ConfigureRuntime()

	if err := newRootCmd().Execute(); err != nil {
		log.Debug().Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
