package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout).Execute(); err != nil {
		log.Error().Err(err).Msg("wordcheck failed")
		os.Exit(1)
	}
}
