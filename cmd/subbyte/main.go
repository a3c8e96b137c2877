package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	initLogger(os.Stderr)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("subbyte failed")
	}
}
