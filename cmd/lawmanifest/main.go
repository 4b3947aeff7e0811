package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/lawextract/internal/app"
)

// lawmanifest indexes the JSON artifacts of a directory into manifest.json.
func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s <dir>\n", os.Args[0])
	}
	flag.Parse()

	cfg := app.Config{InputDir: flag.Arg(0)}
	app.ApplyEnvToConfig(&cfg)
	if cfg.InputDir == "" {
		flag.Usage()
		os.Exit(2)
	}

	path, m, err := app.WriteManifest(cfg.InputDir, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Print(app.RenderManifestText(m))
	log.Info().Str("out", path).Msg("wrote manifest")
}
