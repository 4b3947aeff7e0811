package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/lawextract/internal/app"
	"github.com/hyperifyio/lawextract/internal/extract"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath      string
		envFiles        string
		patterns        string
		recursive       bool
		fallbackCharset string
		headingClass    string
		keyword         string
		writeManifest   bool
		enablePDF       bool
		pdfFont         string
		verbose         bool
		showVersion     bool
	)

	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.StringVar(&envFiles, "env", ".env", "Comma-separated dotenv files to load before reading the environment")
	flag.StringVar(&patterns, "glob", app.DefaultPatterns, "Comma-separated filename patterns of input exports")
	flag.BoolVar(&recursive, "recursive", false, "Descend into subdirectories")
	flag.StringVar(&fallbackCharset, "fallback-charset", extract.DefaultFallbackCharset, "Charset for non-UTF-8 exports without a declared encoding")
	flag.StringVar(&headingClass, "heading-class", extract.DefaultHeadingClass, "Style class of article heading spans")
	flag.StringVar(&keyword, "keyword", extract.DefaultKeyword, "Word that starts every article heading")
	flag.BoolVar(&writeManifest, "manifest", false, "Write manifest.json into the directory after the batch")
	flag.BoolVar(&enablePDF, "enable.pdf", false, "Also render each article set to a sibling PDF")
	flag.StringVar(&pdfFont, "pdf.font", "", "UTF-8 TrueType font used for PDF output")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("lawextract %s (%s)\n", app.BuildVersion, app.BuildCommit)
		return
	}

	if err := checkRuleFlags(headingClass, keyword); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}

	if err := app.LoadEnvFiles(strings.Split(envFiles, ",")...); err != nil {
		log.Fatal().Err(err).Msg("load env files")
	}

	cfg := app.Config{
		InputDir:        flag.Arg(0),
		Patterns:        app.ParsePatterns(patterns),
		Recursive:       recursive,
		FallbackCharset: fallbackCharset,
		HeadingClass:    headingClass,
		Keyword:         keyword,
		WriteManifest:   writeManifest,
		EnablePDF:       enablePDF,
		PDFFont:         pdfFont,
		Verbose:         verbose,
	}

	// Precedence: flags > env > config file > defaults
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load config")
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	applyEnvBelowFlags(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		if errors.Is(err, app.ErrInputDirNotFound) {
			fmt.Fprintln(os.Stderr, "error:", err)
		} else {
			log.Error().Err(err).Msg("run failed")
		}
		os.Exit(1)
	}
}

// checkRuleFlags rejects rule flags explicitly set to an empty value. The
// flag defaults are non-empty, so an empty value only comes from the user.
func checkRuleFlags(headingClass, keyword string) error {
	if strings.TrimSpace(headingClass) == "" {
		return errors.New("-heading-class must not be empty")
	}
	if strings.TrimSpace(keyword) == "" {
		return errors.New("-keyword must not be empty")
	}
	return nil
}

// applyEnvBelowFlags lets the environment override config file values
// without touching settings given explicitly on the command line.
func applyEnvBelowFlags(cfg *app.Config) {
	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	saved := *cfg
	app.ApplyEnvOverrides(cfg)
	if flag.NArg() > 0 {
		cfg.InputDir = saved.InputDir
	}
	restore := map[string]func(){
		"glob":             func() { cfg.Patterns = saved.Patterns },
		"recursive":        func() { cfg.Recursive = saved.Recursive },
		"fallback-charset": func() { cfg.FallbackCharset = saved.FallbackCharset },
		"heading-class":    func() { cfg.HeadingClass = saved.HeadingClass },
		"keyword":          func() { cfg.Keyword = saved.Keyword },
		"manifest":         func() { cfg.WriteManifest = saved.WriteManifest },
		"enable.pdf":       func() { cfg.EnablePDF = saved.EnablePDF },
		"pdf.font":         func() { cfg.PDFFont = saved.PDFFont },
		"v":                func() { cfg.Verbose = saved.Verbose },
	}
	for name, fn := range restore {
		if explicit[name] {
			fn()
		}
	}
}

func run(cfg app.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	_, err = a.Run(ctx)
	return err
}
