package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/lawextract/internal/extract"
)

// ErrInputDirNotFound is returned when the input directory does not exist.
// It is the only fatal condition of a batch run.
var ErrInputDirNotFound = errors.New("input directory not found")

type App struct {
	cfg       Config
	extractor extract.Extractor
	out       io.Writer
	now       func() time.Time
}

// Summary reports the outcome of a batch run.
type Summary struct {
	Processed int
	Failed    int
	Articles  int
}

func New(ctx context.Context, cfg Config) (*App, error) {
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = ParsePatterns(DefaultPatterns)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if err := checkInputDir(cfg.InputDir); err != nil {
		return nil, err
	}
	ex := extract.NewRuleExtractor(cfg.Rules())
	a := &App{
		cfg:       cfg,
		extractor: ex,
		out:       cfg.Out,
		now:       time.Now,
	}
	if a.out == nil {
		a.out = os.Stdout
	}
	rules := ex.Rules()
	log.Debug().Str("dir", cfg.InputDir).Strs("patterns", cfg.Patterns).Bool("recursive", cfg.Recursive).
		Str("heading_class", rules.HeadingClass).Str("keyword", rules.Keyword).Msg("configured")
	return a, nil
}

func (a *App) Close() {
	// nothing yet
}

// Run extracts every matching file in the input directory, one at a time.
// Per-file failures are logged and counted; they never stop the batch. Only
// discovery errors and context cancellation are returned.
func (a *App) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	inputs, err := discoverInputs(a.cfg.InputDir, a.cfg.Patterns, a.cfg.Recursive)
	if err != nil {
		return sum, err
	}
	if len(inputs) == 0 {
		log.Warn().Str("dir", a.cfg.InputDir).Strs("patterns", a.cfg.Patterns).Msg("no input files matched")
	}

	// artifact path -> input that produced it in this run
	written := make(map[string]string, len(inputs))
	for _, path := range inputs {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		name := displayName(a.cfg.InputDir, path)
		out := artifactPath(path)
		var n int
		err := a.checkCollision(out, written)
		if err == nil {
			n, err = a.processFile(path, out)
		}
		if err != nil {
			sum.Failed++
			log.Error().Err(err).Str("file", name).Msg("extraction failed; continuing")
			continue
		}
		written[out] = name
		sum.Processed++
		sum.Articles += n
		fmt.Fprintf(a.out, "%s: %d articles\n", name, n)
	}
	fmt.Fprintf(a.out, "Processed %d files\n", sum.Processed)
	if sum.Failed > 0 {
		log.Warn().Int("failed", sum.Failed).Msg("some files could not be extracted")
	}

	if a.cfg.WriteManifest {
		path, m, err := WriteManifest(a.cfg.InputDir, a.now())
		if err != nil {
			log.Error().Err(err).Msg("write manifest failed")
		} else {
			log.Info().Str("out", path).Int("files", len(m.Files)).Msg("wrote manifest")
		}
	}
	return sum, nil
}

// checkCollision rejects an artifact path that another input already wrote
// in this run, or that the manifest would overwrite.
func (a *App) checkCollision(out string, written map[string]string) error {
	if prev, ok := written[out]; ok {
		return fmt.Errorf("output %s already written for %s", filepath.Base(out), prev)
	}
	if a.cfg.WriteManifest && strings.EqualFold(filepath.Base(out), ManifestFileName) &&
		filepath.Clean(filepath.Dir(out)) == filepath.Clean(a.cfg.InputDir) {
		return fmt.Errorf("output %s is reserved for the manifest", ManifestFileName)
	}
	return nil
}

// processFile reads one export, extracts its articles and writes the
// sibling artifact to out. It returns the number of articles written.
func (a *App) processFile(path, out string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read input: %w", err)
	}
	doc, err := extract.DecodeDocument(raw, a.cfg.FallbackCharset)
	if err != nil {
		return 0, err
	}
	set := extract.ArticleSet{
		Source:      filepath.Base(path),
		ExtractedAt: a.now().UTC().Truncate(time.Second),
		Articles:    a.extractor.Extract(doc),
	}

	if err := writeArtifact(out, set); err != nil {
		return 0, fmt.Errorf("write output: %w", err)
	}
	log.Info().Str("file", set.Source).Int("articles", set.Articles.Len()).Str("out", out).Msg("extracted")

	if a.cfg.EnablePDF {
		pdfOut := siblingPath(path, PDFExt)
		if err := writeArticlesPDF(set, a.cfg.PDFFont, pdfOut); err != nil {
			log.Warn().Err(err).Str("file", set.Source).Msg("pdf rendering failed")
		} else {
			log.Debug().Str("out", pdfOut).Msg("wrote pdf")
		}
	}
	return set.Articles.Len(), nil
}

func checkInputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputDirNotFound, dir)
		}
		return fmt.Errorf("stat input dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}
