package app

import (
	"io"

	"github.com/hyperifyio/lawextract/internal/extract"
)

// Defaults shared by flags, file config and validation.
const (
	DefaultPatterns  = "*.htm,*.html"
	ArtifactExt      = ".json"
	PDFExt           = ".pdf"
	ManifestFileName = "manifest.json"
)

// Config holds runtime configuration for the application.
type Config struct {
	// InputDir is the directory scanned for legal code exports.
	InputDir string
	// Patterns are filename globs matched against base names.
	Patterns  []string
	Recursive bool

	// Extraction
	FallbackCharset string
	HeadingClass    string
	Keyword         string

	// Outputs
	WriteManifest bool
	EnablePDF     bool
	PDFFont       string

	Verbose bool

	// Out receives the per-file summary lines; nil means os.Stdout.
	Out io.Writer
}

// Rules returns the extraction rules derived from cfg.
func (c Config) Rules() extract.Rules {
	r := extract.DefaultRules()
	if c.HeadingClass != "" {
		r.HeadingClass = c.HeadingClass
	}
	if c.Keyword != "" {
		r.Keyword = c.Keyword
	}
	return r
}
