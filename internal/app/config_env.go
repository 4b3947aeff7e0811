package app

import (
	"os"
	"strings"
)

// Environment variables recognized by the CLI.
const (
	EnvInputDir        = "LAWEXTRACT_INPUT_DIR"
	EnvPatterns        = "LAWEXTRACT_PATTERNS"
	EnvRecursive       = "LAWEXTRACT_RECURSIVE"
	EnvFallbackCharset = "LAWEXTRACT_FALLBACK_CHARSET"
	EnvHeadingClass    = "LAWEXTRACT_HEADING_CLASS"
	EnvKeyword         = "LAWEXTRACT_KEYWORD"
	EnvManifest        = "LAWEXTRACT_MANIFEST"
	EnvPDF             = "LAWEXTRACT_PDF"
	EnvPDFFont         = "LAWEXTRACT_PDF_FONT"
	EnvVerbose         = "VERBOSE"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	setString := func(dst *string, envKey string) {
		if *dst == "" {
			*dst = strings.TrimSpace(os.Getenv(envKey))
		}
	}
	setString(&cfg.InputDir, EnvInputDir)
	setString(&cfg.FallbackCharset, EnvFallbackCharset)
	setString(&cfg.HeadingClass, EnvHeadingClass)
	setString(&cfg.Keyword, EnvKeyword)
	setString(&cfg.PDFFont, EnvPDFFont)
	if len(cfg.Patterns) == 0 {
		if v := os.Getenv(EnvPatterns); strings.TrimSpace(v) != "" {
			cfg.Patterns = ParsePatterns(v)
		}
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		if v, ok := parseBool(os.Getenv(envKey)); ok && v {
			*dst = true
		}
	}
	setBool(&cfg.Recursive, EnvRecursive)
	setBool(&cfg.WriteManifest, EnvManifest)
	setBool(&cfg.EnablePDF, EnvPDF)
	setBool(&cfg.Verbose, EnvVerbose)
}

// ApplyEnvOverrides forcefully overrides cfg fields with environment variables
// when they are set. Used so env beats a config file while flags still win.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}
	setString := func(dst *string, envKey string) {
		if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
			*dst = v
		}
	}
	setString(&cfg.InputDir, EnvInputDir)
	setString(&cfg.FallbackCharset, EnvFallbackCharset)
	setString(&cfg.HeadingClass, EnvHeadingClass)
	setString(&cfg.Keyword, EnvKeyword)
	setString(&cfg.PDFFont, EnvPDFFont)
	if v := os.Getenv(EnvPatterns); strings.TrimSpace(v) != "" {
		cfg.Patterns = ParsePatterns(v)
	}

	// Booleans override when env present and truthy/falsey
	setBool := func(dst *bool, envKey string) {
		if v, ok := parseBool(os.Getenv(envKey)); ok {
			*dst = v
		}
	}
	setBool(&cfg.Recursive, EnvRecursive)
	setBool(&cfg.WriteManifest, EnvManifest)
	setBool(&cfg.EnablePDF, EnvPDF)
	setBool(&cfg.Verbose, EnvVerbose)
}

func parseBool(s string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}
