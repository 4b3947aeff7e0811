package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/lawextract/internal/extract"
)

// FileConfig represents the single-file configuration schema.
type FileConfig struct {
	Input     string   `yaml:"input" json:"input"`
	Patterns  []string `yaml:"patterns" json:"patterns"`
	Recursive bool     `yaml:"recursive" json:"recursive"`

	FallbackCharset string `yaml:"fallbackCharset" json:"fallbackCharset"`

	Heading struct {
		Class   string `yaml:"class" json:"class"`
		Keyword string `yaml:"keyword" json:"keyword"`
	} `yaml:"heading" json:"heading"`

	Manifest bool `yaml:"manifest" json:"manifest"`

	PDF struct {
		Enable bool   `yaml:"enable" json:"enable"`
		Font   string `yaml:"font" json:"font"`
	} `yaml:"pdf" json:"pdf"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset or still at their flag default. Explicit flags win.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputDir == "" && fc.Input != "" {
		cfg.InputDir = fc.Input
	}
	if (len(cfg.Patterns) == 0 || samePatterns(cfg.Patterns, ParsePatterns(DefaultPatterns))) && len(fc.Patterns) > 0 {
		cfg.Patterns = append([]string{}, fc.Patterns...)
	}
	if !cfg.Recursive && fc.Recursive {
		cfg.Recursive = true
	}
	if (cfg.FallbackCharset == "" || cfg.FallbackCharset == extract.DefaultFallbackCharset) && fc.FallbackCharset != "" {
		cfg.FallbackCharset = fc.FallbackCharset
	}
	if (cfg.HeadingClass == "" || cfg.HeadingClass == extract.DefaultHeadingClass) && fc.Heading.Class != "" {
		cfg.HeadingClass = fc.Heading.Class
	}
	if (cfg.Keyword == "" || cfg.Keyword == extract.DefaultKeyword) && fc.Heading.Keyword != "" {
		cfg.Keyword = fc.Heading.Keyword
	}
	if !cfg.WriteManifest && fc.Manifest {
		cfg.WriteManifest = true
	}
	if !cfg.EnablePDF && fc.PDF.Enable {
		cfg.EnablePDF = true
	}
	if cfg.PDFFont == "" && fc.PDF.Font != "" {
		cfg.PDFFont = fc.PDF.Font
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputDir) == "" {
		return errors.New("config: input directory is required")
	}
	for _, p := range cfg.Patterns {
		if _, err := filepath.Match(p, ""); err != nil {
			return fmt.Errorf("config: bad pattern %q: %w", p, err)
		}
	}
	// empty rule fields mean defaults; blank ones cannot match anything
	if cfg.HeadingClass != "" && strings.TrimSpace(cfg.HeadingClass) == "" {
		return errors.New("config: heading class must not be blank")
	}
	if cfg.Keyword != "" && strings.TrimSpace(cfg.Keyword) == "" {
		return errors.New("config: keyword must not be blank")
	}
	if cfg.EnablePDF && strings.TrimSpace(cfg.PDFFont) == "" {
		return errors.New("config: pdf output requires pdf.font (a UTF-8 TTF file)")
	}
	return nil
}

// ParsePatterns splits a comma-separated glob list, dropping blanks.
func ParsePatterns(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func samePatterns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
