package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hyperifyio/lawextract/internal/extract"
)

// discoverInputs lists files under dir whose base names match one of the
// patterns, case-insensitively, sorted by path.
func discoverInputs(dir string, patterns []string, recursive bool) ([]string, error) {
	var out []string
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("list input dir: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || !matchesAny(e.Name(), patterns) {
				continue
			}
			out = append(out, filepath.Join(dir, e.Name()))
		}
		sort.Strings(out)
		return out, nil
	}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !matchesAny(d.Name(), patterns) {
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk input dir: %w", err)
	}
	sort.Strings(out)
	return out, nil
}

func matchesAny(name string, patterns []string) bool {
	name = strings.ToLower(name)
	for _, p := range patterns {
		if ok, _ := filepath.Match(strings.ToLower(p), name); ok {
			return true
		}
	}
	return false
}

// artifactPath returns the JSON artifact path next to the input file.
func artifactPath(input string) string {
	return siblingPath(input, ArtifactExt)
}

// siblingPath swaps the extension of input for ext.
func siblingPath(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// displayName is the input path relative to the batch directory.
func displayName(dir, path string) string {
	if rel, err := filepath.Rel(dir, path); err == nil {
		return rel
	}
	return filepath.Base(path)
}

// writeArtifact encodes set as indented JSON without HTML escaping so the
// legal text stays readable.
func writeArtifact(path string, set extract.ArticleSet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(set); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// readArtifact decodes a JSON artifact written by writeArtifact.
func readArtifact(b []byte) (extract.ArticleSet, error) {
	var set extract.ArticleSet
	if err := json.Unmarshal(b, &set); err != nil {
		return set, err
	}
	if strings.TrimSpace(set.Source) == "" {
		return set, errors.New("missing source_file")
	}
	return set, nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
