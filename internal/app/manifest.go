package app

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ManifestEntry is a compact record of one extraction artifact.
type ManifestEntry struct {
	File        string    `json:"file"`
	SourceFile  string    `json:"source_file"`
	Articles    int       `json:"articles"`
	ExtractedAt time.Time `json:"extracted_at"`
	SHA256      string    `json:"sha256"`
	Bytes       int       `json:"bytes"`
}

// Manifest indexes the artifacts of one directory.
type Manifest struct {
	GeneratedAt   time.Time       `json:"generated_at"`
	Version       string          `json:"version"`
	TotalArticles int             `json:"total_articles"`
	Files         []ManifestEntry `json:"files"`
}

// computeSHA256Hex returns a lowercase hex-encoded SHA-256 of b.
func computeSHA256Hex(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

// BuildManifest reads every artifact in dir. Files that do not decode as an
// artifact are logged and skipped. A missing dir is ErrInputDirNotFound.
func BuildManifest(dir string, now time.Time) (Manifest, error) {
	m := Manifest{GeneratedAt: now.UTC().Truncate(time.Second), Version: BuildVersion, Files: []ManifestEntry{}}
	if err := checkInputDir(dir); err != nil {
		return m, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return m, fmt.Errorf("list dir: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.EqualFold(filepath.Ext(name), ArtifactExt) || name == ManifestFileName {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("manifest: read failed; skipping")
			continue
		}
		set, err := readArtifact(b)
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("manifest: not an artifact; skipping")
			continue
		}
		m.Files = append(m.Files, ManifestEntry{
			File:        name,
			SourceFile:  set.Source,
			Articles:    set.Articles.Len(),
			ExtractedAt: set.ExtractedAt,
			SHA256:      computeSHA256Hex(b),
			Bytes:       len(b),
		})
		m.TotalArticles += set.Articles.Len()
	}
	sort.Slice(m.Files, func(i, j int) bool { return m.Files[i].File < m.Files[j].File })
	return m, nil
}

// WriteManifest builds the manifest for dir and writes it as manifest.json
// inside dir, returning the written path.
func WriteManifest(dir string, now time.Time) (string, Manifest, error) {
	m, err := BuildManifest(dir, now)
	if err != nil {
		return "", m, err
	}
	path := filepath.Join(dir, ManifestFileName)
	if err := writeJSON(path, m); err != nil {
		return "", m, fmt.Errorf("write manifest: %w", err)
	}
	return path, m, nil
}

// RenderManifestText formats one line per artifact plus a total line.
func RenderManifestText(m Manifest) string {
	var b strings.Builder
	for _, e := range m.Files {
		b.WriteString(e.File)
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(e.Articles))
		b.WriteString(" articles; sha256=")
		b.WriteString(e.SHA256)
		b.WriteString("\n")
	}
	b.WriteString("Files: ")
	b.WriteString(strconv.Itoa(len(m.Files)))
	b.WriteString("; articles: ")
	b.WriteString(strconv.Itoa(m.TotalArticles))
	b.WriteString("\n")
	return b.String()
}
