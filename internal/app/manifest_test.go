package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hyperifyio/lawextract/internal/extract"
)

func TestBuildManifest_IndexesArtifacts(t *testing.T) {
	dir := t.TempDir()
	set := extract.ArticleSet{
		Source:      "kk.htm",
		ExtractedAt: fixedNow,
		Articles:    extract.Extract(sampleCode, extract.DefaultRules()),
	}
	if err := writeArtifact(filepath.Join(dir, "kk.json"), set); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	writeFile(t, filepath.Join(dir, "other.json"), []byte(`{"unrelated": true}`))
	writeFile(t, filepath.Join(dir, "broken.json"), []byte(`{`))
	writeFile(t, filepath.Join(dir, ManifestFileName), []byte(`{}`))
	writeFile(t, filepath.Join(dir, "kk.htm"), []byte(sampleCode))

	m, err := BuildManifest(dir, fixedNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("BuildManifest: %v", err)
	}
	if len(m.Files) != 1 {
		t.Fatalf("expected exactly one entry, got %+v", m.Files)
	}
	e := m.Files[0]
	if e.File != "kk.json" || e.SourceFile != "kk.htm" || e.Articles != 2 || len(e.SHA256) != 64 || e.Bytes == 0 {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if !e.ExtractedAt.Equal(fixedNow) || !m.GeneratedAt.Equal(fixedNow.Add(time.Hour)) {
		t.Fatalf("unexpected timestamps: %+v", m)
	}
	if m.TotalArticles != 2 || m.Version != BuildVersion {
		t.Fatalf("unexpected totals: %+v", m)
	}

	text := RenderManifestText(m)
	if !strings.HasPrefix(text, "kk.json: 2 articles; sha256="+e.SHA256+"\n") || !strings.HasSuffix(text, "Files: 1; articles: 2\n") {
		t.Fatalf("unexpected manifest text:\n%s", text)
	}
}

func TestWriteManifest_MissingDirectory(t *testing.T) {
	_, _, err := WriteManifest(filepath.Join(t.TempDir(), "absent"), fixedNow)
	if !errors.Is(err, ErrInputDirNotFound) {
		t.Fatalf("expected ErrInputDirNotFound, got %v", err)
	}
}

func TestWriteManifest_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	path, m, err := WriteManifest(dir, fixedNow)
	if err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	if len(m.Files) != 0 {
		t.Fatalf("expected no entries, got %+v", m.Files)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if !strings.Contains(string(b), `"files": []`) {
		t.Fatalf("expected empty files array, got %s", b)
	}
}
