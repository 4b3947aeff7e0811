package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	apppkg "github.com/hyperifyio/lawextract/internal/app"
)

// Smoke test: run extracts a directory and writes the sibling artifact.
func TestRun_WritesArtifact(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "kodeks.htm")
	doc := `<span class="rvts9">Стаття 1.</span> Перша</p><span class="rvts9">Стаття 2.</span> Друга</p>`
	if err := os.WriteFile(in, []byte(doc), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	cfg := apppkg.Config{InputDir: dir, Out: io.Discard}
	if err := run(cfg); err != nil {
		t.Fatalf("run error: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "kodeks.json"))
	if err != nil || len(b) == 0 {
		t.Fatalf("expected output file, err=%v", err)
	}
}

// A missing directory is the fatal condition surfaced to main.
func TestRun_MissingDirectory(t *testing.T) {
	cfg := apppkg.Config{InputDir: filepath.Join(t.TempDir(), "missing"), Out: io.Discard}
	err := run(cfg)
	if !errors.Is(err, apppkg.ErrInputDirNotFound) {
		t.Fatalf("expected ErrInputDirNotFound, got %v", err)
	}
}

func TestCheckRuleFlags(t *testing.T) {
	if err := checkRuleFlags("rvts9", "Стаття"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tc := range [][2]string{{"", "Стаття"}, {"rvts9", "  "}} {
		if err := checkRuleFlags(tc[0], tc[1]); err == nil {
			t.Fatalf("expected error for heading-class=%q keyword=%q", tc[0], tc[1])
		}
	}
}
