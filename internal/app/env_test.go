package app

import (
	"os"
	"path/filepath"
	"testing"
)

// LoadEnvFiles reads KEY=VALUE pairs into the process environment.
func TestLoadEnvFiles_LoadsKeyValues(t *testing.T) {
	t.Setenv("FOO", "")
	t.Setenv("BAR", "")
	t.Setenv("BAZ", "")

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env.test")
	content := "\n# sample dotenv file\nFOO=alpha\nexport BAR=\"beta gamma\"\nBAZ=delta # trailing\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	if err := LoadEnvFiles(envPath, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}

	for key, want := range map[string]string{"FOO": "alpha", "BAR": "beta gamma", "BAZ": "delta"} {
		if got := os.Getenv(key); got != want {
			t.Fatalf("%s=%q, want %q", key, got, want)
		}
	}
}

// Later files override earlier ones when loading multiple dotenv files.
func TestLoadEnvFiles_OverrideOrder(t *testing.T) {
	t.Setenv("K", "")
	dir := t.TempDir()
	a := filepath.Join(dir, ".env.a")
	b := filepath.Join(dir, ".env.b")
	if err := os.WriteFile(a, []byte("K=first\n"), 0o600); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if err := os.WriteFile(b, []byte("K=second\n"), 0o600); err != nil {
		t.Fatalf("write b: %v", err)
	}

	if err := LoadEnvFiles(a, b); err != nil {
		t.Fatalf("LoadEnvFiles error: %v", err)
	}
	if got := os.Getenv("K"); got != "second" {
		t.Fatalf("override order failed: got %q, want second", got)
	}
}

func TestLoadEnvFiles_MalformedFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("GOOD=1\nnot a pair!\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	if err := LoadEnvFiles(path); err == nil {
		t.Fatal("expected parse error for malformed dotenv file")
	}
}

func TestApplyEnvToConfig_FillsUnsetOnly(t *testing.T) {
	t.Setenv(EnvInputDir, "/srv/codes")
	t.Setenv(EnvHeadingClass, "rvts15")
	t.Setenv(EnvPatterns, "*.htm")
	t.Setenv(EnvManifest, "yes")
	t.Setenv(EnvRecursive, "garbage")

	cfg := Config{HeadingClass: "explicit"}
	ApplyEnvToConfig(&cfg)
	if cfg.InputDir != "/srv/codes" {
		t.Fatalf("InputDir=%q", cfg.InputDir)
	}
	if cfg.HeadingClass != "explicit" {
		t.Fatalf("explicit heading class overwritten: %q", cfg.HeadingClass)
	}
	if len(cfg.Patterns) != 1 || cfg.Patterns[0] != "*.htm" {
		t.Fatalf("Patterns=%v", cfg.Patterns)
	}
	if !cfg.WriteManifest || cfg.Recursive {
		t.Fatalf("unexpected booleans: manifest=%v recursive=%v", cfg.WriteManifest, cfg.Recursive)
	}
}

func TestApplyEnvOverrides_Toggles(t *testing.T) {
	t.Setenv(EnvPDF, "on")
	t.Setenv(EnvVerbose, "false")
	t.Setenv(EnvKeyword, "Article")

	cfg := Config{Verbose: true, Keyword: "Стаття"}
	ApplyEnvOverrides(&cfg)
	if !cfg.EnablePDF || cfg.Verbose || cfg.Keyword != "Article" {
		t.Fatalf("unexpected config after overrides: %+v", cfg)
	}
}
