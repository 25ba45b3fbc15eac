package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/miravel/glossa/internal/syntax"
)

func TestLoadSessionConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Session.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", cfg.Session.Version)
	}
	if cfg.WordOrder() != syntax.OrderSVO {
		t.Fatalf("expected default word order SVO, got %s", cfg.WordOrder())
	}
	if cfg.Session.Generation.MaxAttempts != defaultMaxAttempts {
		t.Fatalf("expected default max attempts, got %d", cfg.Session.Generation.MaxAttempts)
	}
	if len(cfg.Session.Language.Consonants) == 0 || len(cfg.Session.Language.Vowels) == 0 {
		t.Fatalf("default inventories must be non-empty")
	}
}

func TestLoadSessionConfigParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	glossaDir := filepath.Join(projectDir, GlossaDir)
	if err := os.MkdirAll(glossaDir, 0o755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
language:
  consonants: [k, t, n]
  vowels: [a, i]
  syllable_patterns: [cv, CVC]
  word_order: sov
generation:
  max_attempts: 500
  sample_words: 5
rulepacks:
  dir: packs
`)
	if err := os.WriteFile(filepath.Join(glossaDir, "config.yaml"), []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.WordOrder() != syntax.OrderSOV {
		t.Fatalf("word order = %s, want SOV", cfg.WordOrder())
	}
	if got := cfg.Session.Language.SyllablePatterns[0]; got != "CV" {
		t.Fatalf("patterns not upcased: %q", got)
	}
	if cfg.Session.Generation.MaxAttempts != 500 {
		t.Fatalf("max attempts = %d, want 500", cfg.Session.Generation.MaxAttempts)
	}
	// Unset values fall back to defaults.
	if cfg.Session.Generation.SampleSentences != defaultSampleSentences {
		t.Fatalf("sample sentences = %d, want default", cfg.Session.Generation.SampleSentences)
	}
	if got := cfg.RulepacksDir(); got != filepath.Join(glossaDir, "packs") {
		t.Fatalf("rulepacks dir = %q", got)
	}
}

func TestLoadSessionConfigValidation(t *testing.T) {
	cases := []struct{ label, payload string }{
		{"long consonant", "language:\n  consonants: [str]\n"},
		{"long vowel", "language:\n  vowels: [aeio]\n"},
		{"bad pattern", "language:\n  syllable_patterns: [CXV]\n"},
		{"bad attempts", "generation:\n  max_attempts: -1\n"},
	}
	for _, tc := range cases {
		projectDir := t.TempDir()
		glossaDir := filepath.Join(projectDir, GlossaDir)
		if err := os.MkdirAll(glossaDir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(glossaDir, "config.yaml"), []byte(tc.payload), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := NewConfig(projectDir); err == nil {
			t.Fatalf("%s: expected a validation error", tc.label)
		}
	}
}

func TestInitGlossaDirWritesDefaultConfig(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitGlossaDir(projectDir); err != nil {
		t.Fatalf("InitGlossaDir: %v", err)
	}
	for _, sub := range []string{"logs", "rulepacks"} {
		info, err := os.Stat(filepath.Join(projectDir, GlossaDir, sub))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected %s directory: %v", sub, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(projectDir, GlossaDir, "config.yaml"))
	if err != nil {
		t.Fatalf("read default config: %v", err)
	}
	if !strings.Contains(string(data), "syllable_patterns") {
		t.Fatalf("default config missing expected keys: %q", string(data))
	}
	// Re-running must not clobber an existing config.
	marker := []byte("version: 1\nlanguage:\n  word_order: VSO\n")
	if err := os.WriteFile(filepath.Join(projectDir, GlossaDir, "config.yaml"), marker, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := InitGlossaDir(projectDir); err != nil {
		t.Fatalf("second InitGlossaDir: %v", err)
	}
	data, _ = os.ReadFile(filepath.Join(projectDir, GlossaDir, "config.yaml"))
	if !strings.Contains(string(data), "VSO") {
		t.Fatalf("InitGlossaDir overwrote an existing config")
	}
}

func TestSetWordOrderPersists(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitGlossaDir(projectDir); err != nil {
		t.Fatalf("InitGlossaDir: %v", err)
	}
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if err := cfg.SetWordOrder("vso"); err != nil {
		t.Fatalf("SetWordOrder: %v", err)
	}
	reloaded, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.WordOrder() != syntax.OrderVSO {
		t.Fatalf("persisted word order = %s, want VSO", reloaded.WordOrder())
	}
}
