package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codemend/codemend/internal/findings"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "codemend.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr != ":5000" {
		t.Errorf("addr = %q, want :5000", cfg.Server.Addr)
	}
	if cfg.Backup.Suffix != ".bak" {
		t.Errorf("suffix = %q, want .bak", cfg.Backup.Suffix)
	}
}

func TestLoadBackfillsDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  addr: \":9090\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Backup.Suffix != ".bak" {
		t.Errorf("suffix = %q, want backfilled .bak", cfg.Backup.Suffix)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("err = nil, want error")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a mapping\n")
	if _, err := Load(path); err == nil {
		t.Error("err = nil, want parse error")
	}
}

func TestExtraRules(t *testing.T) {
	path := writeConfig(t, `rules:
  python:
    - pattern: 'TODO'
      category: StyleWarning
      message: "Leftover TODO"
      fix: ""
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	extra, err := cfg.ExtraRules()
	if err != nil {
		t.Fatalf("ExtraRules: %v", err)
	}
	defs := extra[findings.Python]
	if len(defs) != 1 {
		t.Fatalf("got %d python rules, want 1", len(defs))
	}
	if defs[0].Message != "Leftover TODO" {
		t.Errorf("message = %q", defs[0].Message)
	}
}

func TestExtraRulesUnknownLanguage(t *testing.T) {
	path := writeConfig(t, `rules:
  cobol:
    - pattern: 'x'
      category: StyleWarning
      message: "m"
      fix: ""
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := cfg.ExtraRules(); err == nil {
		t.Error("err = nil, want unknown language error")
	}
}

func TestLanguageForFile(t *testing.T) {
	cfg := Default()
	cfg.Extensions = map[string]string{".pyi": "python"}

	tests := []struct {
		ext  string
		want findings.Language
		ok   bool
	}{
		{".py", findings.Python, true},
		{".pyi", findings.Python, true},
		{".java", findings.Java, true},
		{".txt", "", false},
	}

	for _, tt := range tests {
		got, ok := cfg.LanguageForFile(tt.ext)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("LanguageForFile(%q) = %v, %v; want %v, %v", tt.ext, got, ok, tt.want, tt.ok)
		}
	}
}
