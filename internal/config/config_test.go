package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != (Config{}) {
		t.Fatalf("expected zero-value Config, got %#v", cfg)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	content := "outputDir: build\nwarningsAsErrors: true\n"
	if err := os.WriteFile(filepath.Join(dir, "slc.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputDir != "build" {
		t.Fatalf("expected OutputDir=build, got %q", cfg.OutputDir)
	}
	if !cfg.WarningsAsErrors {
		t.Fatalf("expected WarningsAsErrors=true")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "slc.yaml"), []byte("outputDir: [unterminated"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected an error parsing malformed yaml")
	}
}

func TestLoadDefaultsLeaveWarningsAsErrorsFalse(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "slc.yaml"), []byte("outputDir: out\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WarningsAsErrors {
		t.Fatalf("expected WarningsAsErrors to default false when omitted")
	}
}
