package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/booklog/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BOOKLOG_CONFIG", filepath.Join(t.TempDir(), "config.yml"))

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Sound {
		t.Error("sound should default to on")
	}
	if !strings.HasSuffix(cfg.DataDir, filepath.Join(".local", "share", "booklog")) {
		t.Errorf("unexpected default data dir: %q", cfg.DataDir)
	}
	if cfg.Covers.BaseURL != "https://covers.openlibrary.org/b/isbn" {
		t.Errorf("unexpected default cover base: %q", cfg.Covers.BaseURL)
	}
	if cfg.Covers.CacheDir == "" {
		t.Error("cover cache dir not defaulted")
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	contents := "data_dir: /tmp/books\nsound: false\ncovers:\n  base_url: https://covers.example.com\n"
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BOOKLOG_CONFIG", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/books" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
	if cfg.Sound {
		t.Error("sound should be off")
	}
	if cfg.Covers.BaseURL != "https://covers.example.com" {
		t.Errorf("cover base = %q", cfg.Covers.BaseURL)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BOOKLOG_CONFIG", filepath.Join(t.TempDir(), "config.yml"))
	t.Setenv("BOOKLOG_SOUND", "false")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sound {
		t.Error("BOOKLOG_SOUND=false not applied")
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got := config.ExpandHome("~/books"); got != filepath.Join(home, "books") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := config.ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}
