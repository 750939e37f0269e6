package host

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "specrender.yaml")
	data := []byte("input: events.jsonl\nformat: png\nevery: true\nbackground: \"#102030\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Input != "events.jsonl" || cfg.Format != FormatPNG || !cfg.Every {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.Output != DefaultConfig().Output {
		t.Fatalf("output default lost: %q", cfg.Output)
	}
	bg, err := cfg.BackgroundColor()
	if err != nil || bg != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}) {
		t.Fatalf("background=%v err=%v", bg, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("format: gif\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestValidateBackground(t *testing.T) {
	for _, bg := range []string{"black", "#12345", "#gggggg", ""} {
		cfg := DefaultConfig()
		cfg.Background = bg
		if err := cfg.Validate(); err == nil {
			t.Errorf("background %q accepted", bg)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}
