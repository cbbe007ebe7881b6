package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.Focus.Preset != nil || cfg.Dashboard.DB != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[dashboard]
db = "/tmp/a.db"
tip-interval = 10

[focus]
preset = 45

[grid]
start-hour = 6
end-hour = 22
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Dashboard.DB == nil || *cfg.Dashboard.DB != "/tmp/a.db" {
		t.Fatalf("unexpected db %v", cfg.Dashboard.DB)
	}
	if cfg.Dashboard.TipInterval == nil || *cfg.Dashboard.TipInterval != 10 {
		t.Fatalf("unexpected tip interval %v", cfg.Dashboard.TipInterval)
	}
	if cfg.Focus.Preset == nil || *cfg.Focus.Preset != 45 {
		t.Fatalf("unexpected preset %v", cfg.Focus.Preset)
	}
	if *cfg.Grid.StartHour != 6 || *cfg.Grid.EndHour != 22 {
		t.Fatalf("unexpected grid %d..%d", *cfg.Grid.StartHour, *cfg.Grid.EndHour)
	}
	if cfg.Stats.Width != nil {
		t.Fatalf("unset width should stay nil")
	}
}

func TestLoadConfigRejectsBadRanges(t *testing.T) {
	cases := []string{
		"[focus]\npreset = 0\n",
		"[grid]\nstart-hour = 20\nend-hour = 7\n",
		"[grid]\nend-hour = 24\n",
		"[dashboard]\ntip-interval = -1\n",
	}
	for _, content := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Fatalf("expected error for %q", content)
		}
	}
}

func TestEnsureConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acadash", "config.toml")
	created, err := EnsureConfig(path)
	if err != nil || !created {
		t.Fatalf("expected config to be created, got %v %v", created, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "[dashboard]") {
		t.Fatalf("template missing dashboard section")
	}
	if created, err := EnsureConfig(path); err != nil || created {
		t.Fatalf("second call should not recreate, got %v %v", created, err)
	}
	if _, err := LoadConfig(path); err != nil {
		t.Fatalf("template should load: %v", err)
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "acadash", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "acadash", "acadash.db") {
		t.Fatalf("unexpected db path %q", got)
	}
	if got := DefaultTipsPath(); got != filepath.Join("/cfg", "acadash", "tips.txt") {
		t.Fatalf("unexpected tips path %q", got)
	}
}
