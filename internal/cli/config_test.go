package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := LoadConfig()
	if !reflect.DeepEqual(cfg, Config{}) {
		t.Errorf("LoadConfig() with no file = %+v, want zero Config", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `policy = "edges"
formats = ["svg", "json"]
width = 1024
height = 768
no_cache = true
redis_addr = "localhost:6379"
addr = ":9090"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig()
	if cfg.Policy != "edges" {
		t.Errorf("Policy = %q, want %q", cfg.Policy, "edges")
	}
	if len(cfg.Formats) != 2 || cfg.Formats[0] != "svg" || cfg.Formats[1] != "json" {
		t.Errorf("Formats = %v, want [svg json]", cfg.Formats)
	}
	if cfg.Width != 1024 || cfg.Height != 768 {
		t.Errorf("Width/Height = %d/%d, want 1024/768", cfg.Width, cfg.Height)
	}
	if !cfg.NoCache {
		t.Error("NoCache = false, want true")
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q, want %q", cfg.RedisAddr, "localhost:6379")
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9090")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig()
	if !reflect.DeepEqual(cfg, Config{}) {
		t.Errorf("LoadConfig() with malformed file = %+v, want zero Config", cfg)
	}
}
