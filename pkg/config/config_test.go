package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.MaxLimit != 24 {
		t.Errorf("Server.MaxLimit = %d, want 24", cfg.Server.MaxLimit)
	}
	if !cfg.Server.EnableFilter {
		t.Error("Server.EnableFilter should default to true")
	}
	if cfg.Data.AssetPath != "" {
		t.Errorf("Data.AssetPath = %q, want embedded default", cfg.Data.AssetPath)
	}
	if cfg.CLI.DefaultTone != "default" {
		t.Errorf("CLI.DefaultTone = %q, want %q", cfg.CLI.DefaultTone, "default")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
max_limit = 10
enable_filter = false

[data]
asset_path = "custom/emoji.json"
metadata_version = 15.1

[cli]
default_tone = "dark"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.MaxLimit != 10 {
		t.Errorf("Server.MaxLimit = %d, want 10", cfg.Server.MaxLimit)
	}
	if cfg.Server.EnableFilter {
		t.Error("Server.EnableFilter should be false")
	}
	// Unset keys keep their defaults.
	if cfg.Server.MaxPrefix != 60 {
		t.Errorf("Server.MaxPrefix = %d, want default 60", cfg.Server.MaxPrefix)
	}
	if cfg.Data.AssetPath != "custom/emoji.json" {
		t.Errorf("Data.AssetPath = %q", cfg.Data.AssetPath)
	}
	if cfg.Data.MetadataVersion != 15.1 {
		t.Errorf("Data.MetadataVersion = %v, want 15.1", cfg.Data.MetadataVersion)
	}
	if cfg.CLI.DefaultTone != "dark" {
		t.Errorf("CLI.DefaultTone = %q, want %q", cfg.CLI.DefaultTone, "dark")
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// Valid server section followed by garbage; the partial parser should
	// still pick up the server values.
	content := `
[server]
max_limit = 12

[data
asset_path = broken
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Data.MetadataVersion != 11.0 {
		t.Errorf("Data.MetadataVersion = %v, want default 11.0", cfg.Data.MetadataVersion)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Server.MaxLimit != 24 {
		t.Errorf("Server.MaxLimit = %d, want default 24", cfg.Server.MaxLimit)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}

	reloaded, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig reload: %v", err)
	}
	if reloaded.Server.MaxLimit != cfg.Server.MaxLimit {
		t.Error("reloaded config differs from the one written")
	}
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	limit := 32
	filter := false
	if err := cfg.Update(path, &limit, nil, &filter); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if reloaded.Server.MaxLimit != 32 {
		t.Errorf("Server.MaxLimit = %d, want 32", reloaded.Server.MaxLimit)
	}
	if reloaded.Server.EnableFilter {
		t.Error("Server.EnableFilter should be false after update")
	}
	if reloaded.Server.MaxPrefix != 60 {
		t.Errorf("Server.MaxPrefix = %d, want untouched 60", reloaded.Server.MaxPrefix)
	}
}
