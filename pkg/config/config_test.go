package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.MaxInputLen <= 0 || cfg.Server.MaxCandidates <= 0 {
		t.Errorf("defaults must bound request sizes, got %+v", cfg.Server)
	}
	if cfg.Registry.MaxSets <= 0 || cfg.Registry.MaxSetSize <= 0 {
		t.Errorf("defaults must bound registry sizes, got %+v", cfg.Registry)
	}
	if cfg.CLI.DefaultSet == "" {
		t.Error("CLI default set must be named")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Server.MaxInputLen = 100
	cfg.Server.EnableFilter = false
	cfg.CLI.DefaultSet = "fields"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Server.MaxInputLen != 100 || loaded.Server.EnableFilter {
		t.Errorf("server section not round-tripped, got %+v", loaded.Server)
	}
	if loaded.CLI.DefaultSet != "fields" {
		t.Errorf("cli section not round-tripped, got %+v", loaded.CLI)
	}
}

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nameserve", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Server.MaxInputLen != DefaultConfig().Server.MaxInputLen {
		t.Errorf("InitConfig should return defaults, got %+v", cfg.Server)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("InitConfig should write the default file: %v", err)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// registry section is valid TOML, values inside server are wrong types
	content := "[server]\nmax_input_len = \"not a number\"\n\n[registry]\nmax_sets = 8\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig should recover, got %v", err)
	}
	if cfg.Registry.MaxSets != 8 {
		t.Errorf("valid section should survive recovery, got %+v", cfg.Registry)
	}
	if cfg.Server.MaxInputLen != DefaultConfig().Server.MaxInputLen {
		t.Errorf("broken values should fall back to defaults, got %+v", cfg.Server)
	}
}
