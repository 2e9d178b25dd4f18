// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitConfig(t *testing.T) {
	// Create temp directory for test config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	// Verify config file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := InitConfig(configPath); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	tests := map[string]string{
		"palette.default_color":  "steelblue",
		"palette.default_scheme": "basic",
		"output.format":          "sass",
		"server.http_port":       "8080",
		"database.type":          "sqlite",
		"database.path":          filepath.Join(tmpDir, "library.db"),
		"backup.path":            filepath.Join(tmpDir, "backups"),
		"log.level":              "info",
	}
	for key, want := range tests {
		if got := GetString(key); got != want {
			t.Errorf("%s: expected %q, got %q", key, want, got)
		}
	}

	if GetInt("server.rate_limit") != 60 {
		t.Errorf("Expected rate_limit 60, got %d", GetInt("server.rate_limit"))
	}
	if GetDuration("server.rate_interval") != time.Minute {
		t.Errorf("Expected rate_interval 1m, got %s", GetDuration("server.rate_interval"))
	}
	if GetBool("server.behind_proxy") {
		t.Error("Expected behind_proxy to default to false")
	}
}

func TestSetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	err := Set("palette.default_scheme", "triadic")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value := GetString("palette.default_scheme")
	if value != "triadic" {
		t.Errorf("Expected default_scheme to be triadic, got %s", value)
	}

	// Value survives a reload from disk
	if err := InitConfig(configPath); err != nil {
		t.Fatalf("InitConfig reload failed: %v", err)
	}
	if GetString("palette.default_scheme") != "triadic" {
		t.Errorf("Expected persisted default_scheme triadic, got %s", GetString("palette.default_scheme"))
	}
}

func TestEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HUEWHEEL_OUTPUT_FORMAT", "json")

	if err := InitConfig(filepath.Join(tmpDir, "config.yaml")); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if GetString("output.format") != "json" {
		t.Errorf("Expected env override json, got %s", GetString("output.format"))
	}
}

func TestPath(t *testing.T) {
	t.Setenv("HUEWHEEL_CONFIG", "/tmp/custom.yaml")
	p, err := Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if p != "/tmp/custom.yaml" {
		t.Errorf("Expected HUEWHEEL_CONFIG path, got %s", p)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	// Missing file is not an error
	if err := LoadDotEnv(); err != nil {
		t.Fatalf("LoadDotEnv without .env failed: %v", err)
	}

	if err := os.WriteFile(".env", []byte("HUEWHEEL_DOTENV_TEST=loaded\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("HUEWHEEL_DOTENV_TEST") })
	if err := LoadDotEnv(); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	if os.Getenv("HUEWHEEL_DOTENV_TEST") != "loaded" {
		t.Error("Expected .env variable to be loaded")
	}
}
