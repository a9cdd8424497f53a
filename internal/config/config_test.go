// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
	if Path() != configPath {
		t.Errorf("Expected Path() %s, got %s", configPath, Path())
	}
}

func TestDefaultsFollowConfigDir(t *testing.T) {
	tmpDir := t.TempDir()
	InitConfig(filepath.Join(tmpDir, "config.yaml"))

	if got := GetString("server.http_port"); got != "8080" {
		t.Errorf("Expected default http_port to be 8080, got %s", got)
	}
	if got := GetString("theme.path"); got != filepath.Join(tmpDir, "theme.yaml") {
		t.Errorf("Unexpected theme path %s", got)
	}
	if got := GetString("database.path"); got != filepath.Join(tmpDir, "sectioncss.db") {
		t.Errorf("Unexpected database path %s", got)
	}
	if !GetBool("theme.watch") {
		t.Error("Expected theme.watch to default to true")
	}
	if GetDuration("backup.interval") != 24*time.Hour || GetInt("backup.keep") != 10 {
		t.Error("Unexpected backup defaults")
	}
	if len(GetStringSlice("admin.allowed_ips")) != 0 {
		t.Error("Expected an empty admin allowlist")
	}
	if GetInt("auth.jwt_expiry_hours") != 8 {
		t.Error("Expected jwt expiry of 8 hours")
	}
}

func TestSetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	err := Set("log.level", "debug")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// a fresh load sees the persisted value
	InitConfig(configPath)
	if value := GetString("log.level"); value != "debug" {
		t.Errorf("Expected log.level to be debug, got %s", value)
	}
}

func TestEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	InitConfig(filepath.Join(tmpDir, "config.yaml"))

	t.Setenv("SECTIONCSS_SERVER_HTTP_PORT", "9999")
	if got := GetString("server.http_port"); got != "9999" {
		t.Errorf("Expected env override 9999, got %s", got)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("SECTIONCSS_CONFIG", "/tmp/elsewhere.yaml")
	if got := DefaultPath(); got != "/tmp/elsewhere.yaml" {
		t.Errorf("Expected env path, got %s", got)
	}

	t.Setenv("SECTIONCSS_CONFIG", "")
	if got := DefaultPath(); filepath.Base(got) != "config.yaml" {
		t.Errorf("Unexpected default path %s", got)
	}
}

func TestUninitialized(t *testing.T) {
	saved := v
	v = nil
	defer func() { v = saved }()

	if GetString("server.http_port") != "" || GetInt("x") != 0 || GetBool("x") || GetDuration("x") != 0 || GetStringSlice("x") != nil {
		t.Error("Expected zero values before InitConfig")
	}
	if GetAll() != nil {
		t.Error("Expected nil map before InitConfig")
	}
	if err := Set("x", 1); err == nil {
		t.Error("Expected error when setting before InitConfig")
	}
}
