package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingDefaultFallsBack(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("missing default config should not error: %v", err)
	}
	if cfg.BasicConfig.ServerAddress != ":8090" {
		t.Fatalf("unexpected default address %q", cfg.BasicConfig.ServerAddress)
	}
	if cfg.Contact.RateMaxRequests != 3 || cfg.Chat.RateMaxRequests != 10 {
		t.Fatalf("unexpected default rate limits: %+v", cfg)
	}
}

func TestLoadMissingExplicitPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("explicit missing path should error")
	}
}

func TestLoadFillsUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"basic_config": {"server_address": ":9999"},
		"redis": {"host": "localhost", "port": 6379},
		"contact": {"owner_email": "me@example.com"}
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BasicConfig.ServerAddress != ":9999" {
		t.Fatalf("explicit address lost: %q", cfg.BasicConfig.ServerAddress)
	}
	if cfg.Redis.Host != "localhost" {
		t.Fatalf("redis host lost: %q", cfg.Redis.Host)
	}
	if cfg.Contact.OwnerEmail != "me@example.com" {
		t.Fatalf("owner email lost: %q", cfg.Contact.OwnerEmail)
	}
	if cfg.Contact.RateWindowMinutes != 60 {
		t.Fatalf("default window not applied: %d", cfg.Contact.RateWindowMinutes)
	}
	if cfg.Chat.Model != "google/gemini-2.5-flash" {
		t.Fatalf("default model not applied: %q", cfg.Chat.Model)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("malformed config should error")
	}
}
