package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8790" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.CodaBaseURL != "https://coda.io/apis/v1" {
		t.Errorf("base url = %q", cfg.CodaBaseURL)
	}
	if cfg.ExportURL != "http://localhost:8790" {
		t.Errorf("export url = %q", cfg.ExportURL)
	}
	if cfg.Configured() {
		t.Error("empty credentials should not count as configured")
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prioboard.yaml")
	data := "addr: \":9000\"\ncoda_token: file-token\ncoda_doc_id: doc-1\ncoda_table_id: grid-1\nsettle_delay: 1s\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PRIOBOARD_CONFIG", path)
	t.Setenv("CODA_API_TOKEN", "env-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("addr = %q, want file value", cfg.Addr)
	}
	if cfg.CodaToken != "env-token" {
		t.Errorf("token = %q, environment must win over file", cfg.CodaToken)
	}
	if cfg.SettleDelay != time.Second {
		t.Errorf("settle delay = %v", cfg.SettleDelay)
	}
	if !cfg.Configured() {
		t.Error("complete credentials should count as configured")
	}
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("addr: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PRIOBOARD_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}
