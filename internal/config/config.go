package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr        string `yaml:"addr"`
	CodaBaseURL string `yaml:"coda_base_url"`
	CodaToken   string `yaml:"coda_token"`
	CodaDocID   string `yaml:"coda_doc_id"`
	CodaTableID string `yaml:"coda_table_id"`
	// ExportURL is the address the snapshot exporter navigates to. Defaults
	// to the server's own listen address.
	ExportURL   string        `yaml:"export_url"`
	SettleDelay time.Duration `yaml:"settle_delay"`
}

// Load reads an optional YAML file named by PRIOBOARD_CONFIG, then applies
// environment variables on top. Environment always wins.
func Load() (Config, error) {
	cfg := Config{
		Addr:        ":8790",
		CodaBaseURL: "https://coda.io/apis/v1",
		SettleDelay: 250 * time.Millisecond,
	}

	if path := os.Getenv("PRIOBOARD_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Addr = getenv("PRIOBOARD_ADDR", cfg.Addr)
	cfg.CodaBaseURL = getenv("CODA_BASE_URL", cfg.CodaBaseURL)
	cfg.CodaToken = getenv("CODA_API_TOKEN", cfg.CodaToken)
	cfg.CodaDocID = getenv("CODA_DOC_ID", cfg.CodaDocID)
	cfg.CodaTableID = getenv("CODA_TABLE_ID", cfg.CodaTableID)
	cfg.ExportURL = getenv("PRIOBOARD_EXPORT_URL", cfg.ExportURL)
	if ms := getenvInt("PRIOBOARD_SETTLE_DELAY_MS", 0); ms > 0 {
		cfg.SettleDelay = time.Duration(ms) * time.Millisecond
	}

	if cfg.ExportURL == "" {
		if strings.HasPrefix(cfg.Addr, ":") {
			cfg.ExportURL = "http://localhost" + cfg.Addr
		} else {
			cfg.ExportURL = "http://" + cfg.Addr
		}
	}
	return cfg, nil
}

// Configured reports whether the Coda fetch settings are complete. The server
// still runs without them; views show a configuration error instead of data.
func (c Config) Configured() bool {
	return c.CodaToken != "" && c.CodaDocID != "" && c.CodaTableID != ""
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
