package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Database.MaxConns != 20 {
		t.Errorf("Database.MaxConns = %d, want 20", cfg.Database.MaxConns)
	}
	if cfg.OCR.Language != "eng" {
		t.Errorf("OCR.Language = %q, want eng", cfg.OCR.Language)
	}
	if cfg.OCR.Engine != 2 {
		t.Errorf("OCR.Engine = %d, want 2", cfg.OCR.Engine)
	}
	if cfg.Pipeline.MinConfidence != 0.60 {
		t.Errorf("Pipeline.MinConfidence = %v, want 0.60", cfg.Pipeline.MinConfidence)
	}
	if cfg.Queue.Workers != 4 {
		t.Errorf("Queue.Workers = %d, want 4", cfg.Queue.Workers)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/billsnap")
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("OCR_TIMEOUT", "45s")
	t.Setenv("PIPELINE_MIN_CONFIDENCE", "0.75")
	t.Setenv("QUEUE_WORKERS", "not-a-number")

	cfg := LoadConfig()

	if cfg.Database.DSN != "postgres://localhost/billsnap" {
		t.Errorf("Database.DSN = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 50 {
		t.Errorf("Database.MaxConns = %d, want 50", cfg.Database.MaxConns)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.OCR.Timeout != 45*time.Second {
		t.Errorf("OCR.Timeout = %v, want 45s", cfg.OCR.Timeout)
	}
	if cfg.Pipeline.MinConfidence != 0.75 {
		t.Errorf("Pipeline.MinConfidence = %v, want 0.75", cfg.Pipeline.MinConfidence)
	}
	// malformed values fall back to the default
	if cfg.Queue.Workers != 4 {
		t.Errorf("Queue.Workers = %d, want default 4", cfg.Queue.Workers)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("want error for missing DB_URL")
	}

	cfg.Database.DSN = "billsnap.db"
	if err := cfg.Validate(); err == nil {
		t.Fatal("want error for missing OCR_API_KEY")
	}

	cfg.OCR.APIKey = "helloworld"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}
