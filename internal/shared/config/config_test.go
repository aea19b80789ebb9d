package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "UPLOAD_DIR", "OUTPUT_DIR", "MAX_UPLOAD_MB", "CORS_ALLOW_ORIGINS", "DATABASE_URL", "UPLOAD_RATE_PER_SEC", "UPLOAD_RATE_BURST"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "3000" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("unexpected env: %s", cfg.Env)
	}
	if cfg.UploadDir != "uploads" || cfg.OutputDir != "output" {
		t.Fatalf("unexpected dirs: %s %s", cfg.UploadDir, cfg.OutputDir)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("unexpected max upload: %d", cfg.MaxUploadBytes)
	}
	if cfg.UploadRatePerSec != 1 || cfg.UploadRateBurst != 10 {
		t.Fatalf("unexpected rate limit: %g/%d", cfg.UploadRatePerSec, cfg.UploadRateBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ENV", "prod")
	t.Setenv("MAX_UPLOAD_MB", "2")
	t.Setenv("CORS_ALLOW_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("UPLOAD_RATE_BURST", "nope")

	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("unexpected port: %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("unexpected env: %s", cfg.Env)
	}
	if cfg.MaxUploadBytes != 2<<20 {
		t.Fatalf("unexpected max upload: %d", cfg.MaxUploadBytes)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigin)
	}
	if cfg.UploadRateBurst != 10 {
		t.Fatalf("expected invalid burst to fall back, got %d", cfg.UploadRateBurst)
	}
}
