package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Store != "memory" || cfg.Storage.Type != "inline" {
		t.Errorf("store = %q, storage = %q", cfg.Database.Store, cfg.Storage.Type)
	}
	if cfg.Upload.MaxImages != 5 || cfg.Upload.MaxImageEncodedBytes != 6815744 {
		t.Errorf("upload = %+v", cfg.Upload)
	}
	if cfg.Upload.StoryBodyLimit != 36<<20 || cfg.Upload.DefaultBodyLimit != 1<<20 {
		t.Errorf("body limits = %+v", cfg.Upload)
	}
	if cfg.Redis.URL != "" || cfg.Redis.CacheTTL != time.Minute {
		t.Errorf("redis = %+v", cfg.Redis)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE", "Postgres")
	t.Setenv("MAX_IMAGES", "3")
	t.Setenv("CRISIS_CACHE_TTL", "30s")
	t.Setenv("MODERATOR_EMAILS", "a@example.org, b@example.org,")
	t.Setenv("RATE_LIMIT_RPS", "0.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Store != "postgres" {
		t.Errorf("store = %q", cfg.Database.Store)
	}
	if cfg.Upload.MaxImages != 3 || cfg.Redis.CacheTTL != 30*time.Second || cfg.RateLimit.RPS != 0.5 {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.JWT.ModeratorEmails) != 2 || cfg.JWT.ModeratorEmails[1] != "b@example.org" {
		t.Errorf("moderators = %v", cfg.JWT.ModeratorEmails)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		env, value, want string
	}{
		{"PORT", "70000", "PORT"},
		{"STORE", "mongo", "STORE"},
		{"STORAGE_TYPE", "ftp", "STORAGE_TYPE"},
		{"MAX_IMAGES", "many", "MAX_IMAGES"},
		{"MAX_IMAGES", "0", "MAX_IMAGES"},
		{"CRISIS_CACHE_TTL", "soon", "CRISIS_CACHE_TTL"},
		{"RATE_LIMIT_BURST", "-1", "RATE_LIMIT"},
	}
	for _, tt := range tests {
		t.Run(tt.env+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("err = %v", err)
	}

	t.Setenv("JWT_SECRET", "s3cr3t")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction = false")
	}
}

func TestLoad_S3RequiresBucket(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "s3")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "R2_BUCKET_NAME") {
		t.Errorf("err = %v", err)
	}
}
