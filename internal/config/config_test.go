package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	os.Setenv("MONGODB_DATABASE", "designer_growth_test")
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI != "mongodb://localhost:27017/testdb" {
		t.Fatalf("unexpected mongo uri: %s", cfg.MongoDB.URI)
	}
	if cfg.MongoDB.Database != "designer_growth_test" {
		t.Fatalf("unexpected mongo database: %s", cfg.MongoDB.Database)
	}
	if cfg.Redis.Host != "localhost" {
		t.Fatalf("unexpected redis host: %s", cfg.Redis.Host)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("RATE_LIMIT_ENABLED")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Fatalf("unexpected default port: %s", cfg.Server.Port)
	}
	if cfg.RateLimit.Enabled {
		t.Fatal("rate limiting should be disabled by default")
	}
	if cfg.MongoDB.Timeout.Seconds() != 10 {
		t.Fatalf("unexpected default mongo timeout: %v", cfg.MongoDB.Timeout)
	}
}
