package database

import (
	"testing"

	appconfig "github.com/mvp-tools/dashboard_backend/internal/config"
)

func TestFromAppConfig(t *testing.T) {
	cfg := &appconfig.Config{
		DatabaseURL:      "mongodb://localhost:27017/dashboard",
		DatabasePoolSize: 25,
	}

	dbCfg := FromAppConfig(cfg)

	if dbCfg.URI != cfg.DatabaseURL {
		t.Errorf("URI = %q, want %q", dbCfg.URI, cfg.DatabaseURL)
	}
	if dbCfg.MaxPoolSize != 25 {
		t.Errorf("MaxPoolSize = %d, want 25", dbCfg.MaxPoolSize)
	}
	if dbCfg.ConnectTimeout <= 0 {
		t.Error("ConnectTimeout not set")
	}
	if dbCfg.ServerSelectionTimeout <= 0 {
		t.Error("ServerSelectionTimeout not set")
	}
}
