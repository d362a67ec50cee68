package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"MONGO_URL", "PORT", "FIREBASE_PROJECT_ID", "FIREBASE_API_KEY", "CORS_ORIGINS", "SEED_ON_START", "SHUTDOWN_TIMEOUT"} {
		// register restore, then unset so envconfig falls back to defaults
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Port != "8001" {
		t.Errorf("Expected port 8001, got %q", c.Port)
	}
	if c.IdentityProjectID != "dummy-project-id" || c.IdentityAPIKey != "dummy-api-key" {
		t.Errorf("Unexpected identity defaults: %q %q", c.IdentityProjectID, c.IdentityAPIKey)
	}
	if len(c.CORSOrigins) != 2 || c.CORSOrigins[1] != "http://localhost:3001" {
		t.Errorf("Unexpected CORS origins: %v", c.CORSOrigins)
	}
	if !c.SeedOnStart || c.ShutdownTimeout != 10*time.Second {
		t.Errorf("Unexpected lifecycle defaults: %+v", c)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://db:27017/shop")
	t.Setenv("PORT", "9000")
	t.Setenv("SEED_ON_START", "false")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DatabaseURL != "mongodb://db:27017/shop" || c.Port != "9000" || c.SeedOnStart {
		t.Errorf("Environment not applied: %+v", c)
	}
	if len(c.CORSOrigins) != 2 || c.CORSOrigins[0] != "https://a.example" {
		t.Errorf("Unexpected CORS origins: %v", c.CORSOrigins)
	}
}

func TestMaskURL(t *testing.T) {
	got := maskURL("postgres://app:s3cret@db:5432/shop")
	if got != "postgres://app:xxxxx@db:5432/shop" {
		t.Errorf("Unexpected masked URL %q", got)
	}
	if got := maskURL("sqlite://multiservice.db"); got != "sqlite://multiservice.db" {
		t.Errorf("Unexpected masked URL %q", got)
	}
}
