package config

import (
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// Config holds every externally supplied setting. Defaults point at local/dummy values.
type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"multiservice-api"`
	Env         string `envconfig:"APP_ENV" default:"development"`
	Port        string `envconfig:"PORT" default:"8001"`
	GinMode     string `envconfig:"GIN_MODE"`

	// DatabaseURL selects the storage backend by scheme (mongodb, postgres, sqlite).
	DatabaseURL string `envconfig:"MONGO_URL" default:"sqlite://multiservice.db"`
	DBLogLevel  string `envconfig:"DB_LOG_LEVEL" default:"warn"`

	// Identity provider settings, consumed by the placeholder verifier only.
	IdentityProjectID string `envconfig:"FIREBASE_PROJECT_ID" default:"dummy-project-id"`
	IdentityAPIKey    string `envconfig:"FIREBASE_API_KEY" default:"dummy-api-key"`

	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	CORSOrigins     []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://localhost:3001"`
	SeedOnStart     bool          `envconfig:"SEED_ON_START" default:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LogFields returns the non-secret settings for the startup log line.
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Env),
		zap.String("port", c.Port),
		zap.String("database", maskURL(c.DatabaseURL)),
		zap.String("identity_project", c.IdentityProjectID),
		zap.Strings("cors_origins", c.CORSOrigins),
		zap.Bool("seed_on_start", c.SeedOnStart),
	}
}

// maskURL hides the password embedded in a connection string.
func maskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "***MASKED***"
	}
	return u.Redacted()
}
