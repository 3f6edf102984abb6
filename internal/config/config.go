// Package config provides configuration loading from environment variables.
// #IMPLEMENTATION_DECISION: Using envconfig for type-safe environment variable parsing
// #CODE_ASSUMPTION: All secrets provided via environment variables or a local .env file
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Environment is the closed set of runtime environments.
// Input is normalized to lowercase at parse time; downstream code can
// switch exhaustively without re-validating strings.
type Environment string

// Recognized environments
const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// LogLevel is the closed set of logging levels, normalized to uppercase.
type LogLevel string

// Recognized log levels
const (
	LevelDebug    LogLevel = "DEBUG"
	LevelInfo     LogLevel = "INFO"
	LevelWarning  LogLevel = "WARNING"
	LevelError    LogLevel = "ERROR"
	LevelCritical LogLevel = "CRITICAL"
)

// DefaultSecretKey is the development placeholder secret. A production
// deployment must never retain it; the validation pass rejects that
// combination.
const DefaultSecretKey = "dev-secret-key-change-in-production"

// Validation bounds
const (
	MinPort         = 1024
	MaxPort         = 65535
	MinPoolSize     = 1
	MaxPoolSize     = 50
	MinSecretKeyLen = 32
)

// ValidationError reports a configuration field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

// ParseEnvironment normalizes and validates an environment string.
func ParseEnvironment(s string) (Environment, error) {
	switch env := Environment(strings.ToLower(s)); env {
	case EnvDevelopment, EnvStaging, EnvProduction:
		return env, nil
	default:
		return "", fmt.Errorf("must be one of [development staging production], got %q", s)
	}
}

// ParseLogLevel normalizes and validates a log level string.
func ParseLogLevel(s string) (LogLevel, error) {
	switch level := LogLevel(strings.ToUpper(s)); level {
	case LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical:
		return level, nil
	default:
		return "", fmt.Errorf("must be one of [DEBUG INFO WARNING ERROR CRITICAL], got %q", s)
	}
}

// rawConfig is the draft record populated straight from the environment.
// Defaults apply only when a key is absent; present-but-invalid values
// are rejected by the validation pass, never silently replaced.
type rawConfig struct {
	AppName          string `envconfig:"APP_NAME" default:"Streamlit MVP"`
	AppEnv           string `envconfig:"APP_ENV" default:"development"`
	Debug            bool   `envconfig:"DEBUG" default:"false"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"INFO"`
	ServerPort       int    `envconfig:"SERVER_PORT" default:"8501"`
	ServerAddress    string `envconfig:"SERVER_ADDRESS" default:"0.0.0.0"`
	DatabaseURL      string `envconfig:"DATABASE_URL"`
	DatabasePoolSize int    `envconfig:"DATABASE_POOL_SIZE" default:"5"`
	OpenAIAPIKey     string `envconfig:"OPENAI_API_KEY"`
	AnthropicAPIKey  string `envconfig:"ANTHROPIC_API_KEY"`
	SecretKey        string `envconfig:"SECRET_KEY" default:"dev-secret-key-change-in-production"`
	AllowedOrigins   string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:8501"`
}

// Config holds the validated, immutable application configuration.
// #INTEGRATION_POINT: All handlers and services depend on this configuration
type Config struct {
	AppName          string
	AppEnv           Environment
	Debug            bool
	LogLevel         LogLevel
	ServerPort       int
	ServerAddress    string
	DatabaseURL      string
	DatabasePoolSize int
	OpenAIAPIKey     string
	AnthropicAPIKey  string
	SecretKey        string
	AllowedOrigins   string
}

// build runs the ordered validation pass over the fully-parsed draft and
// produces the immutable Config. All-or-nothing: the first violation
// returns a *ValidationError and no Config.
func (r *rawConfig) build() (*Config, error) {
	env, err := ParseEnvironment(r.AppEnv)
	if err != nil {
		return nil, &ValidationError{Field: "APP_ENV", Reason: err.Error()}
	}

	level, err := ParseLogLevel(r.LogLevel)
	if err != nil {
		return nil, &ValidationError{Field: "LOG_LEVEL", Reason: err.Error()}
	}

	if r.ServerPort < MinPort || r.ServerPort > MaxPort {
		return nil, &ValidationError{
			Field:  "SERVER_PORT",
			Reason: fmt.Sprintf("must be within [%d, %d], got %d", MinPort, MaxPort, r.ServerPort),
		}
	}

	if r.DatabasePoolSize < MinPoolSize || r.DatabasePoolSize > MaxPoolSize {
		return nil, &ValidationError{
			Field:  "DATABASE_POOL_SIZE",
			Reason: fmt.Sprintf("must be within [%d, %d], got %d", MinPoolSize, MaxPoolSize, r.DatabasePoolSize),
		}
	}

	if len(r.SecretKey) < MinSecretKeyLen {
		return nil, &ValidationError{
			Field:  "SECRET_KEY",
			Reason: fmt.Sprintf("must be at least %d characters, got %d", MinSecretKeyLen, len(r.SecretKey)),
		}
	}

	// Cross-field check: the well-known development secret must never
	// survive into production. Staging intentionally does not trigger this.
	if env == EnvProduction && r.SecretKey == DefaultSecretKey {
		return nil, &ValidationError{
			Field:  "SECRET_KEY",
			Reason: "default secret key cannot be used in production",
		}
	}

	return &Config{
		AppName:          r.AppName,
		AppEnv:           env,
		Debug:            r.Debug,
		LogLevel:         level,
		ServerPort:       r.ServerPort,
		ServerAddress:    r.ServerAddress,
		DatabaseURL:      r.DatabaseURL,
		DatabasePoolSize: r.DatabasePoolSize,
		OpenAIAPIKey:     r.OpenAIAPIKey,
		AnthropicAPIKey:  r.AnthropicAPIKey,
		SecretKey:        r.SecretKey,
		AllowedOrigins:   r.AllowedOrigins,
	}, nil
}

// Parse constructs a fresh Config from the current process environment,
// bypassing the cache. Tests and CLI tools use this to avoid the singleton.
func Parse() (*Config, error) {
	var raw rawConfig
	if err := envconfig.Process("", &raw); err != nil {
		return nil, err
	}
	return raw.build()
}

var (
	instance *Config
	once     sync.Once
	errInit  error
)

// Load loads and validates configuration from the environment, reading an
// optional .env override file first. The result is memoized: every
// subsequent call returns the same instance (or the same error) without
// re-reading the environment.
// #IMPLEMENTATION_DECISION: Singleton pattern ensures config is loaded once
func Load() (*Config, error) {
	once.Do(func() {
		// A missing .env file is not an error; the process environment
		// is the authoritative source.
		_ = godotenv.Load()
		instance, errInit = Parse()
	})
	return instance, errInit
}

// Get returns the loaded configuration.
// Panics if configuration has not been loaded.
func Get() *Config {
	if instance == nil {
		panic("config: Load() must be called before Get()")
	}
	return instance
}

// AllowedOriginsList splits the comma-separated origins string, trimming
// whitespace from each segment. Empty segments are preserved.
func (c *Config) AllowedOriginsList() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, len(parts))
	for i, p := range parts {
		origins[i] = strings.TrimSpace(p)
	}
	return origins
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}

// IsStaging returns true if running in staging mode
func (c *Config) IsStaging() bool {
	return c.AppEnv == EnvStaging
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// HasDatabase reports whether a database connection string was provided.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}
