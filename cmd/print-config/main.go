// Package main provides a CLI tool that prints the resolved configuration.
// Usage: go run cmd/print-config/main.go [-env path/to/.env]
// This is useful for checking what a deployment will actually run with.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mvp-tools/dashboard_backend/internal/config"
)

func main() {
	envFile := flag.String("env", "", "Path to .env file (defaults to .env in current dir)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Loads and validates the application configuration, then prints the\n")
		fmt.Fprintf(os.Stderr, "resolved values with secrets redacted. Exits non-zero on a validation\n")
		fmt.Fprintf(os.Stderr, "failure, so it doubles as a pre-deploy config check.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading env file %s: %v\n", *envFile, err)
			os.Exit(1)
		}
	} else {
		// Best effort; the process environment alone is fine.
		_ = godotenv.Load()
	}

	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("APP_NAME            %s\n", cfg.AppName)
	fmt.Printf("APP_ENV             %s\n", cfg.AppEnv)
	fmt.Printf("DEBUG               %t\n", cfg.Debug)
	fmt.Printf("LOG_LEVEL           %s\n", cfg.LogLevel)
	fmt.Printf("SERVER_PORT         %d\n", cfg.ServerPort)
	fmt.Printf("SERVER_ADDRESS      %s\n", cfg.ServerAddress)
	fmt.Printf("DATABASE_URL        %s\n", redactURL(cfg.DatabaseURL))
	fmt.Printf("DATABASE_POOL_SIZE  %d\n", cfg.DatabasePoolSize)
	fmt.Printf("OPENAI_API_KEY      %s\n", redact(cfg.OpenAIAPIKey))
	fmt.Printf("ANTHROPIC_API_KEY   %s\n", redact(cfg.AnthropicAPIKey))
	fmt.Printf("SECRET_KEY          %s\n", redact(cfg.SecretKey))
	fmt.Printf("ALLOWED_ORIGINS     %s\n", strings.Join(cfg.AllowedOriginsList(), ", "))
}

// redact hides a secret while showing whether it is set at all.
func redact(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	return fmt.Sprintf("******** (%d chars)", len(secret))
}

// redactURL hides credentials embedded in a connection string.
func redactURL(url string) string {
	if url == "" {
		return "(not set)"
	}
	at := strings.LastIndex(url, "@")
	scheme := strings.Index(url, "://")
	if at == -1 || scheme == -1 || at < scheme {
		return url
	}
	return url[:scheme+3] + "********" + url[at:]
}
