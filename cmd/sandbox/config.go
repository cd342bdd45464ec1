package main

import (
	"crypto/rand"
	"encoding/hex"
	"os"

	"homevest-listings/pkg/config"
	"homevest-listings/pkg/logger"

	"github.com/joho/godotenv"
)

// load environment variables and configuration
func LoadConfiguration() *config.Config {
	envErr := godotenv.Load()
	cfg := loadConfigFile()
	logger.InitLogger(os.Stdout, cfg.Log.Level)
	if envErr != nil {
		logger.GlobalLogger.Debugf("No .env file found, relying on system environment variables: %v", envErr)
	}
	ensureSecret(cfg)
	return cfg
}

// load the application configuration from a YAML file
func loadConfigFile() *config.Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.GlobalLogger.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// Tokens signed with a generated secret stop working when the process exits.
func ensureSecret(cfg *config.Config) {
	if cfg.Sandbox.JWTSecret != "" {
		return
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		logger.GlobalLogger.Fatalf("Failed to generate JWT secret: %v", err)
	}
	cfg.Sandbox.JWTSecret = hex.EncodeToString(buf)
	logger.GlobalLogger.Printf("No JWT secret configured, generated one for this run")
}
