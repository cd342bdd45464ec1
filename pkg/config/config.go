package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	PropertyAPI PropertyAPIConfig `yaml:"property_api"`
	TokenStore  TokenStoreConfig  `yaml:"token_store"`
	Log         struct {
		Level string `yaml:"level" validate:"omitempty,oneof=DEBUG INFO ERROR debug info error"`
	} `yaml:"log"`
	Sandbox SandboxConfig `yaml:"sandbox"`
}

type PropertyAPIConfig struct {
	BaseURL    string        `yaml:"base_url" validate:"required,url"`
	CreatePath string        `yaml:"create_path" validate:"required,startswith=/"`
	Timeout    time.Duration `yaml:"timeout" validate:"gt=0"`
	MaxRetries int           `yaml:"max_retries" validate:"gte=0,lte=10"`
	RetryDelay time.Duration `yaml:"retry_delay" validate:"gte=0"`
}

type TokenStoreConfig struct {
	Driver string      `yaml:"driver" validate:"oneof=file redis"`
	Path   string      `yaml:"path" validate:"required_if=Driver file"`
	Key    string      `yaml:"key" validate:"required"`
	Redis  RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Host        string `yaml:"host" validate:"required,hostname|ip"`
	Port        int    `yaml:"port" validate:"required,gt=0,lte=65535"`
	Password    string `yaml:"password"`
	DB          int    `yaml:"db" validate:"gte=0"`
	Prefix      string `yaml:"prefix"`
	TLSEnabled  bool   `yaml:"tls_enabled"`
	TLSCertFile string `yaml:"tls_cert_file"`
}

type SandboxConfig struct {
	Port               int         `yaml:"port" validate:"gt=0,lte=65535"`
	JWTSecret          string      `yaml:"jwt_secret"`
	FailFirst          int         `yaml:"fail_first" validate:"gte=0"`
	MaxUploadMB        int64       `yaml:"max_upload_mb" validate:"gt=0"`
	RateLimitPerMinute int         `yaml:"rate_limit_per_minute" validate:"gt=0"`
	AllowedOrigins     []string    `yaml:"allowed_origins"`
	Store              string      `yaml:"store" validate:"oneof=memory mongo"`
	Mongo              MongoConfig `yaml:"mongo"`
}

// MongoConfig is only consulted when the sandbox store is "mongo"
type MongoConfig struct {
	URI            string        `yaml:"uri" validate:"omitempty,startswith=mongodb"`
	Database       string        `yaml:"database"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" validate:"gte=0"`
}

var validate = validator.New()

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.PropertyAPI = PropertyAPIConfig{
		BaseURL:    "http://localhost:8080",
		CreatePath: "/api/properties",
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: 2 * time.Second,
	}
	cfg.TokenStore = TokenStoreConfig{
		Driver: "file",
		Path:   defaultTokenPath(),
		Key:    "auth_token",
		Redis: RedisConfig{
			Host:   "localhost",
			Port:   6379,
			Prefix: "homevest:",
		},
	}
	cfg.Log.Level = "INFO"
	cfg.Sandbox = SandboxConfig{
		Port:               8080,
		MaxUploadMB:        20,
		RateLimitPerMinute: 100,
		Store:              "memory",
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "homevest_sandbox",
			ConnectTimeout: 10 * time.Second,
		},
	}
	return cfg
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".homevest-tokens.json"
	}
	return dir + "/homevest/tokens.json"
}

// LoadConfig reads the YAML file at path over the defaults, applies
// environment overrides and validates the result. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %v", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %v", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	if cfg.Sandbox.Store == "mongo" && (cfg.Sandbox.Mongo.URI == "" || cfg.Sandbox.Mongo.Database == "") {
		return nil, errors.New("invalid config: sandbox mongo store needs a uri and a database")
	}
	if cfg.TokenStore.Redis.TLSEnabled && cfg.TokenStore.Redis.TLSCertFile != "" {
		if _, err := os.Stat(cfg.TokenStore.Redis.TLSCertFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("TLS certificate file does not exist: %s", cfg.TokenStore.Redis.TLSCertFile)
		}
	}

	return cfg, nil
}

// Override with environment variables if set
func applyEnv(cfg *Config) error {
	if v := os.Getenv("PROPERTY_API_URL"); v != "" {
		cfg.PropertyAPI.BaseURL = v
	}
	if v := os.Getenv("PROPERTY_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid PROPERTY_API_TIMEOUT value: %v", err)
		}
		cfg.PropertyAPI.Timeout = d
	}
	if v := os.Getenv("PROPERTY_API_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PROPERTY_API_MAX_RETRIES value: %v", err)
		}
		cfg.PropertyAPI.MaxRetries = n
	}
	if v := os.Getenv("TOKEN_STORE_DRIVER"); v != "" {
		cfg.TokenStore.Driver = v
	}
	if v := os.Getenv("TOKEN_STORE_PATH"); v != "" {
		cfg.TokenStore.Path = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.TokenStore.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_PORT value: %v", err)
		}
		cfg.TokenStore.Redis.Port = port
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.TokenStore.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB value: %v", err)
		}
		cfg.TokenStore.Redis.DB = db
	}
	if v := os.Getenv("REDIS_TLS_ENABLED"); v != "" {
		cfg.TokenStore.Redis.TLSEnabled = v == "true"
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SANDBOX_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SANDBOX_PORT value: %v", err)
		}
		cfg.Sandbox.Port = port
	}
	if v := os.Getenv("SANDBOX_STORE"); v != "" {
		cfg.Sandbox.Store = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.Sandbox.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DB_NAME"); v != "" {
		cfg.Sandbox.Mongo.Database = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Sandbox.JWTSecret = v
	}
	return nil
}
