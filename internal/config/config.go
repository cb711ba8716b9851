package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Dynamo DynamoConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DynamoConfig holds DynamoDB case table settings.
type DynamoConfig struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	Table     string `mapstructure:"table"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// S3Config holds AWS S3 settings for case documents.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the HCM_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HCM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DynamoDB defaults
	v.SetDefault("dynamo.region", "us-east-1")
	v.SetDefault("dynamo.endpoint", "")
	v.SetDefault("dynamo.table", "HealthCareCases")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "HCM_SERVER_PORT",
		"server.read_timeout":  "HCM_SERVER_READ_TIMEOUT",
		"server.write_timeout": "HCM_SERVER_WRITE_TIMEOUT",
		"server.environment":   "HCM_SERVER_ENVIRONMENT",
		"dynamo.region":        "HCM_DYNAMO_REGION",
		"dynamo.endpoint":      "HCM_DYNAMO_ENDPOINT",
		"dynamo.table":         "HCM_DYNAMO_TABLE",
		"dynamo.access_key":    "HCM_DYNAMO_ACCESS_KEY",
		"dynamo.secret_key":    "HCM_DYNAMO_SECRET_KEY",
		"s3.region":            "HCM_S3_REGION",
		"s3.endpoint":          "HCM_S3_ENDPOINT",
		"s3.access_key":        "HCM_S3_ACCESS_KEY",
		"s3.secret_key":        "HCM_S3_SECRET_KEY",
		"s3.presign_expiry":    "HCM_S3_PRESIGN_EXPIRY",
		"log.level":            "HCM_LOG_LEVEL",
		"log.format":           "HCM_LOG_FORMAT",
		"cors.allowed_origins": "HCM_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if HCM_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("HCM_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Dynamo = DynamoConfig{
		Region:    v.GetString("dynamo.region"),
		Endpoint:  v.GetString("dynamo.endpoint"),
		Table:     v.GetString("dynamo.table"),
		AccessKey: v.GetString("dynamo.access_key"),
		SecretKey: v.GetString("dynamo.secret_key"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
