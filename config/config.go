package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "config.yaml"
	defaultSecret     = "restaurant-secret"
)

type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Auth     Auth     `yaml:"auth"`
	Log      Log      `yaml:"log"`
	Broker   Broker   `yaml:"broker"`
	Admin    Admin    `yaml:"admin"`
}

type Server struct {
	Port           string   `yaml:"port"`
	Mode           string   `yaml:"mode"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Database struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	// LogLevel is one of silent, error, warn, info.
	LogLevel string `yaml:"log_level"`
}

type Auth struct {
	Secret     string        `yaml:"secret"`
	AccessTTL  time.Duration `yaml:"access_ttl"`
	RefreshTTL time.Duration `yaml:"refresh_ttl"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Broker is optional; an empty URL disables event publishing.
type Broker struct {
	URL      string `yaml:"url"`
	Exchange string `yaml:"exchange"`
}

// Admin seeds the first admin staff account when Username and Password are set.
type Admin struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Email    string `yaml:"email"`
}

func Default() *Config {
	return &Config{
		Server: Server{
			Port:           "8083",
			Mode:           "debug",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: Database{
			Driver:   "postgres",
			DSN:      "host=localhost user=postgres password=postgres dbname=restaurant port=5432 sslmode=disable",
			LogLevel: "warn",
		},
		Auth: Auth{
			Secret:     defaultSecret,
			AccessTTL:  15 * time.Minute,
			RefreshTTL: 12 * time.Hour,
		},
		Log: Log{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Broker: Broker{
			Exchange: "restaurant_events",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, an optional
// .env file and finally the process environment, in that order of precedence.
func Load() (*Config, error) {
	cfg := Default()

	path := getEnv("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.Mode = getEnv("GIN_MODE", c.Server.Mode)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.Server.AllowedOrigins = append(c.Server.AllowedOrigins, origin)
			}
		}
	}

	c.Database.Driver = getEnv("DB_DRIVER", c.Database.Driver)
	c.Database.DSN = getEnv("DATABASE_DSN", c.Database.DSN)
	c.Database.LogLevel = getEnv("DB_LOG_LEVEL", c.Database.LogLevel)

	c.Auth.Secret = getEnv("JWT_SECRET", c.Auth.Secret)
	var err error
	if c.Auth.AccessTTL, err = getDuration("ACCESS_TOKEN_TTL", c.Auth.AccessTTL); err != nil {
		return err
	}
	if c.Auth.RefreshTTL, err = getDuration("REFRESH_TOKEN_TTL", c.Auth.RefreshTTL); err != nil {
		return err
	}

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
	c.Log.Output = getEnv("LOG_OUTPUT", c.Log.Output)

	c.Broker.URL = getEnv("AMQP_URL", c.Broker.URL)
	c.Broker.Exchange = getEnv("AMQP_EXCHANGE", c.Broker.Exchange)

	c.Admin.Username = getEnv("ADMIN_USERNAME", c.Admin.Username)
	c.Admin.Password = getEnv("ADMIN_PASSWORD", c.Admin.Password)
	c.Admin.Email = getEnv("ADMIN_EMAIL", c.Admin.Email)
	return nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database dsn is required")
	}
	if c.Auth.Secret == "" {
		return errors.New("jwt secret is required")
	}
	if c.Server.Mode == "release" && c.Auth.Secret == defaultSecret {
		return errors.New("jwt secret must be set in release mode")
	}
	if c.Auth.AccessTTL <= 0 || c.Auth.RefreshTTL <= 0 {
		return errors.New("token lifetimes must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
