package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 3001
	defaultEnv        = "development"
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "meritlives_tools"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"
	defaultRedisHost  = "localhost"
	defaultRedisPort  = 6379
	defaultRedisDB    = 0
	defaultMongoHost  = "localhost"
	defaultMongoPort  = 27017
	defaultMongoName  = "meritlives_tools"

	defaultAITimeoutSeconds = 30
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	Env            string                `yaml:"env"` // "development" | "production"
	Database       DatabaseRuntimeConfig `yaml:"database"`
	Redis          RedisRuntimeConfig    `yaml:"redis"`
	Mongo          MongoRuntimeConfig    `yaml:"mongo"`
	JWTSecret      string                `yaml:"jwt_secret"`
	AllowedOrigins []string              `yaml:"allowed_origins"`
	Timezone       string                `yaml:"timezone"`
	AI             AIConfig              `yaml:"ai"`
	Paystack       PaystackConfig        `yaml:"paystack"`
}

type DatabaseRuntimeConfig struct {
	DSN       string            `yaml:"dsn"`
	URL       string            `yaml:"url"`
	Host      string            `yaml:"host"`
	Port      int               `yaml:"port"`
	User      string            `yaml:"user"`
	Username  string            `yaml:"username"`
	Password  string            `yaml:"password"`
	Name      string            `yaml:"name"`
	DBName    string            `yaml:"db_name"`
	Charset   string            `yaml:"charset"`
	ParseTime bool              `yaml:"parse_time"`
	Loc       string            `yaml:"loc"`
	Params    map[string]string `yaml:"params"`
}

type RedisRuntimeConfig struct {
	URL      string            `yaml:"url"`
	Host     string            `yaml:"host"`
	Port     int               `yaml:"port"`
	Username string            `yaml:"username"`
	Password string            `yaml:"password"`
	DB       int               `yaml:"db"`
	TLS      bool              `yaml:"tls"`
	Scheme   string            `yaml:"scheme"`
	Params   map[string]string `yaml:"params"`
}

type MongoRuntimeConfig struct {
	URI      string `yaml:"uri"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// AIConfig configures the AI-assist providers. Providers are tried in order;
// the first enabled one (or the one matching the configured id) is used.
type AIConfig struct {
	TimeoutSeconds  int          `yaml:"timeout_seconds"`
	DefaultProvider string       `yaml:"default_provider"`
	Providers       []AIProvider `yaml:"providers"`
}

type AIProvider struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"` // openai | openai-compatible | anthropic
	APIKey       string `yaml:"api_key"`
	Endpoint     string `yaml:"endpoint"`
	DefaultModel string `yaml:"default_model"`
	Enabled      bool   `yaml:"enabled"`
}

// Timeout returns the per-call AI request timeout.
func (c AIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return defaultAITimeoutSeconds * time.Second
}

type PaystackConfig struct {
	SecretKey   string `yaml:"secret_key"`
	PublicKey   string `yaml:"public_key"`
	CallbackURL string `yaml:"callback_url"`
	Enabled     bool   `yaml:"enabled"`
}

// Load reads and validates the YAML config file.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg := defaultAppConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	applyDefaults(&cfg)
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if cfg.Database.Port < 1 || cfg.Database.Port > 65535 {
		return nil, fmt.Errorf("invalid database.port %d in %q, expected 1-65535", cfg.Database.Port, path)
	}
	if cfg.Redis.Port < 1 || cfg.Redis.Port > 65535 {
		return nil, fmt.Errorf("invalid redis.port %d in %q, expected 1-65535", cfg.Redis.Port, path)
	}
	if cfg.Redis.DB < 0 {
		return nil, fmt.Errorf("invalid redis.db %d in %q, expected >= 0", cfg.Redis.DB, path)
	}
	if cfg.Mongo.Port < 1 || cfg.Mongo.Port > 65535 {
		return nil, fmt.Errorf("invalid mongo.port %d in %q, expected 1-65535", cfg.Mongo.Port, path)
	}
	for i, p := range cfg.AI.Providers {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("ai.providers[%d] in %q has no id", i, path)
		}
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Database: DatabaseRuntimeConfig{
			Host:      defaultDBHost,
			Port:      defaultDBPort,
			User:      defaultDBUser,
			Password:  defaultDBPassword,
			Name:      defaultDBName,
			Charset:   defaultDBCharset,
			ParseTime: true,
			Loc:       defaultDBLoc,
		},
		Redis: RedisRuntimeConfig{
			Host: defaultRedisHost,
			Port: defaultRedisPort,
			DB:   defaultRedisDB,
		},
		Mongo: MongoRuntimeConfig{
			Host:     defaultMongoHost,
			Port:     defaultMongoPort,
			Database: defaultMongoName,
		},
		AI: AIConfig{
			TimeoutSeconds: defaultAITimeoutSeconds,
		},
	}
}

// applyDefaults restores zero-valued fields that YAML decoding may have blanked.
func applyDefaults(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = defaultEnv
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = defaultDBPort
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = defaultRedisPort
	}
	if cfg.Mongo.Port == 0 {
		cfg.Mongo.Port = defaultMongoPort
	}
	if strings.TrimSpace(cfg.Mongo.Database) == "" {
		cfg.Mongo.Database = defaultMongoName
	}
	if cfg.AI.TimeoutSeconds == 0 {
		cfg.AI.TimeoutSeconds = defaultAITimeoutSeconds
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.ToLower(strings.TrimSpace(c.Env)) != "production"
}
