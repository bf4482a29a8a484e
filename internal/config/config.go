// Package config loads service settings from an optional YAML file and the
// environment. Environment variables always win over the file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"dev"`
	HTTPServer `yaml:"http_server"`
	Storage    Storage `yaml:"storage"`
	Redis      Redis   `yaml:"redis"`
	JWT        JWT     `yaml:"jwt"`
	Hashing    Hashing `yaml:"hashing"`
	Admin      Admin   `yaml:"admin"`
	Log        Log     `yaml:"log"`
}

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type Storage struct {
	Driver      string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
	DatabaseURL string `yaml:"database_url" env:"DATABASE_URL"`
	SQLitePath  string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"students.db"`
}

type Redis struct {
	Addr     string `yaml:"address" env:"REDIS_ADDR" env-required:"true"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Hashing bounds concurrent bcrypt work. Zero means one worker per CPU.
type Hashing struct {
	Workers int `yaml:"workers" env:"HASH_WORKERS" env-default:"0"`
}

type JWT struct {
	Secret    string        `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
	Algorithm string        `yaml:"algorithm" env:"JWT_ALGORITHM" env-default:"HS256"`
	TTL       time.Duration `yaml:"ttl" env:"JWT_TTL" env-default:"24h"`
	Issuer    string        `yaml:"issuer" env:"JWT_ISSUER" env-default:"student-registry"`
}

// Admin is the account created on first start when no admin exists.
// An empty password disables the bootstrap.
type Admin struct {
	Username string `yaml:"username" env:"ADMIN_USERNAME" env-default:"admin"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Pretty bool   `yaml:"pretty" env:"LOG_PRETTY" env-default:"false"`
}

var (
	loadDotEnv = func() error { return godotenv.Load() }
	readConfig = cleanenv.ReadConfig
	readEnv    = cleanenv.ReadEnv
)

// Load reads the config file at path (skipped when path is empty), then the
// environment. A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = loadDotEnv()

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := readConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	} else if err := readEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Storage.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s driver", DriverPostgres)
		}
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the %s driver", DriverSQLite)
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}

	switch c.JWT.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("unsupported JWT_ALGORITHM %q", c.JWT.Algorithm)
	}
	if c.Hashing.Workers < 0 {
		return fmt.Errorf("HASH_WORKERS must not be negative, got %d", c.Hashing.Workers)
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWT.TTL)
	}
	return nil
}
