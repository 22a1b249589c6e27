// Package config loads settings from the environment (and an optional .env
// file) and builds the database handle the rest of the program shares.
//
// Variables use the COUNTRYMGR_ prefix. The first underscore after the
// prefix separates the section from the key, so
// COUNTRYMGR_DATABASE_MAX_OPEN_CONNS maps to database.max_open_conns.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "COUNTRYMGR_"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Log      LogConfig      `koanf:"log" validate:"required"`
}

type DatabaseConfig struct {
	Driver          string        `koanf:"driver" validate:"required,oneof=postgres sqlite"`
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"gte=0,lte=65535"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	SSLMode         string        `koanf:"ssl_mode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	Path            string        `koanf:"path"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"gte=0"`
	Seed            bool          `koanf:"seed"`
	Reset           bool          `koanf:"reset"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	Pretty bool   `koanf:"pretty"`
}

// Default returns the settings used when nothing is configured: a local
// SQLite file and warn-level console logging.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          DriverSQLite,
			Port:            5432,
			SSLMode:         "disable",
			Path:            "countries.db",
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: time.Hour,
		},
		Log: LogConfig{
			Level:  "warn",
			Pretty: true,
		},
	}
}

// Load reads COUNTRYMGR_* variables over Default and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey turns COUNTRYMGR_DATABASE_SSL_MODE into database.ssl_mode.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func (c *Config) Validate() error {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	switch c.Database.Driver {
	case DriverPostgres:
		var missing []string
		if c.Database.Host == "" {
			missing = append(missing, "host")
		}
		if c.Database.User == "" {
			missing = append(missing, "user")
		}
		if c.Database.Name == "" {
			missing = append(missing, "name")
		}
		if len(missing) > 0 {
			return fmt.Errorf("config validation failed: postgres requires database %s", strings.Join(missing, ", "))
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("config validation failed: sqlite requires database path")
		}
	}
	return nil
}
