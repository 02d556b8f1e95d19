package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DriverSQLite     = "sqlite"
	DriverPostgreSQL = "postgresql"
)

type DatabaseConfig struct {
	Driver       string `toml:"driver"`
	DSN          string `toml:"dsn"`
	MaxOpenConns int    `toml:"max_open_conns"`
}

type ConfigParam struct {
	ServerPort string         `toml:"server_port"`
	HandleCORS bool           `toml:"handle_cors"`
	APIPrefix  string         `toml:"api_prefix"`
	LogLevel   string         `toml:"log_level"`
	Database   DatabaseConfig `toml:"database"`
}

var cfg *ConfigParam

func Config() *ConfigParam {
	return cfg
}

// Default returns the configuration used when no config file is supplied.
func Default() *ConfigParam {
	return &ConfigParam{
		ServerPort: "3000",
		HandleCORS: true,
		APIPrefix:  "/api",
		LogLevel:   "info",
		Database: DatabaseConfig{
			Driver:       DriverSQLite,
			DSN:          "database.sqlite",
			MaxOpenConns: 10,
		},
	}
}

// LoadConfig loads filename on top of the defaults, applies environment
// overrides and validates the result. An empty filename yields the defaults.
func LoadConfig(filename string) error {
	cp := Default()
	if filename != "" {
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("error reading config file: %v", err)
		}
		if _, err := toml.Decode(string(content), cp); err != nil {
			return fmt.Errorf("error parsing config file: %v", err)
		}
	}
	applyEnv(cp)
	if err := cp.Validate(); err != nil {
		return err
	}
	cfg = cp
	return nil
}

// applyEnv overrides file settings with PORT, DB_DRIVER, DATABASE_URL and
// LOG_LEVEL when they are set.
func applyEnv(cp *ConfigParam) {
	if v := os.Getenv("PORT"); v != "" {
		cp.ServerPort = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cp.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cp.Database.DSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cp.LogLevel = v
	}
}

func (cp *ConfigParam) Validate() error {
	if cp.ServerPort == "" {
		return fmt.Errorf("server port not defined")
	}
	switch cp.Database.Driver {
	case DriverSQLite, DriverPostgreSQL:
	default:
		return fmt.Errorf("unsupported database driver: %q", cp.Database.Driver)
	}
	if cp.Database.DSN == "" {
		return fmt.Errorf("database dsn not defined")
	}
	if p := strings.Trim(cp.APIPrefix, "/"); p != "" {
		cp.APIPrefix = "/" + p
	} else {
		cp.APIPrefix = ""
	}
	return nil
}

func init() {
	cfg = Default()
}
