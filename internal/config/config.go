package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Client holds all configuration for the game client core.
type Client struct {
	// Server
	ServerHost string `yaml:"server_host"`
	ServerPort uint16 `yaml:"server_port"`

	// Identity
	Username string `yaml:"username"`

	// Protocol
	ProtocolVersion int32  `yaml:"protocol_version"`
	Brand           string `yaml:"brand"`
	Locale          string `yaml:"locale"`
	ViewDistance    int32  `yaml:"view_distance"`

	// Simulation
	TickIntervalMS int `yaml:"tick_interval_ms"`

	// Diagnostics
	LogLevel  string `yaml:"log_level"` // debug, info, warn, error
	Profiling bool   `yaml:"profiling"`

	// Journal
	Journal JournalConfig `yaml:"journal"`
}

// JournalConfig controls the optional database-backed session journal.
type JournalConfig struct {
	Enabled  bool           `yaml:"enabled"`
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// TickInterval returns the tick interval as a duration.
func (c Client) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}

// DefaultClient returns Client config with sensible defaults.
func DefaultClient() Client {
	return Client{
		ServerHost:      "127.0.0.1",
		ServerPort:      25565,
		Username:        "craftbot",
		ProtocolVersion: 767,
		Brand:           "vanilla",
		Locale:          "en_us",
		ViewDistance:    8,
		TickIntervalMS:  50,
		LogLevel:        "info",
		Journal: JournalConfig{
			Database: DatabaseConfig{
				Host:     "127.0.0.1",
				Port:     5432,
				User:     "craftlink",
				Password: "craftlink",
				DBName:   "craftlink",
				SSLMode:  "disable",
			},
		},
	}
}

// LoadClient loads client config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadClient(path string) (Client, error) {
	cfg := DefaultClient()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Client) validate() error {
	if c.Username == "" {
		return fmt.Errorf("username must not be empty")
	}
	if c.ViewDistance < 2 || c.ViewDistance > 32 {
		return fmt.Errorf("view_distance %d out of range [2,32]", c.ViewDistance)
	}
	if c.TickIntervalMS <= 0 {
		return fmt.Errorf("tick_interval_ms must be positive")
	}
	return nil
}
