package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	MySQL    = "mysql"
	Postgres = "postgres"
	SQLite   = "sqlite"
)

type Configs struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`

	Database  DatabaseConfigs  `toml:"database"`
	ApiServer APIServerConfigs `toml:"api_server"`
}

type DatabaseConfigs struct {
	Driver     string `toml:"driver"`
	Host       string `toml:"host"`
	Port       string `toml:"port"`
	Database   string `toml:"database"`
	User       string `toml:"user"`
	Password   string `toml:"password"`
	SQLitePath string `toml:"sqlite_path"`

	MaxOpenConns  int           `toml:"max_open_conns"`
	MaxIdleConns  int           `toml:"max_idle_conns"`
	SlowThreshold time.Duration `toml:"slow_threshold"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	switch d.Driver {
	case Postgres:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			d.Host,
			d.Port,
			d.User,
			d.Password,
			d.Database,
		)
	case SQLite:
		return d.SQLitePath
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
			d.User,
			d.Password,
			d.Host,
			d.Port,
			d.Database,
		)
	}
}

type APIServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`

	DefaultPageSize int `toml:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size"`

	AllowedOrigins []string `toml:"allowed_origins"`

	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

func (c APIServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func Default() Configs {
	return Configs{
		Env:      "local",
		LogLevel: "info",
		Database: DatabaseConfigs{
			Driver:        SQLite,
			Host:          "localhost",
			Port:          "3306",
			Database:      "persons",
			User:          "root",
			SQLitePath:    "persons.db",
			MaxOpenConns:  20,
			MaxIdleConns:  5,
			SlowThreshold: 200 * time.Millisecond,
		},
		ApiServer: APIServerConfigs{
			Port:            "8080",
			DefaultPageSize: 10,
			MaxPageSize:     100,
			AllowedOrigins:  []string{"http://localhost:4200"},
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// Load returns the default configs overlaid with the toml file at path. An empty path
// returns the defaults.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, fmt.Errorf("cannot decode config file %s: %w", path, err)
	}

	return cfg, nil
}
