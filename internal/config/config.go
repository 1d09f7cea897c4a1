package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DriverMySQL selects the MySQL store.
	DriverMySQL = "mysql"
	// DriverSQLite selects the embedded SQLite store.
	DriverSQLite = "sqlite"
)

// Config holds application level configuration loaded from environment variables
// and an optional config.yaml.
type Config struct {
	Env                      string `mapstructure:"env"`
	Port                     string `mapstructure:"port"`
	EnableGlobalErrorLogging bool   `mapstructure:"enable_global_error_logging"`
	SwaggerHost              string `mapstructure:"swagger_host"`
	ResetDB                  bool   `mapstructure:"reset_db"`
	Log                      struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Database Database `mapstructure:"database"`
}

// Database describes how to reach the relational store.
type Database struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// per-environment connection defaults, overridable through environments.<env>.database
var defaultDatabases = map[string]Database{
	"development": {Driver: DriverSQLite, DSN: "fsjstd-restapi.db"},
	"test":        {Driver: DriverSQLite, DSN: "file::memory:"},
	"production":  {Driver: DriverMySQL, DSN: "user:password@tcp(localhost:3306)/app?charset=utf8mb4&parseTime=True&loc=Local"},
}

// Load builds Config from the environment, config.yaml in the working directory
// and sensible defaults.
func Load() (*Config, error) {
	return load(viper.New(), ".")
}

func load(v *viper.Viper, configPath string) (*Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("port", "5000")
	v.SetDefault("enable_global_error_logging", false)
	v.SetDefault("swagger_host", "")
	v.SetDefault("reset_db", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	_ = v.BindEnv("env", "APP_ENV")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	env := v.GetString("env")
	def, ok := defaultDatabases[env]
	if !ok {
		def = defaultDatabases["development"]
	}
	v.SetDefault("database.driver", v.GetString("environments."+env+".database.driver"))
	v.SetDefault("database.dsn", v.GetString("environments."+env+".database.dsn"))
	if v.GetString("database.driver") == "" {
		v.Set("database.driver", def.Driver)
	}
	if v.GetString("database.dsn") == "" {
		v.Set("database.dsn", def.DSN)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	switch cfg.Database.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	return &cfg, nil
}
