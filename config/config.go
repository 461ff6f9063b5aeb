package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	App struct {
		Env         string `toml:"env"          env:"APP_ENV"`
		Port        string `toml:"port"         env:"PORT"`
		FrontendURL string `toml:"frontend_url" env:"FRONTEND_URL"`
		LogLevel    string `toml:"log_level"    env:"LOG_LEVEL"`
	} `toml:"app"`
	DB struct {
		Driver   string `toml:"driver"   env:"DB_DRIVER"`
		Host     string `toml:"host"     env:"DB_HOST"`
		Port     string `toml:"port"     env:"DB_PORT"`
		User     string `toml:"user"     env:"DB_USER"`
		Password string `toml:"password" env:"DB_PASSWORD"`
		Name     string `toml:"name"     env:"DB_NAME"`
		SSLMode  string `toml:"sslmode"  env:"DB_SSLMODE"`
		Path     string `toml:"path"     env:"DB_PATH"` // sqlite file
	} `toml:"db"`
	JWT struct {
		Secret        string `toml:"secret"         env:"JWT_SECRET"`
		ExpiryMinutes int    `toml:"expiry_minutes" env:"JWT_EXPIRY_MINUTES"`
	} `toml:"jwt"`
	Report struct {
		ChromeTimeoutSeconds int    `toml:"chrome_timeout_seconds" env:"REPORT_CHROME_TIMEOUT_SECONDS"`
		ChromePath           string `toml:"chrome_path"            env:"REPORT_CHROME_PATH"`
	} `toml:"report"`
}

const defaultJWTSecret = "change-me-scorer-secret"

// Global DB instance, nil when the memory driver is used.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.App.Env = "development"
	cfg.App.Port = "8088"
	cfg.App.FrontendURL = "http://localhost:3000"
	cfg.App.LogLevel = "info"

	cfg.DB.Driver = DriverPostgres
	cfg.DB.Host = "localhost"
	cfg.DB.Port = "5432"
	cfg.DB.User = "postgres"
	cfg.DB.Password = "password"
	cfg.DB.Name = "crease_db"
	cfg.DB.SSLMode = "disable"
	cfg.DB.Path = "crease.db"

	cfg.JWT.Secret = defaultJWTSecret
	cfg.JWT.ExpiryMinutes = 12 * 60

	cfg.Report.ChromeTimeoutSeconds = 30
	return cfg
}

// LoadConfig layers defaults, the TOML file named by CONFIG_FILE (config.toml
// when unset) and the process environment, later layers winning. A .env file
// is loaded into the environment first, so it may name CONFIG_FILE too.
// Missing files are skipped.
func LoadConfig(log logrus.FieldLogger) (*Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found or error loading, relying on system environment variables.")
	}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.toml"
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		log.WithField("path", path).Debug("no config file, using defaults and environment")
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.JWT.Secret == defaultJWTSecret {
		log.Warn("Using default JWT secret. Set JWT_SECRET for production.")
	}
	if cfg.DB.Driver == DriverPostgres && cfg.DB.Password == "password" && cfg.App.Env == "production" {
		log.Warn("Using default DB password in production. Set DB_PASSWORD.")
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("config: unknown db driver %q", c.DB.Driver)
	}
	if c.App.Port == "" {
		return errors.New("config: port is required")
	}
	if c.JWT.Secret == "" {
		return errors.New("config: jwt secret is required")
	}
	if c.JWT.ExpiryMinutes <= 0 {
		return fmt.Errorf("config: jwt expiry must be positive, got %d", c.JWT.ExpiryMinutes)
	}
	return nil
}

// ConnectDB opens the configured database. The memory driver returns nil.
func ConnectDB(cfg Config, log logrus.FieldLogger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DB.Driver {
	case DriverMemory:
		log.Info("Using in-memory match store, nothing will be persisted")
		return nil, nil
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DB.Path)
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.DB.Host,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Port,
			cfg.DB.SSLMode,
		)
		dialector = postgres.Open(dsn)
	}

	gormConfig := &gorm.Config{}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.DB.Driver == DriverSQLite {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	DB = gormDB
	log.WithField("driver", cfg.DB.Driver).Info("Successfully connected to database!")
	return gormDB, nil
}

// Initialize loads the configuration and connects to the database once.
func Initialize(log logrus.FieldLogger) error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig(log)
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		if _, err = ConnectDB(*appConfig, log); err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
// It panics if Initialize has not run.
func GetConfig() *Config {
	if appConfig == nil {
		panic("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}
