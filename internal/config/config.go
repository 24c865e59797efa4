package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
)

type Config struct {
	GinMode   string
	TZ        string
	Port      string
	DBDriver  string
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	DBSSLMode string
	DBPath    string

	JWTAccessSecret  string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	CORSOrigin       string
}

// findEnvFile walks up from the working directory looking for name.
func findEnvFile(name string) (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func Load() *Config {
	if getenv("GIN_MODE", "debug") == "debug" {
		const filename = ".env.dev"
		if envPath, ok := findEnvFile(filename); ok {
			if err := godotenv.Load(envPath); err != nil {
				log.Printf("warning: could not load %s: %v", envPath, err)
			} else {
				log.Printf("loaded %s from %s", filename, envPath)
			}
		} else {
			log.Printf("warning: %s not found in any parent directory", filename)
		}
	}

	cfg := &Config{
		GinMode:   getenv("GIN_MODE", "debug"),
		TZ:        getenv("TZ", "UTC"),
		Port:      getenv("PORT", "8080"),
		DBDriver:  getenv("DB_DRIVER", DriverPostgres),
		DBHost:    getenv("DB_HOST", "localhost"),
		DBPort:    os.Getenv("DB_PORT"),
		DBUser:    getenv("DB_USER", "postgres"),
		DBPass:    getenv("DB_PASS", ""),
		DBName:    getenv("DB_NAME", "shelfshare"),
		DBSSLMode: os.Getenv("DB_SSLMODE"),
		DBPath:    getenv("DB_PATH", "data/shelfshare.db"),

		JWTAccessSecret:  getenv("JWT_ACCESS_SECRET", "dev_access_secret_change_me"),
		JWTRefreshSecret: getenv("JWT_REFRESH_SECRET", "dev_refresh_secret_change_me"),
		AccessTokenTTL:   getduration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL:  getduration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		CORSOrigin:       getenv("CORS_ORIGIN", "http://localhost:3000"),
	}

	if cfg.DBPort == "" {
		switch cfg.DBDriver {
		case DriverMySQL:
			cfg.DBPort = "3306"
		default:
			cfg.DBPort = "5432"
		}
	}

	if cfg.DBSSLMode == "" {
		if cfg.IsProduction() {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverSQLite:
		return c.DBPath
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=%s",
			c.DBUser,
			c.DBPass,
			c.DBHost,
			c.DBPort,
			c.DBName,
			c.TZ,
		)
	default:
		return fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			c.DBHost,
			c.DBUser,
			c.DBPass,
			c.DBName,
			c.DBPort,
			c.DBSSLMode,
			c.TZ,
		)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getduration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("warning: invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
