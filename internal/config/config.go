package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvProduction = "production"

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Log      LogConfig
}

type AppConfig struct {
	AppName       string
	Environment   string
	HTTPPort      string
	AllowedOrigin string
	MigrationsDir string
}

func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Environment, EnvProduction)
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

// SessionConfig holds the signing secret and the cookie attributes shared by
// the session cookie and the CSRF cookie.
type SessionConfig struct {
	Secret     string
	CookieName string
	Secure     bool
	SameSite   string
	HTTPOnly   bool
	MaxAge     time.Duration
}

type LogConfig struct {
	Level string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		s := strings.TrimSpace(v.GetString(key))
		if s == "" {
			missing = append(missing, key)
		}
		return s
	}
	opt := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	cfg.App = AppConfig{
		AppName:       req("APP_NAME"),
		Environment:   req("APP_ENV"),
		HTTPPort:      req("HTTP_PORT"),
		AllowedOrigin: opt("CORS_ALLOWED_ORIGIN"),
		MigrationsDir: opt("MIGRATIONS_DIR"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        v.GetDuration("DB_CONNECT_TIMEOUT"),
		PoolMaxConns:          v.GetInt32("DB_POOL_MAX_CONNS"),
		PoolMinConns:          v.GetInt32("DB_POOL_MIN_CONNS"),
		PoolMaxConnLifetime:   v.GetDuration("DB_POOL_MAX_CONN_LIFETIME"),
		PoolMaxConnIdleTime:   v.GetDuration("DB_POOL_MAX_CONN_IDLE_TIME"),
		PoolHealthCheckPeriod: v.GetDuration("DB_POOL_HEALTH_CHECK_PERIOD"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		TTL:      time.Duration(v.GetInt("REDIS_TTL")) * time.Second,
	}

	secure := cfg.App.IsProduction()
	if v.IsSet("SESSION_COOKIE_SECURE") {
		secure = v.GetBool("SESSION_COOKIE_SECURE")
	}
	cfg.Session = SessionConfig{
		Secret:     req("SESSION_SECRET"),
		CookieName: opt("SESSION_COOKIE_NAME"),
		Secure:     secure,
		SameSite:   opt("SESSION_COOKIE_SAME_SITE"),
		HTTPOnly:   true,
		MaxAge:     v.GetDuration("SESSION_MAX_AGE"),
	}

	cfg.Log = LogConfig{Level: opt("LOG_LEVEL")}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if cfg.Session.MaxAge <= 0 {
		return Config{}, fmt.Errorf("invalid SESSION_MAX_AGE: %s", v.GetString("SESSION_MAX_AGE"))
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("CORS_ALLOWED_ORIGIN", "http://localhost:5173")
	v.SetDefault("MIGRATIONS_DIR", "migrations")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "job_board")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	v.SetDefault("DB_POOL_MAX_CONNS", 10)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_TTL", 600)

	v.SetDefault("SESSION_COOKIE_NAME", "_job_board_session")
	v.SetDefault("SESSION_COOKIE_SAME_SITE", "Lax")
	v.SetDefault("SESSION_MAX_AGE", "336h")

	v.SetDefault("LOG_LEVEL", "info")
}
