package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/apollo-backend/internal/data/db"
	"github.com/yungbote/apollo-backend/internal/platform/envutil"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
	"github.com/yungbote/apollo-backend/internal/seed"
)

type Config struct {
	Port        string
	Environment string

	DB db.Config

	JWTSecretKey   string
	AccessTokenTTL time.Duration

	CORSOrigins []string

	SeedOnStart      bool
	SeedUserPassword string

	OtelServiceName string
}

// LoadDotEnv loads .env (or ENV_FILE) into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv() error {
	path := strings.TrimSpace(os.Getenv("ENV_FILE"))
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return godotenv.Load(path)
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:        envutil.String("PORT", "8080", log),
		Environment: envutil.String("APP_ENV", "development", log),
		DB: db.Config{
			Driver:      envutil.String("DATABASE_TYPE", db.DriverPostgres, log),
			DSN:         envutil.String("DATABASE_URL", "", log),
			Host:        envutil.String("POSTGRES_HOST", "localhost", log),
			Port:        envutil.String("POSTGRES_PORT", "5432", log),
			User:        envutil.String("POSTGRES_USER", "postgres", log),
			Password:    envutil.String("POSTGRES_PASSWORD", "", log),
			Name:        envutil.String("POSTGRES_NAME", "apollo", log),
			SQLitePath:  envutil.String("SQLITE_PATH", "", log),
			TxIsolation: envutil.String("DB_TX_ISOLATION", "", log),
		},
		JWTSecretKey:     envutil.String("JWT_SECRET_KEY", "defaultsecret", log),
		AccessTokenTTL:   envutil.Seconds("ACCESS_TOKEN_TTL", time.Hour, log),
		SeedOnStart:      envutil.Bool("SEED_ON_START", false, log),
		SeedUserPassword: envutil.String("SEED_USER_PASSWORD", seed.DefaultPassword, log),
		OtelServiceName:  envutil.String("OTEL_SERVICE_NAME", "apollo", log),
	}
	if cfg.DB.TxIsolation == "" && strings.EqualFold(cfg.DB.Driver, db.DriverPostgres) {
		cfg.DB.TxIsolation = "repeatable read"
	}
	for _, o := range strings.Split(envutil.String("CORS_ALLOWED_ORIGINS", "", log), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	if cfg.JWTSecretKey == "defaultsecret" && log != nil {
		log.Warn("JWT_SECRET_KEY not set, using the built-in development secret")
	}
	return cfg
}
