package app

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/apollo-backend/internal/data/db"
	apphttp "github.com/yungbote/apollo-backend/internal/http"
	"github.com/yungbote/apollo-backend/internal/observability"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
	"github.com/yungbote/apollo-backend/internal/seed"
)

type App struct {
	Log      *logger.Logger
	DB       *db.Service
	Server   *apphttp.Server
	Cfg      Config
	Repos    Repos
	Services Services

	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: cfg.OtelServiceName,
		Environment: cfg.Environment,
	})

	dbs, err := db.NewService(log, cfg.DB)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	a, err := NewWithDB(log, cfg, dbs, bcrypt.DefaultCost)
	if err != nil {
		_ = dbs.Close()
		log.Sync()
		return nil, err
	}
	a.otelShutdown = otelShutdown
	return a, nil
}

// NewWithDB wires the app on an open database. It migrates the schema but does
// not seed or start tracing.
func NewWithDB(log *logger.Logger, cfg Config, dbs *db.Service, hashCost int) (*App, error) {
	if err := dbs.AutoMigrateAll(); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	theDB := dbs.DB()

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, dbs.TxOptions(), reposet, hashCost)
	handlerset := wireHandlers(theDB, log, serviceset)
	middleware := wireMiddleware(log, serviceset)
	server := apphttp.NewServer(
		routerConfig(log, cfg, observability.Enabled(), handlerset, middleware),
		":"+cfg.Port,
	)

	return &App{
		Log:      log,
		DB:       dbs,
		Server:   server,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

// Seed loads the embedded fixture through the service layer.
func (a *App) Seed(ctx context.Context) (seed.Summary, error) {
	if a == nil {
		return seed.Summary{}, fmt.Errorf("app not initialized")
	}
	loader, err := seed.NewLoader(a.Log, a.Services.Tx, a.Services.seedServices(), nil, a.Cfg.SeedUserPassword)
	if err != nil {
		return seed.Summary{}, err
	}
	return loader.Run(ctx)
}

// Start runs the start-up work that must finish before serving.
func (a *App) Start(ctx context.Context) error {
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	if !a.Cfg.SeedOnStart {
		return nil
	}
	sum, err := a.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed on start: %w", err)
	}
	a.Log.Info("Seeded store on start", "summary", sum)
	return nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("HTTP server listening", "port", a.Cfg.Port)
	return a.Server.Run()
}

func (a *App) Shutdown(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return nil
	}
	return a.Server.Shutdown(ctx)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil && a.Log != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		a.otelShutdown = nil
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil && a.Log != nil {
			a.Log.Warn("database close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
