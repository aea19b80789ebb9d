package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"surplus-backend/internal/conversions"
	"surplus-backend/internal/extract"
	"surplus-backend/internal/services/health"
	"surplus-backend/internal/shared/config"
	"surplus-backend/internal/shared/server"
	"surplus-backend/internal/shared/server/middleware"
	"surplus-backend/internal/shared/storage/db"
	"surplus-backend/internal/shared/storage/object"
	localstore "surplus-backend/internal/shared/storage/object/local"
)

// App holds shared dependencies.
type App struct {
	Config            config.Config
	Router            *gin.Engine
	DB                *sql.DB
	Store             object.ObjectStore
	ConversionsRepo   conversions.Repo
	ConversionService *conversions.Service
	ConversionHandler *conversions.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.UploadDir) == "" {
		cfg.UploadDir = "uploads"
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		cfg.OutputDir = "output"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo conversions.Repo
	if sqlDB != nil {
		repo = &conversions.PGRepo{DB: sqlDB}
	} else {
		repo = conversions.NewMemoryRepo()
	}

	store := localstore.New(cfg.UploadDir)
	svc := &conversions.Service{
		Store:     store,
		Repo:      repo,
		Pipeline:  conversions.Pipeline{Extractor: extract.DocxExtractor{}},
		OutputDir: cfg.OutputDir,
	}
	handler := conversions.NewHandler(svc, cfg.MaxUploadBytes)

	app := &App{
		Config:            cfg,
		DB:                sqlDB,
		Store:             store,
		ConversionsRepo:   repo,
		ConversionService: svc,
		ConversionHandler: handler,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:            cfg,
		ConversionHandler: handler,
		RateLimiter:       middleware.NewRateLimiter(nil),
		Health:            health.NewService(sqlDB),
	})
	return app, nil
}

// Close releases the database pool if one was opened.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("bootstrap: DATABASE_URL empty; using in-memory conversion history")
		return nil, nil
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			sqlDB.Close()
			err = fmt.Errorf("run migrations: %w", err)
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database unavailable; using in-memory conversion history: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
