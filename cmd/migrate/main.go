package main

// Create or upgrade the conversion history table:
//   DATABASE_URL=postgres://... go run ./cmd/migrate

import (
	"context"
	"log"
	"os"

	"surplus-backend/internal/shared/config"
	"surplus-backend/internal/shared/storage/db"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}

	version, err := db.MigrationVersion(ctx, sqlDB)
	if err != nil {
		log.Printf("migrations applied; version unknown: %v", err)
		return
	}
	log.Printf("migrations applied; schema version %d", version)
}
