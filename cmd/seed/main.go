// Seed inserts the fixed reference rows (countries, document types) and is
// safe to run any number of times: existing ids are skipped.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"user-registry-api/config"
	"user-registry-api/internal/infrastructure/db/postgres"
	"user-registry-api/internal/infrastructure/db/postgres/user"
)

func main() {
	ctx := context.Background()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	if err = godotenv.Load(".env"); err != nil {
		logger.Fatal("error loading .env file", zap.Error(err))
	}
	cfg := config.Load()

	dsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	if err = postgres.RunMigrations(ctx, logger, dsn); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	pool, err := postgres.New(ctx, logger, dsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	gateway := user.NewRepository(pool)
	if err = gateway.SeedReferenceData(ctx); err != nil {
		logger.Fatal("failed to seed reference data", zap.Error(err))
	}

	logger.Info("reference data seeded",
		zap.Int("countries", len(user.SeedCountries)),
		zap.Int("type_documents", len(user.SeedTypeDocuments)),
	)
}
