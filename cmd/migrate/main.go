package main

import (
	"context"
	"flag"
	"log"

	"cs-quiz/internal/config"
	"cs-quiz/internal/database"
	"cs-quiz/internal/logger"

	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "database/migrations", "directory holding *.up.sql files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(context.Background(), db, *dir); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
}
