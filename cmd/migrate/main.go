// Command migrate applies the database migrations.
//
//	migrate -d postgres://... up
//	migrate status
//	migrate down-to 1
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/repository/postgres"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	dsn := flag.String("d", os.Getenv("DATABASE_URI"), "database URI")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("database URI is required (use -d flag or DATABASE_URI env)")
	}

	command := "up"
	args := flag.Args()
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if err := postgres.RunMigrations(context.Background(), *dsn, command, logger, args...); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
}
