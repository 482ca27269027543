package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/camden-git/sitebackend/config"
	"github.com/camden-git/sitebackend/database"
	"github.com/camden-git/sitebackend/repository"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	if cfg.DatabaseDriver == config.DriverSQLite && isSQLiteFile(cfg.DatabasePath) {
		dir := filepath.Dir(cfg.DatabasePath)
		log.Printf("Ensuring storage directory exists: %s", dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("FATAL: Failed to create storage directory %s: %v", dir, err)
		}
	}

	db, err := database.InitGormDB(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to create schema: %v", err)
	}

	store := repository.NewStore(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	counts, err := store.Counts(ctx)
	if err != nil {
		log.Fatalf("FATAL: Failed to read entity counts: %v", err)
	}

	if cfg.DatabaseDriver == config.DriverSQLite {
		log.Printf("Using database: %s", cfg.DatabasePath)
	} else {
		log.Printf("Using database driver: %s", cfg.DatabaseDriver)
	}

	tables := make([]string, 0, len(counts))
	for table := range counts {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		log.Printf("  %-13s %d rows", table, counts[table])
	}
	log.Println("Entity store ready.")
}

// isSQLiteFile reports whether path is a plain file path rather than a URI or :memory:.
func isSQLiteFile(path string) bool {
	return path != ":memory:" && !strings.HasPrefix(path, "file:")
}
