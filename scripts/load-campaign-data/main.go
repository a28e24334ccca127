// Command load-campaign-data runs migrations and bulk-loads the campaign
// spreadsheet into campaign_data. One-shot ETL; rerunning appends rows.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver for database/sql
	"go.uber.org/zap"

	"github.com/jayanth119/campaign-query-engine/pkg/config"
	"github.com/jayanth119/campaign-query-engine/pkg/database"
	"github.com/jayanth119/campaign-query-engine/pkg/loader"
)

func main() {
	spreadsheet := flag.String("file", "", "Path to the campaign spreadsheet (overrides config)")
	migrations := flag.String("migrations", "", "Path to the migrations directory (overrides config)")
	flag.Parse()

	cfg, err := config.Load("dev")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	path := cfg.Loader.SpreadsheetPath
	if *spreadsheet != "" {
		path = *spreadsheet
	}
	migrationsPath := cfg.Loader.MigrationsPath
	if *migrations != "" {
		migrationsPath = *migrations
	}

	logConfig := zap.NewDevelopmentConfig()
	logger, err := logConfig.Build()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	if err := database.RunMigrations(db, migrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	rows, err := loader.New(db, logger).LoadFile(context.Background(), path)
	if err != nil {
		logger.Fatal("Failed to load spreadsheet", zap.Int("rows_inserted", rows), zap.Error(err))
	}

	fmt.Fprintf(os.Stdout, "Inserted %d rows from %s\n", rows, path)
}
