// Command migrate applies schema migrations. It reads the same
// configuration as the server, so UNION_ environment variables and
// config.toml both work.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/unionadmin/backend/internal/infrastructure/config"
	"github.com/unionadmin/backend/internal/infrastructure/logger"
	"github.com/unionadmin/backend/internal/infrastructure/migration"
)

func main() {
	var (
		path    = flag.String("path", "migrations", "directory holding the migration files")
		steps   = flag.Int("steps", 0, "number of migrations to apply (negative rolls back); 0 with 'up' applies all")
		forceTo = flag.Int("force", -1, "force the schema version without running migrations")
	)
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log, err := logger.NewForEnvironment(cfg.App.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	migrator, err := migration.New(db, *path, log)
	if err != nil {
		log.Fatal("Failed to initialize migrator", zap.Error(err))
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Error("Error closing migrator", zap.Error(err))
		}
	}()

	switch command {
	case "up":
		if *steps > 0 {
			err = migrator.Steps(*steps)
		} else {
			err = migrator.Up()
		}
	case "down":
		if *steps < 0 {
			err = migrator.Steps(*steps)
		} else {
			err = migrator.Down()
		}
	case "version":
		version, dirty, verr := migrator.Version()
		if verr != nil {
			log.Fatal("Failed to read schema version", zap.Error(verr))
		}
		log.Info("Schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return
	case "force":
		if *forceTo < 0 {
			log.Fatal("force requires -force=<version>")
		}
		err = migrator.Force(*forceTo)
	default:
		log.Fatal("Unknown command", zap.String("command", command))
	}

	if err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	log.Info("Migration complete", zap.String("command", command))
}
