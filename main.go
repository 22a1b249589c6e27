package main

import (
	"context"
	"os"

	"countrymgr/config"
	"countrymgr/console"
	"countrymgr/logger"
	"countrymgr/migrations"
	"countrymgr/repository"

	"github.com/joho/godotenv"
)

func main() {
	// load environment variables, a missing .env is fine
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", true)
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	if envErr != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	ctx := context.Background()

	// database connection
	db, err := config.ConnectDatabase(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}

	// migrations and seeders
	if cfg.Database.Reset {
		if err := migrations.Wipe(db.WithContext(ctx)); err != nil {
			_ = config.CloseDatabase(db)
			log.Fatal().Err(err).Msg("reset failed")
		}
		log.Info().Msg("countries table dropped")
	}
	if err := migrations.Migrate(db.WithContext(ctx), cfg.Database.Seed); err != nil {
		_ = config.CloseDatabase(db)
		log.Fatal().Err(err).Msg("migration failed")
	}

	controller := console.New(repository.New(db), os.Stdin, os.Stdout, log)
	runErr := controller.Run(ctx)

	if stats, err := config.DBStats(db); err == nil {
		log.Debug().Int("open", stats.OpenConnections).Int64("wait_count", stats.WaitCount).Msg("connection pool")
	}
	if err := config.CloseDatabase(db); err != nil {
		log.Warn().Err(err).Msg("closing database")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("console session failed")
	}
}
