package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	crossborder "github.com/arnavseth183/CrossBorderTransactionChain"
	"github.com/arnavseth183/CrossBorderTransactionChain/config"
	"github.com/arnavseth183/CrossBorderTransactionChain/ledger_core"
	"github.com/arnavseth183/CrossBorderTransactionChain/logger"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the store maps to ErrConflict.
	gcfg := &gorm.Config{TranslateError: true}

	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), gcfg)
	}

	path := cfg.DatabaseURL
	if path == "" {
		path = "ledger.db"
	}
	return gorm.Open(sqlite.Open(path), gcfg)
}

func main() {
	cfg := config.Load()
	log := logger.New()

	db, err := newDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	if err := crossborder.NewMigrationHandler(db, log)(); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if err := crossborder.NewSeedHandler(db, log)(); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	register := crossborder.NewRegisterHandler(
		db,
		ledger_core.DefaultFeeSchedule(),
		cfg.AdminAPIKey,
		log,
	)
	register(app)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("server starting")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	}()

	<-stop
	log.Info().Msg("shutting down")

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
