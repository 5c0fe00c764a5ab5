package main

import (
	"errors"

	"bark-advisor/internal/adapters/storage/postgres"
	"bark-advisor/internal/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the Postgres schema",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	log := newLogger(cfg)

	if cfg.DB.DSN == "" {
		return errors.New("DB_DSN is required")
	}

	db, err := postgres.Open(cfg.DB.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(cmd.Context(), db); err != nil {
		return err
	}
	log.Info("schema applied", nil)
	return nil
}
