package main

import (
	"context"
	"fmt"

	"github.com/Abraxas-365/pathway/migrations"
	"github.com/Abraxas-365/pathway/pkg/logx"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd.Context())
	},
}

func runMigrate(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DB.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if err := migrations.Apply(ctx, db); err != nil {
		return err
	}
	logx.Info("Database schema is up to date")
	return nil
}
