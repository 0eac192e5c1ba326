package main

import (
	"context"
	"database/sql"
	"fmt"

	"Posts/internal/config"
	"Posts/internal/db/migrations"
	postgresRepo "Posts/internal/db/postgres"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the Postgres schema",
	}

	cmd.AddCommand(
		migrateSubcommand("up", "Apply all pending migrations", migrations.Up),
		migrateSubcommand("down", "Roll back the most recent migration", migrations.Down),
		migrateSubcommand("status", "Show migration status", migrations.Status),
	)

	return cmd
}

func migrateSubcommand(use, short string, run func(*sql.DB) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if cfg.StoreDriver != config.StoreDriverPostgres {
				return fmt.Errorf("migrate only applies to the postgres store (STORE_DRIVER=%s)", cfg.StoreDriver)
			}

			db, err := postgresRepo.Open(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if err := run(db); err != nil {
				return err
			}
			cmd.Printf("migrate %s: done\n", use)
			return nil
		},
	}
}
