package cli

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

func newMigrateCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply or inspect database migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.cfg.RequireDatabase(); err != nil {
				return err
			}
			direction := "up"
			if len(args) == 1 {
				direction = args[0]
			}

			db, err := sql.Open("pgx", rt.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := goose.SetDialect("postgres"); err != nil {
				return err
			}
			switch direction {
			case "down":
				err = goose.DownContext(cmd.Context(), db, rt.cfg.MigrationsDir)
			case "status":
				err = goose.StatusContext(cmd.Context(), db, rt.cfg.MigrationsDir)
			default:
				err = goose.UpContext(cmd.Context(), db, rt.cfg.MigrationsDir)
			}
			if err != nil {
				return fmt.Errorf("migrate %s: %w", direction, err)
			}
			return nil
		},
	}
}

func migrateUp(db *sql.DB, dir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
