package cmd

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/templui/fitshare/internal/db"
)

const defaultConnection = "./data/fitshare.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_time_format=sqlite"

func MigrateCmd() *cobra.Command {
	var driver, connection string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, roll back or inspect database migrations",
	}

	cmd.PersistentFlags().StringVar(&driver, "driver", envOr("DB_DRIVER", "sqlite"), "database driver (sqlite or pgx)")
	cmd.PersistentFlags().StringVar(&connection, "dsn", envOr("DB_CONNECTION", defaultConnection), "database connection string")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.Open(driver, connection)
			if err != nil {
				return err
			}
			defer database.Close()

			return printVersion(cmd, database.DB, driver)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.Init(driver, connection)
			if err != nil {
				return err
			}
			defer database.Close()

			err = db.MigrateDown(database.DB, driver)
			if err != nil {
				return err
			}
			return printVersion(cmd, database.DB, driver)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.Init(driver, connection)
			if err != nil {
				return err
			}
			defer database.Close()

			return printVersion(cmd, database.DB, driver)
		},
	})

	return cmd
}

func printVersion(cmd *cobra.Command, conn *sql.DB, driver string) error {
	version, err := db.SchemaVersion(conn, driver)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
