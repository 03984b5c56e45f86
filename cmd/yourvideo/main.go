package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Abhithakur7080/your-video/config"
	"github.com/Abhithakur7080/your-video/internal/domain/lifecycle"
	logs "github.com/Abhithakur7080/your-video/internal/infra/log"
	"github.com/Abhithakur7080/your-video/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "yourvideo",
	Short: "Video sharing and social backend",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := newApp()
		if err := app.Err(); err != nil {
			return errors.Wrap(err, "failed to build application")
		}
		app.Run()

		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		logger, err := logs.NewWithWriter(cfg, os.Stdout)
		if err != nil {
			return errors.Wrap(err, "failed to create logger")
		}

		db, err := postgres.Open(cfg, logger)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return errors.Wrap(err, "failed to get sql.DB")
		}
		defer func() { _ = sqlDB.Close() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), lifecycle.DefaultTimeout)
		defer cancel()

		if err := postgres.Migrate(db.WithContext(ctx)); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
