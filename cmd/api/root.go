package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/ojt-tracker/internal/config"
	dbpkg "github.com/BruksfildServices01/ojt-tracker/internal/db"
	"github.com/BruksfildServices01/ojt-tracker/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "ojt-tracker",
	Short: "OJT hours tracker API",
	Long: `ojt-tracker serves the time-entry API and offers maintenance commands.
Without a subcommand it runs the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	bindServeFlags(rootCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(reportCmd)
}

// bootstrap loads configuration and builds the process logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func openDB(cfg *config.Config, logger *zap.Logger, migrate bool) (*gorm.DB, error) {
	db, err := dbpkg.NewDB(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if migrate {
		if err := dbpkg.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return db, nil
}
