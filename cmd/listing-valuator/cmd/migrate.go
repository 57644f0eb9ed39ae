package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/listing-valuator/internal/config"
	"github.com/donaldgifford/listing-valuator/internal/store"
	"github.com/donaldgifford/listing-valuator/pkg/logger"
)

const migrateTimeout = 60 * time.Second

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
	defer cancel()

	s, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer s.Close()

	log.Info("running migrations", "host", cfg.Database.Host, "database", cfg.Database.Name)

	if err := s.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	log.Info("migrations complete")
	return nil
}
