package main

import (
	"fmt"
	"time"

	"asset-allocation-backend/internal/config"
	"asset-allocation-backend/internal/database"
	"asset-allocation-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	connectAttempts int
	connectDelay    time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "allocctl",
	Short:         "Maintenance commands for the asset allocation backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&connectAttempts, "connect-attempts", 30, "database connection attempts before giving up")
	rootCmd.PersistentFlags().DurationVar(&connectDelay, "connect-delay", time.Second, "delay between database connection attempts")
}

// openDatabase loads the configuration and connects, waiting for Postgres to come up
func openDatabase() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	opts := &database.Options{LogLevel: gormlogger.Silent}
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return cfg, db, nil
		}
		if attempt%10 == 0 || attempt == connectAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, connectAttempts, err)
		}
		time.Sleep(connectDelay)
	}
	return nil, nil, fmt.Errorf("database not ready after %d attempts", connectAttempts)
}
