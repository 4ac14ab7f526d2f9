package main

import (
	"fmt"
	"os"

	"github.com/ohcard-dev/ohcard/db"
	"github.com/ohcard-dev/ohcard/internal/auth"
	"github.com/ohcard-dev/ohcard/internal/config"
	"github.com/ohcard-dev/ohcard/internal/logger"
	"github.com/ohcard-dev/ohcard/internal/types"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "ohcard",
		Short:         "OH card counseling workbench",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration, sets up logging and session signing, and
// opens the database.
func bootstrap() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	types.ReloadAllowedOrigins()

	if err := auth.InitJWTSecret(cfg.JWTSecret, cfg.SessionTTL); err != nil {
		return config.Config{}, err
	}
	auth.ConfigureCookie(cfg.CookieDomain, cfg.CookieSecure)

	if err := db.ConnectDatabase(cfg.DatabaseDriver, cfg.DatabaseURL); err != nil {
		return config.Config{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return cfg, nil
}
