package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/baharkarakas/placeholder-api/internal/config"
	"github.com/baharkarakas/placeholder-api/internal/logger"
)

var (
	flagPort string
	flagDB   string
)

// rootCmd serves the API when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:           "placeholder-api",
	Short:         "JSON REST API for users and posts",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPort, "port", "", "HTTP port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite file (overrides DB_FILE)")
}

// setup loads the config, applies flag overrides and installs the logger.
func setup() (config.Config, *slog.Logger) {
	cfg := config.Load()
	if flagPort != "" {
		cfg.Port = flagPort
	}
	if flagDB != "" {
		cfg.DBFile = flagDB
	}
	log := logger.New(cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)
	return cfg, log
}
