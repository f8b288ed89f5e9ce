// Package main is the budgetctl operator tool: dashboard summaries, seeding and dev tokens.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/budgetease/backend/config"
)

// Viper keys. They match the environment variables read by config.Load.
const (
	keyDBDriver    = "DB_DRIVER"
	keyDatabaseURL = "DATABASE_URL"
	keyJWTSecret   = "JWT_SECRET"
	keyJWTIssuer   = "JWT_ISSUER"
	keyLogLevel    = "LOG_LEVEL"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree with its own viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "budgetctl",
		Short:         "BudgetEase operator tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := readConfigFile(v, cfgFile); err != nil {
				return err
			}
			setupLogging(v.GetString(keyLogLevel))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, json or .env)")
	flags.String("db-driver", "", "database driver: postgres or sqlite (env DB_DRIVER)")
	flags.String("database-url", "", "database DSN (env DATABASE_URL)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	_ = v.BindPFlag(keyDBDriver, flags.Lookup("db-driver"))
	_ = v.BindPFlag(keyDatabaseURL, flags.Lookup("database-url"))
	_ = v.BindPFlag(keyLogLevel, flags.Lookup("log-level"))
	v.AutomaticEnv()

	root.AddCommand(summaryCmd(v))
	root.AddCommand(seedCmd(v))
	root.AddCommand(tokenCmd(v))

	return root
}

func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// setupLogging sends logs to stderr so command output stays machine readable.
func setupLogging(level string) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogConfig{Level: level}.SlogLevel(),
	}))
	slog.SetDefault(logger)
}

// loadConfig starts from the environment and applies flag and config-file overrides.
func loadConfig(v *viper.Viper) *config.Config {
	cfg := config.Load()

	if driver := v.GetString(keyDBDriver); driver != "" {
		cfg.Database.Driver = driver
	}
	if url := v.GetString(keyDatabaseURL); url != "" {
		cfg.Database.URL = url
	}
	if secret := v.GetString(keyJWTSecret); secret != "" {
		cfg.JWT.Secret = secret
	}
	if issuer := v.GetString(keyJWTIssuer); issuer != "" {
		cfg.JWT.Issuer = issuer
	}

	return cfg
}
