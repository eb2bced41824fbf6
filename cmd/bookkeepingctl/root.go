package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/bookkeeping_core/internal/app"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/core/services"
	"github.com/SscSPs/bookkeeping_core/internal/platform/config"
	"github.com/spf13/cobra"
)

var (
	storeDriver string
	sqlitePath  string
)

var rootCmd = &cobra.Command{
	Use:   "bookkeepingctl",
	Short: "Administrative commands for the bookkeeping core",
	Long: `bookkeepingctl runs maintenance tasks against the same store the API uses.

Configuration is read from the environment and an optional .env file,
exactly as the server reads it. --driver and --sqlite-path override it.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeDriver, "driver", "", "Store driver override (postgres or sqlite)")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite-path", "", "SQLite database path override")
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if storeDriver != "" {
		cfg.StoreDriver = storeDriver
	}
	if sqlitePath != "" {
		cfg.SQLitePath = sqlitePath
	}
	return cfg, nil
}

// withServices opens the store, builds the services and hands them to fn.
func withServices(cmd *cobra.Command, fn func(cfg *config.Config, svc *portssvc.ServiceContainer) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := app.OpenStore(cmd.Context(), cfg, newLogger(), false)
	if err != nil {
		return err
	}
	defer store.Close()

	return fn(cfg, services.NewServiceContainer(cfg, store.Repos))
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
