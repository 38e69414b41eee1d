// Package cli wires the adminctl commands: non-interactive resource
// management, uploads, the health probe, and the interactive browser.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"adminctl/internal/config"
	"adminctl/pkg/api"
	"adminctl/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "adminctl",
	Short: "adminctl - terminal console for the admin resource API",
	Long: `adminctl manages users, roles and products through the admin REST API.
Run a subcommand directly, or start the interactive browser with "adminctl browse".`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().Int("timeout-ms", 0, "Request timeout in milliseconds (overrides config)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every request")
}

// loadConfig resolves the configuration for cmd, applying flag overrides on
// top of file and environment settings.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if base, _ := cmd.Flags().GetString("base-url"); base != "" {
		cfg.BaseURL = base
	}
	if ms, _ := cmd.Flags().GetInt("timeout-ms"); ms > 0 {
		cfg.TimeoutMS = ms
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// newClient builds the API client for cmd.
func newClient(cmd *cobra.Command) (*api.Client, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	build := logger.New().WithLevel(level).Console()
	if cfg.LogPath != "" {
		build = build.FromPath(cfg.LogPath)
	}
	log, err := build.Make()
	if err != nil {
		return nil, err
	}
	return api.NewClient(api.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout(),
		Logger:  &log.Logger,
	}), nil
}

func er(msg interface{}) {
	fmt.Println("Error:", msg)
	os.Exit(1)
}
