// Package main is a local command line front end for the support router.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"customer-support/config"
	"customer-support/internal/app"
	"customer-support/pkg/log"
)

var (
	configPath string
	sessionID  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "support",
	Short: "Customer support router",
	Long: `Talk to the customer support router from a terminal.

Subcommands:
  chat    - interactive conversation
  route   - show how a single message is scored`,
	SilenceUsage: true,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive conversation",
	Args:  cobra.NoArgs,
	RunE:  runChat,
}

var routeCmd = &cobra.Command{
	Use:   "route <message>",
	Short: "Explain how a message is routed",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRoute,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: search ./config, ., /etc/app/)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	chatCmd.Flags().StringVarP(&sessionID, "session", "s", "cli", "Session id")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(routeCmd)
}

// boot loads config and builds the conversation stack. Logging stays quiet unless --verbose.
func boot(ctx context.Context) (*app.App, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.NewNop()
	if verbose {
		logger = log.Init(log.ZapConfig{
			Level:        "debug",
			Mode:         cfg.Logger.Mode,
			Encoding:     "console",
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
	}

	return app.Build(ctx, cfg, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
