package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agri/config"
	"agri/pkg/logging"
)

var (
	cfg    config.AppConfig
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "agri",
	Short: "Agricultural management API",
	Long: `agri serves the plant, disease, location, crop, user and cost
calculator API, and exports the same data as xlsx from the command line.

Configuration comes from the environment (and .env when present).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		if logger, err = logging.New(cfg.LogLevel, cfg.LogFormat); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, exportCmd, estimateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
