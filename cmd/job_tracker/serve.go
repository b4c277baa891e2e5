package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordan/job-tracker/internal/config"
	"github.com/jordan/job-tracker/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the persistence REST API server",
	Long:  `Start an HTTP server that exposes authentication, application tracking, streak, and achievement endpoints backed by PostgreSQL.`,
	RunE:  runServe,
}

var (
	serveConfigPath string
	serveAddr       string
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default \":8080\")")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(serveConfigPath, func(c *config.Config) {
		if cmd.Flags().Changed("addr") {
			c.ListenAddr = serveAddr
		}
	})
	if err != nil {
		return err
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or config 'database_url' is required")
	}

	srv, err := server.New(server.Config{
		Addr:        cfg.ListenAddr,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
