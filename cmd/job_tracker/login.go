package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jordan/job-tracker/internal/client"
	"github.com/jordan/job-tracker/internal/config"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the persistence API and print a bearer token",
	Long: `Exchange email and password for a bearer token. The password is read from
the TRACKER_PASSWORD environment variable, or prompted on stdin.

Export the printed token as TRACKER_TOKEN for subsequent track commands.`,
	RunE: runLogin,
}

var (
	loginConfigPath string
	loginAPIBaseURL string
	loginEmail      string
)

func init() {
	loginCmd.Flags().StringVar(&loginConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	loginCmd.Flags().StringVar(&loginAPIBaseURL, "api-url", "", "Persistence API root URL (defaults to TRACKER_API_URL env var)")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(loginConfigPath, func(c *config.Config) {
		if cmd.Flags().Changed("api-url") {
			c.APIBaseURL = loginAPIBaseURL
		}
		if cmd.Flags().Changed("email") {
			c.Email = loginEmail
		}
	})
	if err != nil {
		return err
	}

	if cfg.APIBaseURL == "" {
		return fmt.Errorf("--api-url or TRACKER_API_URL is required")
	}
	if cfg.Email == "" {
		return fmt.Errorf("--email is required (via flag or config)")
	}

	password := os.Getenv("TRACKER_PASSWORD")
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}

	api, err := client.New(client.Options{BaseURL: cfg.APIBaseURL})
	if err != nil {
		return err
	}

	token, err := api.Login(ctx, cfg.Email, password)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, token)
	fmt.Fprintln(os.Stderr, "\nExport it for subsequent commands:")
	fmt.Fprintln(os.Stderr, "  export TRACKER_TOKEN=<token above>")
	return nil
}
