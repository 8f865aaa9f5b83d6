package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/metforge/steelctl/config"
	"github.com/metforge/steelctl/internal/app"
)

var (
	cfgFile     string
	application *app.Application
)

var rootCmd = &cobra.Command{
	Use:   "steelctl",
	Short: "Command-line client for the steel ERP backend",
	Long: `steelctl manages branches, stock, orders and statistics of the
steel ERP backend from the terminal. Credentials persist between runs;
log in once with "steelctl auth login".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		application = app.NewApplication(cfg)
		return application.Init(cfg)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if application != nil {
			application.Release()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "steelctl.yml"
	}
	return filepath.Join(home, ".steelctl", "steelctl.yml")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigPath(), "path to config file")
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(branchesCmd)
	rootCmd.AddCommand(stockCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(watchCmd)
}

// requireSession guards commands that need an authenticated user.
func requireSession() error {
	if _, ok := application.Sessions().Current(); !ok {
		return fmt.Errorf("not logged in, run \"steelctl auth login\" first")
	}
	return nil
}
