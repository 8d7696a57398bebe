package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// @title Warehouse Gateway API
// @version 1.0
// @description Unified REST gateway over the ShipRelay and MintSoft warehouse APIs.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "warehouse-gateway",
		Short: "Unified REST gateway for the ShipRelay and MintSoft warehouse APIs",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory holding the .env file")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newTokenCommand())

	return rootCmd
}
