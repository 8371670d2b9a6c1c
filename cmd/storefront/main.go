package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var configFile string

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Storefront catalog service with tag search and shopping carts",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./config.yaml when present)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newFilterCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
