// Package main is the entry point for the antares content tools.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "antares",
	Short: "Antares campaign content tools",
	Long:  `Antares validates, browses, and packages CRPG campaign content directories.`,
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(packageCmd)
}
