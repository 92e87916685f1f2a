package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"camping-rental-admin/internal/commands"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "admin",
		Short: "Camping rental administration tool",
		Long: "Manages the members, vehicle and gear inventory, rentals, and daily\n" +
			"profit reports of a camping-equipment rental business. All state\n" +
			"persists to JSON files under the configured data directory.",
	}

	rootCmd.PersistentFlags().String("config", "config.yaml", "Path to configuration file")

	rootCmd.AddCommand(
		commands.MemberCmd(),
		commands.InventoryCmd(),
		commands.RentalCmd(),
		commands.ProfitsCmd(),
		commands.WatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
