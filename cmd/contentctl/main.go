package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	projectFlag string
	rootCmd     = &cobra.Command{
		Use:   "contentctl",
		Short: "Operations CLI for the portfolio content store",
	}
)

func main() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "", "Firestore project ID (defaults to PORTFOLIO_FIRESTORE_PROJECT_ID)")

	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newPurgeMessagesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
