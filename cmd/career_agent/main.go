// Package main provides the career_agent CLI: career recommendations,
// explanations, and prompt-driven refinement over JSON artifacts.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "Career recommendation engine",
	Long:  "career_agent ranks a career catalog against a user profile and partitions the results into Safe, Stretch, and Adventure exploration zones with human-readable rationales.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
