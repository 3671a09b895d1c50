// Package main provides the entry point for the Resume Studio server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_studio",
	Short: "Resume Studio server and CLI",
	Long:  "Resume Studio compiles structured resume documents to PDF via LaTeX, renders live previews, and tailors resume content to job postings with AI assistance.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// apiKeyFromEnv resolves the provider's conventional environment variable
func apiKeyFromEnv(provider string) string {
	if provider == "gemini" {
		return os.Getenv("GEMINI_API_KEY")
	}
	return os.Getenv("ANTHROPIC_API_KEY")
}
