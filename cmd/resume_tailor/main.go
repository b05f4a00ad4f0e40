// Package main provides the entry point for the bulk resume tailoring CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_tailor",
	Short: "Bulk resume tailoring CLI",
	Long:  "resume_tailor reads job postings from a CSV file, tailors the candidate's resume to each posting with the Gemini API, and writes the tailored resume, ATS match score, and score reasoning to an output CSV.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
