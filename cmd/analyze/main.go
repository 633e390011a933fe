// Package main provides a one-shot CLI for resume analysis: parse a resume,
// score it against a job description, or rank catalog jobs, printing JSON to
// stdout.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Resume analysis CLI",
	Long:  "Parse resumes, score them against job descriptions, and rank catalog jobs without running the API server.",
}

var (
	taxonomyPath string
	catalogPath  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&taxonomyPath, "taxonomy", "", "Path to a skill taxonomy YAML file (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a job catalog YAML file (default: built-in)")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
