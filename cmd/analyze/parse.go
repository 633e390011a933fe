package main

import (
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume file and print the structured result",
	RunE:  runParse,
}

var parseResumeFile string

func init() {
	parseCmd.Flags().StringVarP(&parseResumeFile, "resume", "r", "", "Path to resume file (txt, pdf, or docx)")
	parseCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	parsed, err := loadResume(cmd.Context(), tax, parseResumeFile)
	if err != nil {
		return err
	}
	return printJSON(parsed)
}
