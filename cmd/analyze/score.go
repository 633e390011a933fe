package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-match/internal/jobdesc"
	"resume-match/internal/match"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  "Parse the resume and job description, then print the full match analysis as JSON.",
	RunE:  runScore,
}

var (
	scoreResumeFile string
	scoreJobFile    string
	scoreJobTitle   string
	scoreJobCompany string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume file (txt, pdf, or docx)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job description text file")
	scoreCmd.Flags().StringVar(&scoreJobTitle, "title", "", "Job title")
	scoreCmd.Flags().StringVar(&scoreJobCompany, "company", "", "Company name")

	scoreCmd.MarkFlagRequired("resume")
	scoreCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	parsed, err := loadResume(cmd.Context(), tax, scoreResumeFile)
	if err != nil {
		return err
	}

	jobText, err := os.ReadFile(scoreJobFile)
	if err != nil {
		return fmt.Errorf("read job description: %w", err)
	}

	jd := jobdesc.NewParser(tax).Parse(scoreJobTitle, scoreJobCompany, string(jobText))
	result := match.NewScorer(tax).Calculate(parsed, jd)
	return printJSON(result)
}
