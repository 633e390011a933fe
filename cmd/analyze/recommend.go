package main

import (
	"strings"

	"github.com/spf13/cobra"

	"resume-match/internal/jobs"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank catalog jobs against a resume",
	RunE:  runRecommend,
}

var recommendResumeFile string

func init() {
	recommendCmd.Flags().StringVarP(&recommendResumeFile, "resume", "r", "", "Path to resume file (txt, pdf, or docx)")
	recommendCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	parsed, err := loadResume(cmd.Context(), tax, recommendResumeFile)
	if err != nil {
		return err
	}

	ranker := jobs.NewRanker()
	if strings.TrimSpace(catalogPath) != "" {
		ranker, err = jobs.LoadRanker(catalogPath)
		if err != nil {
			return err
		}
	}

	return printJSON(ranker.Recommend(parsed))
}
