package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-match/internal/extract"
	"resume-match/internal/resume"
	"resume-match/internal/taxonomy"
)

func loadTaxonomy() (*taxonomy.Taxonomy, error) {
	if strings.TrimSpace(taxonomyPath) == "" {
		return taxonomy.Default(), nil
	}
	tax, err := taxonomy.Load(taxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}
	return tax, nil
}

// loadResume reads a resume file and parses it. PDF and DOCX files go
// through the extraction boundary; anything else is treated as plain text.
func loadResume(ctx context.Context, tax *taxonomy.Taxonomy, path string) (resume.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return resume.Resume{}, fmt.Errorf("read resume: %w", err)
	}

	fileName := filepath.Base(path)
	text := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".docx":
		result, err := extract.FromBytes(ctx, data, "", fileName, nil)
		if err != nil {
			return resume.Resume{}, fmt.Errorf("extract resume text: %w", err)
		}
		text = result.Text
	}

	return resume.NewParser(tax).Parse(fileName, text), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
