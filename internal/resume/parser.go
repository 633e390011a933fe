// Package resume turns raw resume text into a structured Resume: contact
// info, work experience, education, detected skills, a generated summary and
// an experience-level classification. Extraction is heuristic pattern
// matching composed from small per-field matchers; it never fails on
// malformed or empty input, it just yields empty fields.
package resume

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-match/internal/taxonomy"
)

// Parser extracts structured data from plain resume text.
type Parser struct {
	Tax *taxonomy.Taxonomy

	// Now resolves the "Present" end date; defaults to time.Now.
	Now func() time.Time
}

// NewParser constructs a Parser over the given taxonomy.
func NewParser(tax *taxonomy.Taxonomy) *Parser {
	return &Parser{Tax: tax}
}

func (p *Parser) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Parse builds a Resume from raw text. It is total over its input: any
// string, including the empty string, produces a valid Resume.
func (p *Parser) Parse(fileName, text string) Resume {
	currentYear := p.now().Year()

	sections := splitSections(text)
	experience := extractExperience(sections, currentYear)
	education := extractEducation(sections)
	skills := extractSkills(text, p.Tax)

	return Resume{
		ID:              uuid.NewString(),
		FileName:        fileName,
		ExtractedText:   text,
		ContactInfo:     extractContactInfo(text),
		Experience:      experience,
		Education:       education,
		Skills:          skills,
		Summary:         generateSummary(skills, experience),
		ExperienceLevel: determineExperienceLevel(experience),
	}
}

func lower(s string) string {
	return strings.ToLower(s)
}
