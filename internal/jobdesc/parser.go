// Package jobdesc turns free-form job posting text plus user-entered title
// and company into a structured JobDescription. Skill detection here is
// intentionally looser than resume parsing: plain case-insensitive
// substring containment, no word boundaries.
package jobdesc

import (
	"regexp"
	"strings"

	"resume-match/internal/taxonomy"
)

const (
	defaultTitle   = "Position"
	defaultCompany = "Company"
)

var (
	preferredSectionRe = regexp.MustCompile(`(?:preferred|nice.to.have|bonus)[\s\S]*?(\n\n|$)`)
	yearsRequirementRe = regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`)
)

// JobDescription is the structured form of a job posting.
type JobDescription struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"requiredSkills"`
	PreferredSkills []string `json:"preferredSkills"`
	Experience      string   `json:"experience"`
	Education       string   `json:"education"`
}

// Parser extracts job requirements using the shared skill taxonomy.
type Parser struct {
	Tax *taxonomy.Taxonomy
}

// NewParser constructs a Parser over the given taxonomy.
func NewParser(tax *taxonomy.Taxonomy) *Parser {
	return &Parser{Tax: tax}
}

// Parse builds a JobDescription. Empty title and company fall back to
// placeholder labels; empty description yields empty requirement fields.
func (p *Parser) Parse(title, company, description string) JobDescription {
	if strings.TrimSpace(title) == "" {
		title = defaultTitle
	}
	if strings.TrimSpace(company) == "" {
		company = defaultCompany
	}

	return JobDescription{
		Title:           title,
		Company:         company,
		Description:     description,
		RequiredSkills:  p.skillsContained(description),
		PreferredSkills: p.preferredSkills(description),
		Experience:      experienceRequirement(description),
		Education:       educationRequirement(description),
	}
}

// skillsContained returns taxonomy skills mentioned anywhere in the text, in
// taxonomy order.
func (p *Parser) skillsContained(text string) []string {
	if p.Tax == nil {
		return nil
	}
	lowered := strings.ToLower(text)
	var out []string
	seen := make(map[string]bool)
	for _, skill := range p.Tax.All() {
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		if strings.Contains(lowered, key) {
			seen[key] = true
			out = append(out, skill)
		}
	}
	return out
}

// preferredSkills rescans only the text between a preferred/nice-to-have/
// bonus marker and the next blank line (or end of text).
func (p *Parser) preferredSkills(text string) []string {
	section := preferredSectionRe.FindString(strings.ToLower(text))
	if section == "" {
		return nil
	}
	return p.skillsContained(section)
}

// experienceRequirement captures the first "N+ years experience" mention as
// the canonical "N years" string.
func experienceRequirement(text string) string {
	m := yearsRequirementRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1] + " years"
}

// educationRequirement maps degree keywords, checked in priority order, to a
// canonical requirement string.
func educationRequirement(text string) string {
	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "bachelor"):
		return "Bachelor's degree"
	case strings.Contains(lowered, "master"):
		return "Master's degree"
	case strings.Contains(lowered, "phd"):
		return "PhD"
	default:
		return ""
	}
}
