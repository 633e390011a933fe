// Package jobs ranks a fixed catalog of job postings against a parsed
// resume and returns the best matches. The catalog is configuration data
// loaded at startup, not logic.
package jobs

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"resume-match/internal/resume"
)

const maxRecommendations = 6

// Bonuses stacked on top of the skill-match percentage.
const (
	maxExperienceBonus  = 20
	yearsBonusPerYear   = 2
	educationBonusValue = 10
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// Posting is a catalog entry; its required skills are static data.
type Posting struct {
	Title          string   `yaml:"title" json:"title"`
	Company        string   `yaml:"company" json:"company"`
	Location       string   `yaml:"location" json:"location"`
	SalaryRange    string   `yaml:"salaryRange" json:"salaryRange"`
	Type           string   `yaml:"type" json:"type"`
	Description    string   `yaml:"description" json:"description"`
	RequiredSkills []string `yaml:"requiredSkills" json:"requiredSkills"`
	URL            string   `yaml:"url" json:"url"`
}

// JobRecommendation is a Posting scored against a specific resume.
type JobRecommendation struct {
	Posting
	MatchScore int `json:"matchScore"`
}

type catalogFile struct {
	Postings []Posting `yaml:"postings"`
}

// Ranker scores and orders the catalog per resume.
type Ranker struct {
	Catalog []Posting
}

// NewRanker builds a Ranker over the embedded default catalog.
func NewRanker() *Ranker {
	ranker, err := parseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("jobs: embedded catalog invalid: %v", err))
	}
	return ranker
}

// LoadRanker reads a catalog YAML file from disk.
func LoadRanker(path string) (*Ranker, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jobs: read %s: %w", path, err)
	}
	ranker, err := parseCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("jobs: parse %s: %w", path, err)
	}
	return ranker, nil
}

func parseCatalog(raw []byte) (*Ranker, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	if len(file.Postings) == 0 {
		return nil, fmt.Errorf("no postings defined")
	}
	return &Ranker{Catalog: file.Postings}, nil
}

// Recommend scores every posting for the resume and returns the top
// matches, at most six, in descending score order. The sort is stable:
// ties keep catalog order.
func (rk *Ranker) Recommend(r resume.Resume) []JobRecommendation {
	out := make([]JobRecommendation, 0, len(rk.Catalog))
	for _, posting := range rk.Catalog {
		out = append(out, JobRecommendation{
			Posting:    posting,
			MatchScore: matchScore(r, posting),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	return out
}

// matchScore combines the exact-skill match percentage with small bonuses
// for accumulated experience and a bachelor's or master's degree.
func matchScore(r resume.Resume, posting Posting) int {
	resumeSkills := r.SkillNamesLower()

	matched := 0
	for _, skill := range posting.RequiredSkills {
		if resumeSkills[strings.ToLower(skill)] {
			matched++
		}
	}
	skillPct := 0.0
	if len(posting.RequiredSkills) > 0 {
		skillPct = float64(matched) / float64(len(posting.RequiredSkills)) * 100
	}

	experienceBonus := r.TotalExperienceYears() * yearsBonusPerYear
	if experienceBonus > maxExperienceBonus {
		experienceBonus = maxExperienceBonus
	}

	educationBonus := 0
	for _, edu := range r.Education {
		degree := strings.ToLower(edu.Degree)
		if strings.Contains(degree, "bachelor") || strings.Contains(degree, "master") {
			educationBonus = educationBonusValue
			break
		}
	}

	score := skillPct + float64(experienceBonus) + float64(educationBonus)
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}
