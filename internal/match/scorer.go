// Package match scores a parsed resume against a structured job
// description. Calculate is a pure function: identical inputs always yield
// an identical MatchAnalysis, and no input makes it fail.
package match

import (
	"math"
	"regexp"
	"strings"

	"resume-match/internal/jobdesc"
	"resume-match/internal/resume"
	"resume-match/internal/taxonomy"
)

// Sub-score weights for the overall match.
const (
	skillsWeight     = 0.4
	experienceWeight = 0.3
	educationWeight  = 0.2
	softSkillsWeight = 0.1
)

// MatchAnalysis is the derived comparison of one resume against one job
// description. All scores are integers in [0,100].
type MatchAnalysis struct {
	OverallMatch    int              `json:"overallMatch"`
	SkillsMatch     int              `json:"skillsMatch"`
	ExperienceMatch int              `json:"experienceMatch"`
	EducationMatch  int              `json:"educationMatch"`
	MissingSkills   []string         `json:"missingSkills"`
	Recommendations []Recommendation `json:"recommendations"`
	ATSScore        int              `json:"atsScore"`
}

// Scorer computes match analyses using the shared taxonomy for
// related-skill credit.
type Scorer struct {
	Tax *taxonomy.Taxonomy
}

// NewScorer constructs a Scorer over the given taxonomy.
func NewScorer(tax *taxonomy.Taxonomy) *Scorer {
	return &Scorer{Tax: tax}
}

// Calculate produces the full MatchAnalysis for a resume and job
// description pair.
func (s *Scorer) Calculate(r resume.Resume, jd jobdesc.JobDescription) MatchAnalysis {
	skillsMatch := s.skillsMatch(r, jd)
	experienceMatch := experienceMatch(r, jd)
	educationMatch := educationMatch(r, jd)
	softSkills := softSkillsMatch(r, jd)

	overall := roundInt(
		float64(skillsMatch)*skillsWeight +
			float64(experienceMatch)*experienceWeight +
			float64(educationMatch)*educationWeight +
			float64(softSkills)*softSkillsWeight)

	missing := s.missingSkills(r, jd)

	return MatchAnalysis{
		OverallMatch:    overall,
		SkillsMatch:     skillsMatch,
		ExperienceMatch: experienceMatch,
		EducationMatch:  educationMatch,
		MissingSkills:   missing,
		Recommendations: buildRecommendations(missing, experienceMatch),
		ATSScore:        atsScore(r, jd),
	}
}

// skillsMatch weights required skills at 80 points and preferred at 20. A
// required skill earns full credit on an exact case-insensitive name match
// and half credit when any taxonomy-related skill is present instead.
// Preferred skills earn exact-match credit only. An empty list yields its
// full share.
func (s *Scorer) skillsMatch(r resume.Resume, jd jobdesc.JobDescription) int {
	resumeSkills := r.SkillNamesLower()

	matchedRequired := 0.0
	for _, required := range jd.RequiredSkills {
		switch {
		case resumeSkills[strings.ToLower(required)]:
			matchedRequired++
		case s.relatedPresent(required, resumeSkills):
			matchedRequired += 0.5
		}
	}

	matchedPreferred := 0
	for _, preferred := range jd.PreferredSkills {
		if resumeSkills[strings.ToLower(preferred)] {
			matchedPreferred++
		}
	}

	requiredScore := 80.0
	if len(jd.RequiredSkills) > 0 {
		requiredScore = matchedRequired / float64(len(jd.RequiredSkills)) * 80
	}
	preferredScore := 20.0
	if len(jd.PreferredSkills) > 0 {
		preferredScore = float64(matchedPreferred) / float64(len(jd.PreferredSkills)) * 20
	}

	return clampScore(roundInt(requiredScore + preferredScore))
}

func (s *Scorer) relatedPresent(skill string, resumeSkills map[string]bool) bool {
	if s.Tax == nil {
		return false
	}
	for _, related := range s.Tax.Related(skill) {
		if resumeSkills[strings.ToLower(related)] {
			return true
		}
	}
	return false
}

// missingSkills lists required skills absent by exact match and by any
// related-skill match. A skill credited via a related skill is therefore
// never reported missing; the two computations share relatedPresent.
func (s *Scorer) missingSkills(r resume.Resume, jd jobdesc.JobDescription) []string {
	resumeSkills := r.SkillNamesLower()
	var out []string
	for _, required := range jd.RequiredSkills {
		if resumeSkills[strings.ToLower(required)] {
			continue
		}
		if s.relatedPresent(required, resumeSkills) {
			continue
		}
		out = append(out, required)
	}
	return out
}

var yearsRequirementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?professional`),
	regexp.MustCompile(`(?i)minimum\s*(?:of\s*)?(\d+)\s*years?`),
	regexp.MustCompile(`(?i)at\s*least\s*(\d+)\s*years?`),
}

// noRequirementScore applies when the job text never states a year count.
const noRequirementScore = 85

func experienceMatch(r resume.Resume, jd jobdesc.JobDescription) int {
	required := requiredYears(jd.Description)
	if required == 0 {
		return noRequirementScore
	}

	ratio := float64(r.TotalExperienceYears()) / float64(required)
	switch {
	case ratio >= 1.2:
		return 100
	case ratio >= 1.0:
		return 95
	case ratio >= 0.8:
		return 85
	case ratio >= 0.6:
		return 70
	case ratio >= 0.4:
		return 55
	default:
		return 30
	}
}

func requiredYears(description string) int {
	for _, pattern := range yearsRequirementPatterns {
		if m := pattern.FindStringSubmatch(description); m != nil {
			years := 0
			for _, r := range m[1] {
				years = years*10 + int(r-'0')
			}
			return years
		}
	}
	return 0
}

// degreeTerms maps a requirement keyword to the degree substrings that
// satisfy it.
var degreeTerms = []struct {
	requirement string
	accepted    []string
}{
	{"bachelor", []string{"bachelor"}},
	{"master", []string{"master", "mba"}},
	{"phd", []string{"phd"}},
	{"associate", []string{"associate"}},
}

func educationMatch(r resume.Resume, jd jobdesc.JobDescription) int {
	requirement := strings.ToLower(strings.TrimSpace(jd.Education))
	if requirement == "" || requirement == "none" {
		return 100
	}

	for _, edu := range r.Education {
		degree := strings.ToLower(edu.Degree)
		for _, term := range degreeTerms {
			if !strings.Contains(requirement, term.requirement) {
				continue
			}
			for _, accepted := range term.accepted {
				if strings.Contains(degree, accepted) {
					return 100
				}
			}
		}
	}
	return 60
}

var softSkillKeywords = []string{
	"leadership", "communication", "teamwork", "problem solving",
	"analytical", "creative", "adaptable", "detail oriented",
}

// softSkillsMatch measures how many of the soft-skill keywords the job text
// mentions also appear in the raw resume text. Jobs that mention none score
// a flat 80.
func softSkillsMatch(r resume.Resume, jd jobdesc.JobDescription) int {
	jobText := strings.ToLower(jd.Description)
	resumeText := strings.ToLower(r.ExtractedText)

	total := 0
	matched := 0
	for _, keyword := range softSkillKeywords {
		if !strings.Contains(jobText, keyword) {
			continue
		}
		total++
		if strings.Contains(resumeText, keyword) {
			matched++
		}
	}
	if total == 0 {
		return 80
	}
	return roundInt(float64(matched) / float64(total) * 100)
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func clampScore(v int) int {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}
