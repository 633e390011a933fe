package resume

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var leadershipTitleRe = regexp.MustCompile(`(?i)manager|director|lead|senior|principal|architect|head|chief`)

// generateSummary produces a one-paragraph overview from total experience
// years and the strongest detected skills.
func generateSummary(skills []Skill, experience []Experience) string {
	totalYears := 0
	for _, exp := range experience {
		totalYears += exp.Duration
	}

	top := make([]Skill, len(skills))
	copy(top, skills)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].ProficiencyLevel > top[j].ProficiencyLevel
	})
	if len(top) > 5 {
		top = top[:5]
	}
	names := make([]string, len(top))
	for i, skill := range top {
		names[i] = skill.Name
	}

	level := summaryLevel(totalYears)
	expertise := strings.Join(firstN(names, 3), ", ")
	if len(names) > 3 {
		expertise += fmt.Sprintf(" and %d other technologies", len(names)-3)
	}

	return fmt.Sprintf("%s professional with %d years of experience. Strong expertise in %s. Proven track record in %d professional roles across various organizations.",
		level, totalYears, expertise, len(experience))
}

func summaryLevel(totalYears int) string {
	switch {
	case totalYears >= 8:
		return "Senior"
	case totalYears >= 4:
		return "Mid-level"
	case totalYears >= 1:
		return "Junior"
	default:
		return "Entry-level"
	}
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// determineExperienceLevel classifies seniority separately from the summary
// wording: Executive additionally requires a leadership title.
func determineExperienceLevel(experience []Experience) ExperienceLevel {
	totalYears := 0
	leadership := false
	for _, exp := range experience {
		totalYears += exp.Duration
		if leadershipTitleRe.MatchString(exp.Title) {
			leadership = true
		}
	}

	switch {
	case totalYears >= 10 && leadership:
		return LevelExecutive
	case totalYears >= 5:
		return LevelSenior
	case totalYears >= 2:
		return LevelMid
	default:
		return LevelEntry
	}
}
