package resume

import (
	"regexp"
	"strings"

	"resume-match/internal/taxonomy"
)

var expertiseKeywords = []string{"expert", "senior", "advanced", "proficient", "experienced"}

var separatorRe = regexp.MustCompile(`[.\s]+`)

// extractSkills scans the full text for every taxonomy skill using two
// whole-word variants: the exact phrase and a form tolerating dot or space
// separators collapsed to an optional hyphen or space ("Node.js" also
// matches "node js" and "nodejs"). The first variant that matches adds the
// skill once; duplicates are dropped by lower-cased name, first wins.
func extractSkills(text string, tax *taxonomy.Taxonomy) []Skill {
	if tax == nil {
		return nil
	}

	var found []Skill
	seen := make(map[string]bool)
	for _, name := range tax.All() {
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		if !skillMentioned(text, name) {
			continue
		}
		seen[key] = true
		found = append(found, Skill{
			Name:             name,
			Category:         tax.CategoryOf(name),
			ProficiencyLevel: estimateProficiency(text, name),
			IsKeyword:        true,
		})
	}
	return found
}

func skillMentioned(text, name string) bool {
	for _, pattern := range skillPatterns(name) {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

func skillPatterns(name string) []*regexp.Regexp {
	lowered := strings.ToLower(name)
	exact := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(lowered) + `\b`)

	parts := separatorRe.Split(lowered, -1)
	if len(parts) < 2 {
		return []*regexp.Regexp{exact}
	}
	quoted := make([]string, len(parts))
	for i, part := range parts {
		quoted[i] = regexp.QuoteMeta(part)
	}
	variant := regexp.MustCompile(`(?i)\b` + strings.Join(quoted, `[-\s]?`) + `\b`)
	return []*regexp.Regexp{exact, variant}
}

// estimateProficiency scores a skill from how often it is mentioned and
// whether an expertise keyword appears directly next to it.
func estimateProficiency(text, name string) int {
	textLower := strings.ToLower(text)
	nameLower := strings.ToLower(name)
	mentions := strings.Count(textLower, nameLower)

	adjacent := false
	for _, keyword := range expertiseKeywords {
		if strings.Contains(textLower, keyword+" "+nameLower) ||
			strings.Contains(textLower, nameLower+" "+keyword) {
			adjacent = true
			break
		}
	}

	switch {
	case adjacent:
		return minInt(90, 70+mentions*5)
	case mentions > 3:
		return minInt(80, 50+mentions*5)
	case mentions > 1:
		return minInt(70, 40+mentions*5)
	default:
		return minInt(60, 30+mentions*10)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
