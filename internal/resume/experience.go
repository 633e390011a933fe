package resume

import (
	"regexp"
	"strings"
)

var (
	experienceSectionRe = regexp.MustCompile(`(?i)experience|work|employment|career|professional`)
	dateRangeRe         = regexp.MustCompile(`(?i)(\d{4})\s*[-–—]\s*(\d{4}|present|current)`)
	yearRe              = regexp.MustCompile(`\d{4}`)
	monthRe             = regexp.MustCompile(`(?i)jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`)
	bulletSplitRe       = regexp.MustCompile(`[•·▪▫‣⁃]|\d+\.`)
)

var achievementVerbs = []string{"increased", "improved", "achieved", "reduced", "led", "managed"}

const minAchievementLen = 20

func extractExperience(sections []section, currentYear int) []Experience {
	sec, ok := findSection(sections, experienceSectionRe.MatchString)
	if !ok {
		return nil
	}

	blocks := splitBlocks(sec.content)
	out := make([]Experience, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, parseExperienceBlock(block, currentYear))
	}
	return out
}

// blockState tracks the per-block scan over the first three lines: a date
// range can appear anywhere, the first non-date line is the title and the
// next distinct non-date line is the company.
type blockState int

const (
	seekingTitle blockState = iota
	seekingCompany
	accumulatingDescription
)

func parseExperienceBlock(block string, currentYear int) Experience {
	lines := nonEmptyLines(block)

	var exp Experience
	state := seekingTitle

	limit := len(lines)
	if limit > 3 {
		limit = 3
	}
	for i := 0; i < limit; i++ {
		line := lines[i]
		if m := dateRangeRe.FindStringSubmatch(line); m != nil {
			exp.StartDate = m[1]
			exp.EndDate = normalizeEndDate(m[2])
			continue
		}
		switch state {
		case seekingTitle:
			if !containsDate(line) {
				exp.Title = line
				state = seekingCompany
			}
		case seekingCompany:
			if !containsDate(line) && line != exp.Title {
				exp.Company = line
				state = accumulatingDescription
			}
		}
	}

	if len(lines) > 3 {
		exp.Description = strings.Join(lines[3:], " ")
	}
	exp.Duration = calculateDuration(exp.StartDate, exp.EndDate, currentYear)
	exp.Achievements = extractAchievements(exp.Description)
	return exp
}

func normalizeEndDate(raw string) string {
	switch strings.ToLower(raw) {
	case "present", "current":
		return PresentSentinel
	default:
		return raw
	}
}

func containsDate(line string) bool {
	return yearRe.MatchString(line) || monthRe.MatchString(line)
}

// calculateDuration returns endYear-startYear floored at zero; the Present
// sentinel resolves to the current calendar year.
func calculateDuration(startDate, endDate string, currentYear int) int {
	start := parseYear(startDate)
	if start == 0 {
		return 0
	}
	end := currentYear
	if endDate != PresentSentinel {
		end = parseYear(endDate)
	}
	if end < start {
		return 0
	}
	return end - start
}

func parseYear(raw string) int {
	year := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0
		}
		year = year*10 + int(r-'0')
	}
	return year
}

// extractAchievements keeps bullet fragments longer than 20 characters that
// mention an outcome verb.
func extractAchievements(description string) []string {
	var out []string
	for _, fragment := range bulletSplitRe.Split(description, -1) {
		fragment = strings.TrimSpace(fragment)
		if len(fragment) <= minAchievementLen {
			continue
		}
		lowered := strings.ToLower(fragment)
		for _, verb := range achievementVerbs {
			if strings.Contains(lowered, verb) {
				out = append(out, fragment)
				break
			}
		}
	}
	return out
}
