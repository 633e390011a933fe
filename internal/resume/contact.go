package resume

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[a-zA-Z0-9-]+`)
	urlRe      = regexp.MustCompile(`https?://[^\s]+`)
	nameWordRe = regexp.MustCompile(`^[A-Z][a-z]+$`)

	// "City, ST" is tried before "City, Country".
	locationStateRe   = regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z]{2}\b`)
	locationCountryRe = regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z][a-z]+`)
)

func extractContactInfo(text string) ContactInfo {
	return ContactInfo{
		Name:     extractName(text),
		Email:    emailRe.FindString(text),
		Phone:    phoneRe.FindString(text),
		Location: extractLocation(text),
		LinkedIn: linkedinRe.FindString(text),
		Website:  extractWebsite(text),
	}
}

// extractName scans the first 5 non-empty lines for a 2–4 token line whose
// tokens are all TitleCase words, skipping lines that look like contact info.
func extractName(text string) string {
	lines := nonEmptyLines(text)
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for i := 0; i < limit; i++ {
		line := lines[i]
		if emailRe.MatchString(line) || phoneRe.MatchString(line) {
			continue
		}
		var words []string
		for _, word := range strings.Fields(line) {
			if len(word) > 1 {
				words = append(words, word)
			}
		}
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		allTitle := true
		for _, word := range words {
			if !nameWordRe.MatchString(word) {
				allTitle = false
				break
			}
		}
		if allTitle {
			return strings.Join(words, " ")
		}
	}
	return ""
}

func extractLocation(text string) string {
	if m := locationStateRe.FindString(text); m != "" {
		return m
	}
	return locationCountryRe.FindString(text)
}

// extractWebsite returns the first URL that is neither a LinkedIn profile
// nor a mailto link.
func extractWebsite(text string) string {
	for _, url := range urlRe.FindAllString(text, -1) {
		if strings.Contains(url, "linkedin.com") || strings.Contains(url, "mailto:") {
			continue
		}
		return url
	}
	return ""
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
