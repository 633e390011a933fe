package match

import (
	"regexp"
	"sort"
	"strings"

	"resume-match/internal/jobdesc"
	"resume-match/internal/resume"
)

// ATS score composition. The flat bonus models the PDF input format being
// assumed ATS-friendly.
const (
	atsKeywordWeight   = 0.4
	atsStructureWeight = 0.3
	atsContactWeight   = 0.2
	atsFormatBonus     = 10
)

const (
	topKeywordCount = 20
	minKeywordLen   = 4
)

var atsStopwords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "of": true, "with": true, "by": true,
}

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

func atsScore(r resume.Resume, jd jobdesc.JobDescription) int {
	score := keywordDensity(r, jd)*atsKeywordWeight +
		float64(structureScore(r))*atsStructureWeight +
		float64(contactScore(r.ContactInfo))*atsContactWeight +
		atsFormatBonus
	if score > 100 {
		score = 100
	}
	return roundInt(score)
}

// keywordDensity is the percentage of the job description's top keywords
// found anywhere in the resume text.
func keywordDensity(r resume.Resume, jd jobdesc.JobDescription) float64 {
	keywords := topKeywords(jd.Description)
	if len(keywords) == 0 {
		return 100
	}
	resumeText := strings.ToLower(r.ExtractedText)
	matched := 0
	for _, keyword := range keywords {
		if strings.Contains(resumeText, keyword) {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords)) * 100
}

// topKeywords extracts the 20 most frequent words longer than three
// characters, ignoring stopwords. Frequency ties keep first-occurrence
// order.
func topKeywords(text string) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")

	counts := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) < minKeywordLen || atsStopwords[word] {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topKeywordCount {
		order = order[:topKeywordCount]
	}
	return order
}

// structureScore rewards the presence of the sections ATS parsers expect.
func structureScore(r resume.Resume) int {
	score := 0
	if r.ContactInfo.Name != "" {
		score += 20
	}
	if r.ContactInfo.Email != "" {
		score += 20
	}
	if len(r.Experience) > 0 {
		score += 30
	}
	if len(r.Education) > 0 {
		score += 15
	}
	if len(r.Skills) > 0 {
		score += 15
	}
	return score
}

func contactScore(info resume.ContactInfo) int {
	score := 0
	if info.Name != "" {
		score += 30
	}
	if info.Email != "" {
		score += 30
	}
	if info.Phone != "" {
		score += 20
	}
	if info.Location != "" {
		score += 10
	}
	if info.LinkedIn != "" {
		score += 10
	}
	return score
}
