package resume

import "strings"

// maxHeaderLen keeps prose lines that merely mention a header keyword from
// being treated as section boundaries.
const maxHeaderLen = 50

var headerKeywords = []string{
	"experience", "work experience", "professional experience",
	"employment", "career", "education", "skills", "summary",
	"objective", "profile", "certifications", "projects",
}

type section struct {
	title   string
	content string
}

// splitSections partitions text into (title, content) blocks. A line starts a
// new section when it contains a header keyword and is shorter than 50
// characters. Lines before the first header belong to no section. Blank lines
// are preserved inside content so block splitting can use them.
func splitSections(text string) []section {
	var sections []section
	current := section{}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && isSectionHeader(trimmed) {
			if current.title != "" {
				sections = append(sections, current)
			}
			current = section{title: trimmed}
			continue
		}
		if current.title != "" {
			current.content += trimmed + "\n"
		}
	}
	if current.title != "" {
		sections = append(sections, current)
	}
	return sections
}

func isSectionHeader(line string) bool {
	if len(line) >= maxHeaderLen {
		return false
	}
	lowered := strings.ToLower(line)
	for _, keyword := range headerKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// splitBlocks splits section content on blank lines.
func splitBlocks(content string) []string {
	var blocks []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

func findSection(sections []section, titleMatch func(string) bool) (section, bool) {
	for _, s := range sections {
		if titleMatch(s.title) {
			return s, true
		}
	}
	return section{}, false
}
