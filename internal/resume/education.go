package resume

import "regexp"

var (
	educationSectionRe = regexp.MustCompile(`(?i)education|academic|degree|university|college|school`)
	degreeRe           = regexp.MustCompile(`(?i)bachelor|master|phd|doctorate|associate|diploma|certificate`)
	institutionRe      = regexp.MustCompile(`(?i)university|college|institute|school`)
	gpaKeywordRe       = regexp.MustCompile(`(?i)gpa|grade`)
	gpaValueRe         = regexp.MustCompile(`\d+\.?\d*`)
)

func extractEducation(sections []section) []Education {
	sec, ok := findSection(sections, educationSectionRe.MatchString)
	if !ok {
		return nil
	}

	blocks := splitBlocks(sec.content)
	out := make([]Education, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, parseEducationBlock(block))
	}
	return out
}

// parseEducationBlock classifies each line of a block with a first-match
// keyword chain. Later matching lines overwrite earlier ones: last write wins
// in line order, which is the documented tie-break for degree and graduation
// date.
func parseEducationBlock(block string) Education {
	var edu Education
	for _, line := range nonEmptyLines(block) {
		switch {
		case degreeRe.MatchString(line):
			edu.Degree = line
		case institutionRe.MatchString(line):
			edu.Institution = line
		case yearRe.MatchString(line) && edu.GPA == "":
			edu.GraduationDate = line
		case gpaKeywordRe.MatchString(line):
			edu.GPA = gpaValueRe.FindString(line)
		}
	}
	return edu
}
