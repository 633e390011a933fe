package resume

import "resume-match/internal/taxonomy"

// ExperienceLevel classifies overall seniority derived from work history.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "Entry"
	LevelMid       ExperienceLevel = "Mid"
	LevelSenior    ExperienceLevel = "Senior"
	LevelExecutive ExperienceLevel = "Executive"
)

// PresentSentinel marks an open-ended employment range.
const PresentSentinel = "Present"

// ContactInfo holds contact fields; each is empty when not found.
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

// Experience is a single work-history entry. Duration is whole years,
// floored at zero; EndDate may be the "Present" sentinel.
type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Duration     int      `json:"duration"`
	Achievements []string `json:"achievements"`
}

// Education is a single education entry.
type Education struct {
	Degree             string   `json:"degree"`
	Institution        string   `json:"institution"`
	GraduationDate     string   `json:"graduationDate"`
	GPA                string   `json:"gpa,omitempty"`
	Honors             []string `json:"honors,omitempty"`
	RelevantCoursework []string `json:"relevantCoursework,omitempty"`
}

// Skill is a detected skill with an estimated proficiency in [0,100].
type Skill struct {
	Name              string            `json:"name"`
	Category          taxonomy.Category `json:"category"`
	ProficiencyLevel  int               `json:"proficiencyLevel"`
	YearsOfExperience int               `json:"yearsOfExperience,omitempty"`
	IsKeyword         bool              `json:"isKeyword"`
}

// Resume is the aggregate produced by Parse. It owns its experience,
// education and skill lists; no two skills share a lower-cased name.
type Resume struct {
	ID              string          `json:"id"`
	FileName        string          `json:"fileName"`
	ExtractedText   string          `json:"extractedText"`
	ContactInfo     ContactInfo     `json:"contactInfo"`
	Experience      []Experience    `json:"experience"`
	Education       []Education     `json:"education"`
	Skills          []Skill         `json:"skills"`
	Summary         string          `json:"summary"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	OverallScore    int             `json:"overallScore"`
}

// TotalExperienceYears sums the duration of all experience entries.
func (r Resume) TotalExperienceYears() int {
	total := 0
	for _, exp := range r.Experience {
		total += exp.Duration
	}
	return total
}

// SkillNamesLower returns the set of skill names keyed by lower-cased name.
func (r Resume) SkillNamesLower() map[string]bool {
	out := make(map[string]bool, len(r.Skills))
	for _, skill := range r.Skills {
		out[lower(skill.Name)] = true
	}
	return out
}
