package match

import "fmt"

// RecommendationType categorizes what part of the resume a recommendation
// targets.
type RecommendationType string

const (
	RecommendationSkill      RecommendationType = "skill"
	RecommendationExperience RecommendationType = "experience"
	RecommendationEducation  RecommendationType = "education"
	RecommendationFormat     RecommendationType = "format"
)

// Priority ranks how urgent a recommendation is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is a prioritized, actionable improvement suggestion.
type Recommendation struct {
	Type        RecommendationType `json:"type"`
	Priority    Priority           `json:"priority"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	ActionItems []string           `json:"actionItems"`
}

// experienceRecommendationThreshold triggers the experience suggestion.
const experienceRecommendationThreshold = 70

const maxSkillActionItems = 3

// buildRecommendations emits recommendations in fixed order: skill gaps
// (when any required skill is missing), experience (below threshold), and
// always the ATS formatting advice.
func buildRecommendations(missingSkills []string, experienceMatch int) []Recommendation {
	var out []Recommendation

	if len(missingSkills) > 0 {
		items := missingSkills
		if len(items) > maxSkillActionItems {
			items = items[:maxSkillActionItems]
		}
		actions := make([]string, len(items))
		for i, skill := range items {
			actions[i] = fmt.Sprintf("Learn %s through online courses or practical projects", skill)
		}
		out = append(out, Recommendation{
			Type:        RecommendationSkill,
			Priority:    PriorityHigh,
			Title:       "Address Key Skill Gaps",
			Description: fmt.Sprintf("You're missing %d required skills for this position.", len(missingSkills)),
			ActionItems: actions,
		})
	}

	if experienceMatch < experienceRecommendationThreshold {
		out = append(out, Recommendation{
			Type:        RecommendationExperience,
			Priority:    PriorityMedium,
			Title:       "Enhance Experience Section",
			Description: "Your experience could be better highlighted to match job requirements.",
			ActionItems: []string{
				"Add more specific achievements with quantifiable results",
				"Include relevant projects that demonstrate required skills",
				"Highlight leadership and responsibility progression",
			},
		})
	}

	out = append(out, Recommendation{
		Type:        RecommendationFormat,
		Priority:    PriorityMedium,
		Title:       "Optimize for ATS Systems",
		Description: "Improve your resume's compatibility with applicant tracking systems.",
		ActionItems: []string{
			"Use standard section headings (Experience, Education, Skills)",
			"Include more keywords from the job description",
			"Use a clean, simple format without complex graphics",
		},
	})

	return out
}
