package match

import (
	"reflect"
	"testing"

	"resume-match/internal/jobdesc"
	"resume-match/internal/resume"
	"resume-match/internal/taxonomy"
)

func testScorer() *Scorer {
	return NewScorer(taxonomy.Default())
}

func resumeWithSkills(names ...string) resume.Resume {
	r := resume.Resume{ExtractedText: "resume text"}
	for _, name := range names {
		r.Skills = append(r.Skills, resume.Skill{Name: name, ProficiencyLevel: 50})
	}
	return r
}

func TestSkillsMatchPartialCredit(t *testing.T) {
	r := resumeWithSkills("React", "Python")
	jd := jobdesc.JobDescription{RequiredSkills: []string{"React", "Angular", "Node.js"}}

	// React matches exactly; Angular and Node.js each earn half credit
	// because React shares their category. (1+0.5+0.5)/3*80 + flat 20.
	got := testScorer().skillsMatch(r, jd)
	if got != 73 {
		t.Fatalf("skillsMatch = %d, want 73", got)
	}

	missing := testScorer().missingSkills(r, jd)
	if len(missing) != 0 {
		t.Fatalf("related-credited skills must not be missing, got %v", missing)
	}
}

func TestSkillsMatchTrueMissing(t *testing.T) {
	r := resumeWithSkills("React", "Python")
	jd := jobdesc.JobDescription{RequiredSkills: []string{"React", "PostgreSQL"}}

	// PostgreSQL has no related skill on the resume: (1/2)*80 + flat 20.
	if got := testScorer().skillsMatch(r, jd); got != 60 {
		t.Fatalf("skillsMatch = %d, want 60", got)
	}

	missing := testScorer().missingSkills(r, jd)
	if len(missing) != 1 || missing[0] != "PostgreSQL" {
		t.Fatalf("missing = %v, want [PostgreSQL]", missing)
	}
}

func TestSkillsMatchEmptyListsFlatScores(t *testing.T) {
	if got := testScorer().skillsMatch(resumeWithSkills(), jobdesc.JobDescription{}); got != 100 {
		t.Fatalf("skillsMatch with no listed skills = %d, want 100", got)
	}
}

func TestSkillsMatchCaseInsensitive(t *testing.T) {
	r := resumeWithSkills("react")
	jd := jobdesc.JobDescription{RequiredSkills: []string{"REACT"}}
	if got := testScorer().skillsMatch(r, jd); got != 100 {
		t.Fatalf("skillsMatch = %d, want 100", got)
	}
}

func TestExperienceMatchThresholds(t *testing.T) {
	jd := jobdesc.JobDescription{Description: "5 years experience required"}
	cases := []struct {
		name     string
		years    int
		expected int
	}{
		{"well_over", 6, 100},
		{"exactly_required", 5, 95},
		{"eighty_pct", 4, 85},
		{"sixty_pct", 3, 70},
		{"forty_pct", 2, 55},
		{"far_below", 1, 30},
		{"zero", 0, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := resume.Resume{Experience: []resume.Experience{{Duration: tc.years}}}
			if got := experienceMatch(r, jd); got != tc.expected {
				t.Fatalf("experienceMatch = %d, want %d", got, tc.expected)
			}
		})
	}
}

func TestExperienceMatchNoRequirement(t *testing.T) {
	jd := jobdesc.JobDescription{Description: "senior engineer role"}
	for _, years := range []int{0, 3, 30} {
		r := resume.Resume{Experience: []resume.Experience{{Duration: years}}}
		if got := experienceMatch(r, jd); got != 85 {
			t.Fatalf("experienceMatch with no requirement = %d, want 85", got)
		}
	}
}

func TestRequiredYearsPatterns(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected int
	}{
		{"years_experience", "needs 4+ years of experience", 4},
		{"years_professional", "6 years professional background", 6},
		{"minimum", "minimum of 3 years in the field", 3},
		{"at_least", "at least 8 years", 8},
		{"first_pattern_wins", "2 years experience; minimum of 9 years", 2},
		{"none", "seasoned engineer", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := requiredYears(tc.text); got != tc.expected {
				t.Fatalf("requiredYears = %d, want %d", got, tc.expected)
			}
		})
	}
}

func TestEducationMatch(t *testing.T) {
	bachelors := resume.Resume{Education: []resume.Education{{Degree: "Bachelor of Science"}}}
	mba := resume.Resume{Education: []resume.Education{{Degree: "MBA, Finance"}}}
	none := resume.Resume{}

	cases := []struct {
		name        string
		r           resume.Resume
		requirement string
		expected    int
	}{
		{"no_requirement", none, "", 100},
		{"requirement_none", none, "None", 100},
		{"bachelor_met", bachelors, "Bachelor's degree", 100},
		{"bachelor_unmet", none, "Bachelor's degree", 60},
		{"master_met_by_mba", mba, "Master's degree", 100},
		{"phd_unmet", bachelors, "PhD", 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jd := jobdesc.JobDescription{Education: tc.requirement}
			if got := educationMatch(tc.r, jd); got != tc.expected {
				t.Fatalf("educationMatch = %d, want %d", got, tc.expected)
			}
		})
	}
}

func TestSoftSkillsMatch(t *testing.T) {
	r := resume.Resume{ExtractedText: "Demonstrated leadership across teams."}

	jd := jobdesc.JobDescription{Description: "We value leadership and communication."}
	if got := softSkillsMatch(r, jd); got != 50 {
		t.Fatalf("softSkillsMatch = %d, want 50", got)
	}

	jd = jobdesc.JobDescription{Description: "We ship software."}
	if got := softSkillsMatch(r, jd); got != 80 {
		t.Fatalf("softSkillsMatch with no keywords = %d, want 80", got)
	}
}

func TestCalculateScoresInRange(t *testing.T) {
	scorer := testScorer()
	resumes := []resume.Resume{
		{},
		resumeWithSkills("React", "Python", "Docker"),
		{
			ExtractedText: "leadership communication analytical",
			ContactInfo:   resume.ContactInfo{Name: "A B", Email: "a@b.co"},
			Experience:    []resume.Experience{{Duration: 12, Title: "Director"}},
			Education:     []resume.Education{{Degree: "PhD in CS"}},
		},
	}
	jds := []jobdesc.JobDescription{
		{},
		{Description: "10 years experience, leadership", RequiredSkills: []string{"Rust", "Go"}, Education: "PhD"},
		{RequiredSkills: []string{"React"}, PreferredSkills: []string{"Docker", "AWS"}},
	}

	for _, r := range resumes {
		for _, jd := range jds {
			analysis := scorer.Calculate(r, jd)
			for name, score := range map[string]int{
				"overall":    analysis.OverallMatch,
				"skills":     analysis.SkillsMatch,
				"experience": analysis.ExperienceMatch,
				"education":  analysis.EducationMatch,
				"ats":        analysis.ATSScore,
			} {
				if score < 0 || score > 100 {
					t.Fatalf("%s score %d out of range", name, score)
				}
			}
		}
	}
}

func TestCalculateIdempotent(t *testing.T) {
	r := resumeWithSkills("React", "Python")
	r.Experience = []resume.Experience{{Duration: 4}}
	jd := jobdesc.JobDescription{
		Description:    "5 years experience with React and leadership",
		RequiredSkills: []string{"React", "Angular"},
		Education:      "Bachelor's degree",
	}

	first := testScorer().Calculate(r, jd)
	second := testScorer().Calculate(r, jd)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Calculate is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestMissingSkillsDrawnFromRequired(t *testing.T) {
	r := resumeWithSkills("Python")
	jd := jobdesc.JobDescription{
		RequiredSkills:  []string{"Rust", "Embedded Widgets"},
		PreferredSkills: []string{"Kubernetes"},
	}

	analysis := testScorer().Calculate(r, jd)
	required := map[string]bool{}
	for _, s := range jd.RequiredSkills {
		required[s] = true
	}
	for _, missing := range analysis.MissingSkills {
		if !required[missing] {
			t.Fatalf("missing skill %q not drawn from requiredSkills", missing)
		}
	}
}
