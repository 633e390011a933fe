package jobs

import (
	"testing"

	"resume-match/internal/resume"
)

func resumeWith(skills []string, years int, degree string) resume.Resume {
	r := resume.Resume{}
	for _, name := range skills {
		r.Skills = append(r.Skills, resume.Skill{Name: name})
	}
	if years > 0 {
		r.Experience = []resume.Experience{{Duration: years}}
	}
	if degree != "" {
		r.Education = []resume.Education{{Degree: degree}}
	}
	return r
}

func TestNewRankerLoadsCatalog(t *testing.T) {
	rk := NewRanker()
	if len(rk.Catalog) != 10 {
		t.Fatalf("expected 10 catalog postings, got %d", len(rk.Catalog))
	}
}

func TestRecommendInvariants(t *testing.T) {
	rk := NewRanker()
	r := resumeWith([]string{"Python", "React", "AWS"}, 4, "Bachelor of Science")

	recs := rk.Recommend(r)
	if len(recs) == 0 || len(recs) > 6 {
		t.Fatalf("expected 1..6 recommendations, got %d", len(recs))
	}
	for i, rec := range recs {
		if rec.MatchScore < 0 || rec.MatchScore > 100 {
			t.Fatalf("matchScore %d out of range", rec.MatchScore)
		}
		if i > 0 && recs[i-1].MatchScore < rec.MatchScore {
			t.Fatalf("recommendations not sorted descending at %d", i)
		}
	}
}

func TestRecommendStableTies(t *testing.T) {
	rk := &Ranker{Catalog: []Posting{
		{Title: "A", RequiredSkills: []string{"Go"}},
		{Title: "B", RequiredSkills: []string{"Go"}},
		{Title: "C", RequiredSkills: []string{"Rust"}},
	}}
	recs := rk.Recommend(resumeWith([]string{"Go"}, 0, ""))

	if recs[0].Title != "A" || recs[1].Title != "B" {
		t.Fatalf("ties must keep catalog order, got %s then %s", recs[0].Title, recs[1].Title)
	}
	if recs[2].Title != "C" {
		t.Fatalf("expected lowest score last, got %s", recs[2].Title)
	}
}

func TestMatchScore(t *testing.T) {
	posting := Posting{RequiredSkills: []string{"Go", "Docker", "AWS", "Linux"}}
	cases := []struct {
		name     string
		r        resume.Resume
		expected int
	}{
		{"no_overlap", resumeWith(nil, 0, ""), 0},
		{"half_skills", resumeWith([]string{"Go", "Docker"}, 0, ""), 50},
		{"experience_bonus", resumeWith([]string{"Go", "Docker"}, 3, ""), 56},
		{"experience_bonus_capped", resumeWith([]string{"Go", "Docker"}, 30, ""), 70},
		{"education_bonus", resumeWith([]string{"Go", "Docker"}, 0, "Master of Arts"), 60},
		{"capped_at_100", resumeWith([]string{"Go", "Docker", "AWS", "Linux"}, 30, "Bachelor"), 100},
		{"case_insensitive", resumeWith([]string{"go", "DOCKER"}, 0, ""), 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := matchScore(tc.r, posting); got != tc.expected {
				t.Fatalf("matchScore = %d, want %d", got, tc.expected)
			}
		})
	}
}

func TestRecommendEmptyResume(t *testing.T) {
	recs := NewRanker().Recommend(resume.Resume{})
	if len(recs) != 6 {
		t.Fatalf("expected 6 recommendations for empty resume, got %d", len(recs))
	}
	for _, rec := range recs {
		if rec.MatchScore != 0 {
			t.Fatalf("expected zero scores for empty resume, got %d", rec.MatchScore)
		}
	}
}
