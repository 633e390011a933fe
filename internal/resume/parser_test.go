package resume

import (
	"strings"
	"testing"
	"time"

	"resume-match/internal/taxonomy"
)

func testParser() *Parser {
	return &Parser{
		Tax: taxonomy.Default(),
		Now: func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) },
	}
}

const janeSmithText = "Jane Smith\njane@x.com\n555-123-4567\n\nExperience\nSoftware Engineer\nTechCo\n2018 - 2022\nLed team of 5, increased throughput by 30%"

func TestParseJaneSmithScenario(t *testing.T) {
	r := testParser().Parse("jane.pdf", janeSmithText)

	if r.ContactInfo.Name != "Jane Smith" {
		t.Fatalf("name = %q, want %q", r.ContactInfo.Name, "Jane Smith")
	}
	if r.ContactInfo.Email != "jane@x.com" {
		t.Fatalf("email = %q, want %q", r.ContactInfo.Email, "jane@x.com")
	}
	if r.ContactInfo.Phone != "555-123-4567" {
		t.Fatalf("phone = %q, want %q", r.ContactInfo.Phone, "555-123-4567")
	}

	if len(r.Experience) != 1 {
		t.Fatalf("expected 1 experience entry, got %d", len(r.Experience))
	}
	exp := r.Experience[0]
	if exp.Title != "Software Engineer" {
		t.Fatalf("title = %q", exp.Title)
	}
	if exp.Company != "TechCo" {
		t.Fatalf("company = %q", exp.Company)
	}
	if exp.StartDate != "2018" || exp.EndDate != "2022" {
		t.Fatalf("dates = %q..%q", exp.StartDate, exp.EndDate)
	}
	if exp.Duration != 4 {
		t.Fatalf("duration = %d, want 4", exp.Duration)
	}

	foundAchievement := false
	for _, a := range exp.Achievements {
		if strings.Contains(a, "Led team") {
			foundAchievement = true
		}
	}
	if !foundAchievement {
		t.Fatalf("expected the Led team fragment in achievements, got %v", exp.Achievements)
	}
}

func TestParseEmptyInput(t *testing.T) {
	r := testParser().Parse("", "")

	if len(r.Experience) != 0 || len(r.Education) != 0 || len(r.Skills) != 0 {
		t.Fatalf("expected all list fields empty, got %d/%d/%d",
			len(r.Experience), len(r.Education), len(r.Skills))
	}
	if r.ExperienceLevel != LevelEntry {
		t.Fatalf("experienceLevel = %q, want Entry", r.ExperienceLevel)
	}
	if !strings.Contains(r.Summary, "Entry-level") {
		t.Fatalf("summary missing Entry-level: %q", r.Summary)
	}
	if !strings.Contains(r.Summary, "0 years") {
		t.Fatalf("summary missing 0 years: %q", r.Summary)
	}
}

func TestParseSkillDedupInvariant(t *testing.T) {
	text := "Go developer. go services in Go, plus python and Python and React react REACT."
	r := testParser().Parse("dup.txt", text)

	seen := make(map[string]bool)
	for _, skill := range r.Skills {
		key := strings.ToLower(skill.Name)
		if seen[key] {
			t.Fatalf("duplicate skill name %q", skill.Name)
		}
		seen[key] = true
	}
	if !seen["go"] || !seen["python"] || !seen["react"] {
		t.Fatalf("expected go, python, react detected; got %v", seen)
	}
}

func TestParseAssignsIdentity(t *testing.T) {
	r := testParser().Parse("resume.pdf", janeSmithText)
	if r.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if r.FileName != "resume.pdf" {
		t.Fatalf("fileName = %q", r.FileName)
	}
	if r.ExtractedText != janeSmithText {
		t.Fatalf("extractedText not preserved")
	}

	other := testParser().Parse("resume.pdf", janeSmithText)
	if other.ID == r.ID {
		t.Fatalf("expected distinct ids per parse")
	}
}

func TestTotalExperienceYears(t *testing.T) {
	r := Resume{Experience: []Experience{{Duration: 3}, {Duration: 2}}}
	if got := r.TotalExperienceYears(); got != 5 {
		t.Fatalf("TotalExperienceYears = %d, want 5", got)
	}
}
