// Package analysis owns the single in-memory session: the current resume,
// the last analyzed job description, and the match analysis derived from
// them. All derived values are recomputed from stored inputs, never mutated
// in place.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"resume-match/internal/extract"
	"resume-match/internal/jobdesc"
	"resume-match/internal/jobs"
	"resume-match/internal/match"
	"resume-match/internal/resume"
	"resume-match/internal/shared/metrics"
	"resume-match/internal/shared/telemetry"
	"resume-match/internal/taxonomy"
)

// Snapshot is the full session state. Absent parts are null in JSON.
type Snapshot struct {
	Resume         *resume.Resume          `json:"resume"`
	JobDescription *jobdesc.JobDescription `json:"jobDescription"`
	MatchAnalysis  *match.MatchAnalysis    `json:"matchAnalysis"`
}

// Service contains the business logic for resume analysis. It is safe for
// concurrent use.
type Service struct {
	parser    *resume.Parser
	jobParser *jobdesc.Parser
	scorer    *match.Scorer
	ranker    *jobs.Ranker

	mu      sync.RWMutex
	session Snapshot
}

// NewService constructs a Service over a shared taxonomy and job catalog.
func NewService(tax *taxonomy.Taxonomy, ranker *jobs.Ranker) *Service {
	return &Service{
		parser:    resume.NewParser(tax),
		jobParser: jobdesc.NewParser(tax),
		scorer:    match.NewScorer(tax),
		ranker:    ranker,
	}
}

// UploadResume extracts text from an uploaded file and parses it into the
// session resume. Any prior resume and derived analysis are discarded.
func (s *Service) UploadResume(ctx context.Context, fileName string, data []byte, mimeType string, onProgress extract.ProgressFunc) (resume.Resume, error) {
	result, err := extract.FromBytes(ctx, data, mimeType, fileName, onProgress)
	if err != nil {
		metrics.IncExtractionFailed()
		telemetry.Error("resume.extract_failed", map[string]any{
			"fileName": fileName,
			"mimeType": mimeType,
			"error":    err.Error(),
		})
		return resume.Resume{}, fmt.Errorf("upload resume %s: %w", fileName, err)
	}
	return s.storeResume(fileName, result.Text), nil
}

// SubmitResumeText parses raw resume text into the session resume,
// bypassing the extraction boundary.
func (s *Service) SubmitResumeText(ctx context.Context, fileName string, text string) (resume.Resume, error) {
	if strings.TrimSpace(text) == "" {
		return resume.Resume{}, fmt.Errorf("%w: resume text is required", ErrInvalidInput)
	}
	if fileName == "" {
		fileName = "resume.txt"
	}
	return s.storeResume(fileName, text), nil
}

func (s *Service) storeResume(fileName, text string) resume.Resume {
	parsed := s.parser.Parse(fileName, text)
	metrics.IncResumeParsed()
	telemetry.Info("resume.parsed", map[string]any{
		"resumeId":   parsed.ID,
		"fileName":   fileName,
		"skills":     len(parsed.Skills),
		"experience": len(parsed.Experience),
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Snapshot{Resume: &parsed}
	return parsed
}

// AnalyzeJob parses a job description and scores the session resume against
// it. The result replaces any prior analysis.
func (s *Service) AnalyzeJob(ctx context.Context, title, company, description string) (match.MatchAnalysis, error) {
	if strings.TrimSpace(description) == "" {
		return match.MatchAnalysis{}, fmt.Errorf("%w: job description is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.Resume == nil {
		metrics.IncAnalysisFailed()
		return match.MatchAnalysis{}, ErrNoResume
	}

	start := time.Now()
	jd := s.jobParser.Parse(title, company, description)
	result := s.scorer.Calculate(*s.session.Resume, jd)
	s.session.JobDescription = &jd
	s.session.MatchAnalysis = &result

	metrics.IncAnalysisScored()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Nanoseconds()) / 1e6)
	telemetry.Info("analysis.scored", map[string]any{
		"jobTitle":     jd.Title,
		"overallMatch": result.OverallMatch,
	})
	return result, nil
}

// Recommendations ranks the job catalog against the session resume.
func (s *Service) Recommendations(ctx context.Context) ([]jobs.JobRecommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session.Resume == nil {
		return nil, ErrNoResume
	}
	return s.ranker.Recommend(*s.session.Resume), nil
}

// Session returns the current session snapshot.
func (s *Service) Session(ctx context.Context) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Reset discards all session state.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Snapshot{}
}
