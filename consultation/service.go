package consultation

import (
	"context"
	"fmt"
	"time"
)

// Provider performs the two generative calls. Implementations render a prompt
// from the inputs and parse the provider's JSON reply; a missing or malformed
// reply must surface as an error, never as a fabricated result.
type Provider interface {
	AnalyzeSymptoms(ctx context.Context, symptoms string) (*Analysis, error)
	RecommendRemedies(ctx context.Context, req RemedyRequest) (*RemedyAdvice, error)
}

// Service sequences the two stages over a consultation: the remedy call is
// gated on a completed analysis, and each stage settles independently.
type Service struct {
	provider Provider
	timeout  time.Duration
}

// NewService constructs a Service. timeout bounds each provider call.
func NewService(provider Provider, timeout time.Duration) *Service {
	return &Service{
		provider: provider,
		timeout:  timeout,
	}
}

// Analyze runs the symptom analysis stage. The consultation transitions to
// analyzing before the call (discarding any prior results) and settles to
// analyzed or failed. The failure error wraps the provider error; callers
// surface a generic retry message to the user.
func (s *Service) Analyze(ctx context.Context, c *Consultation, symptoms string) (*Analysis, error) {
	if err := c.BeginAnalysis(symptoms); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	analysis, err := s.provider.AnalyzeSymptoms(ctx, symptoms)
	if err != nil {
		c.FailAnalysis()
		return nil, fmt.Errorf("symptom analysis failed: %w", err)
	}

	c.CompleteAnalysis(analysis)
	return analysis, nil
}

// Recommend runs the remedy recommendation stage. It is rejected with
// ErrAnalysisRequired until an analysis result and the original symptom text
// are present. A failure here leaves the analysis intact so the stage can be
// retried without re-running the analysis.
func (s *Service) Recommend(ctx context.Context, c *Consultation, location string) (*RemedyAdvice, error) {
	req, err := c.BeginRecommendation(location)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	advice, err := s.provider.RecommendRemedies(ctx, req)
	if err != nil {
		c.FailRecommendation()
		return nil, fmt.Errorf("remedy recommendation failed: %w", err)
	}

	c.CompleteRecommendation(advice)
	return advice, nil
}
