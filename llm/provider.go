package llm

import (
	"context"
	"time"

	"github.com/remedia/remedia-api/consultation"
	"github.com/remedia/remedia-api/logging"
	"github.com/remedia/remedia-api/metrics"
)

// Compile-time check to ensure Provider implements consultation.Provider
var _ consultation.Provider = (*Provider)(nil)

// Provider implements the two generative operations on top of a Client:
// prompt rendering, one completion call, and strict parsing of the reply.
type Provider struct {
	client Client
}

// NewProvider wraps a provider client.
func NewProvider(client Client) *Provider {
	return &Provider{client: client}
}

// AnalyzeSymptoms maps free-text symptoms to a ranked condition list.
func (p *Provider) AnalyzeSymptoms(ctx context.Context, symptoms string) (*consultation.Analysis, error) {
	raw, err := p.complete(ctx, "analysis", BuildAnalysisPrompt(symptoms))
	if err != nil {
		return nil, err
	}

	analysis, err := ParseAnalysis(raw)
	if err != nil {
		logging.Warn("Discarded unusable analysis reply",
			"provider", p.client.Name(),
			"model", p.client.Model(),
			"error", err)
		return nil, err
	}
	return analysis, nil
}

// RecommendRemedies maps symptoms, location, and the joined condition names to
// home remedy suggestions.
func (p *Provider) RecommendRemedies(ctx context.Context, req consultation.RemedyRequest) (*consultation.RemedyAdvice, error) {
	raw, err := p.complete(ctx, "remedies", BuildRemedyPrompt(req))
	if err != nil {
		return nil, err
	}

	advice, err := ParseAdvice(raw)
	if err != nil {
		logging.Warn("Discarded unusable remedy reply",
			"provider", p.client.Name(),
			"model", p.client.Model(),
			"error", err)
		return nil, err
	}
	return advice, nil
}

// complete runs one completion call with per-stage metrics.
func (p *Provider) complete(ctx context.Context, stage, prompt string) (string, error) {
	start := time.Now()
	raw, err := p.client.Complete(ctx, prompt)
	duration := time.Since(start)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.ObserveLLMRequest(stage, p.client.Name(), outcome, duration)

	if err != nil {
		logging.Error("Provider call failed",
			"stage", stage,
			"provider", p.client.Name(),
			"duration_ms", duration.Milliseconds(),
			"error", err)
		return "", err
	}

	logging.Debug("Provider call completed",
		"stage", stage,
		"provider", p.client.Name(),
		"duration_ms", duration.Milliseconds())
	return raw, nil
}
