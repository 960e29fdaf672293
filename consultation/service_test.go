package consultation

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider records calls and returns scripted results.
type mockProvider struct {
	analysis    *Analysis
	analysisErr error
	advice      *RemedyAdvice
	adviceErr   error

	analyzeCalls   int
	recommendCalls int
	lastSymptoms   string
	lastRequest    RemedyRequest
}

func (m *mockProvider) AnalyzeSymptoms(ctx context.Context, symptoms string) (*Analysis, error) {
	m.analyzeCalls++
	m.lastSymptoms = symptoms
	if m.analysisErr != nil {
		return nil, m.analysisErr
	}
	return m.analysis, nil
}

func (m *mockProvider) RecommendRemedies(ctx context.Context, req RemedyRequest) (*RemedyAdvice, error) {
	m.recommendCalls++
	m.lastRequest = req
	if m.adviceErr != nil {
		return nil, m.adviceErr
	}
	return m.advice, nil
}

func TestTwoStageFlow(t *testing.T) {
	provider := &mockProvider{
		analysis: &Analysis{Conditions: []Condition{
			{Name: "Common Cold", Likelihood: 0.7},
			{Name: "Flu", Likelihood: 0.3},
		}},
		advice: &RemedyAdvice{Remedies: []Remedy{
			{Name: "Ginger tea", Explanation: "Soothes the throat"},
			{Name: "Steam inhalation", Explanation: "Clears congestion"},
		}},
	}
	svc := NewService(provider, time.Minute)
	c := New("flow-session")

	analysis, err := svc.Analyze(context.Background(), c, "I have a headache, fever, and a runny nose")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(analysis.Conditions) != 2 || analysis.Conditions[0].Name != "Common Cold" {
		t.Fatalf("Unexpected analysis: %+v", analysis)
	}
	if c.Phase() != PhaseAnalyzed {
		t.Errorf("Expected phase analyzed, got %s", c.Phase())
	}

	advice, err := svc.Recommend(context.Background(), c, "New York")
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(advice.Remedies) != 2 {
		t.Fatalf("Unexpected advice: %+v", advice)
	}
	if c.Phase() != PhaseRecommended {
		t.Errorf("Expected phase recommended, got %s", c.Phase())
	}

	// The remedy request carries the condition names joined in provider order.
	if provider.lastRequest.PossibleConditions != "Common Cold, Flu" {
		t.Errorf("Expected possibleConditions %q, got %q", "Common Cold, Flu", provider.lastRequest.PossibleConditions)
	}
	if provider.lastRequest.Symptoms != "I have a headache, fever, and a runny nose" {
		t.Errorf("Symptom text not carried over: %q", provider.lastRequest.Symptoms)
	}
	if provider.lastRequest.Location != "New York" {
		t.Errorf("Location not carried over: %q", provider.lastRequest.Location)
	}
}

func TestAnalyzeFailureLeavesResultUnset(t *testing.T) {
	provider := &mockProvider{analysisErr: errors.New("provider unavailable")}
	svc := NewService(provider, time.Minute)
	c := New("fail-session")

	_, err := svc.Analyze(context.Background(), c, "burning sensation in both feet at night")
	if err == nil {
		t.Fatal("Expected error, got none")
	}
	if c.Analysis() != nil {
		t.Error("Expected analysis unset after provider failure")
	}
	if c.Phase() != PhaseFailed {
		t.Errorf("Expected phase failed, got %s", c.Phase())
	}
	if c.FailedStage() != StageAnalysis {
		t.Errorf("Expected failed stage analysis, got %s", c.FailedStage())
	}
}

func TestRecommendRejectedWithoutAnalysis(t *testing.T) {
	provider := &mockProvider{}
	svc := NewService(provider, time.Minute)
	c := New("gated-session")

	_, err := svc.Recommend(context.Background(), c, "Berlin")
	if !errors.Is(err, ErrAnalysisRequired) {
		t.Fatalf("Expected ErrAnalysisRequired, got %v", err)
	}
	if provider.recommendCalls != 0 {
		t.Errorf("Expected no provider call, got %d", provider.recommendCalls)
	}
}

func TestRecommendFailureAllowsRetryWithoutReanalysis(t *testing.T) {
	provider := &mockProvider{
		analysis:  &Analysis{Conditions: []Condition{{Name: "Sinusitis", Likelihood: 0.8}}},
		adviceErr: errors.New("timeout"),
	}
	svc := NewService(provider, time.Minute)
	c := New("retry-session")

	if _, err := svc.Analyze(context.Background(), c, "facial pressure and thick nasal discharge"); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if _, err := svc.Recommend(context.Background(), c, "Austin"); err == nil {
		t.Fatal("Expected remedy failure, got none")
	}
	if c.Analysis() == nil {
		t.Fatal("Expected analysis kept after remedy failure")
	}

	provider.adviceErr = nil
	provider.advice = &RemedyAdvice{Remedies: []Remedy{{Name: "Warm compress"}}}

	if _, err := svc.Recommend(context.Background(), c, "Austin"); err != nil {
		t.Fatalf("Retry failed: %v", err)
	}
	if provider.analyzeCalls != 1 {
		t.Errorf("Expected 1 analysis call in total, got %d", provider.analyzeCalls)
	}
	if provider.recommendCalls != 2 {
		t.Errorf("Expected 2 remedy calls in total, got %d", provider.recommendCalls)
	}
}

func TestNewSubmissionClearsRemediesBeforeResolving(t *testing.T) {
	provider := &mockProvider{
		analysis: &Analysis{Conditions: []Condition{{Name: "Common Cold", Likelihood: 0.7}}},
		advice:   &RemedyAdvice{Remedies: []Remedy{{Name: "Rest"}}},
	}
	svc := NewService(provider, time.Minute)
	c := New("reset-session")

	if _, err := svc.Analyze(context.Background(), c, "I have a headache, fever, and a runny nose"); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if _, err := svc.Recommend(context.Background(), c, "New York"); err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if c.Advice() == nil {
		t.Fatal("Expected remedy result present")
	}

	// Make the second analysis fail: the stale remedy result must already be
	// gone even though the new analysis never resolved successfully.
	provider.analysisErr = errors.New("provider unavailable")
	_, err := svc.Analyze(context.Background(), c, "completely different symptoms this time")
	if err == nil {
		t.Fatal("Expected analysis failure, got none")
	}
	if c.Advice() != nil {
		t.Error("Expected stale remedy result cleared on new submission")
	}
}
