package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/remedia/remedia-api/consultation"
)

// stubClient returns canned replies and records the prompts it was given
type stubClient struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubClient) Complete(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubClient) Name() string  { return "stub" }
func (s *stubClient) Model() string { return "stub-model" }

func TestAnalyzeSymptoms(t *testing.T) {
	client := &stubClient{
		reply: `{"conditions":[{"condition":"Common Cold","likelihood":0.7},{"condition":"Flu","likelihood":0.3}]}`,
	}
	p := NewProvider(client)

	analysis, err := p.AnalyzeSymptoms(context.Background(), "headache and fever")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(analysis.Conditions) != 2 {
		t.Fatalf("Expected 2 conditions, got %d", len(analysis.Conditions))
	}

	if len(client.prompts) != 1 {
		t.Fatalf("Expected 1 completion call, got %d", len(client.prompts))
	}
	if !strings.Contains(client.prompts[0], "headache and fever") {
		t.Error("Expected the symptoms to appear in the prompt")
	}
}

func TestAnalyzeSymptomsMalformedReply(t *testing.T) {
	client := &stubClient{reply: "sorry, I cannot help with that"}
	p := NewProvider(client)

	if _, err := p.AnalyzeSymptoms(context.Background(), "headache and fever"); err == nil {
		t.Fatal("Expected an error for a non-JSON reply")
	}
}

func TestAnalyzeSymptomsClientError(t *testing.T) {
	wantErr := errors.New("connection refused")
	client := &stubClient{err: wantErr}
	p := NewProvider(client)

	_, err := p.AnalyzeSymptoms(context.Background(), "headache and fever")
	if !errors.Is(err, wantErr) {
		t.Errorf("Expected the client error to propagate, got %v", err)
	}
}

func TestRecommendRemedies(t *testing.T) {
	client := &stubClient{
		reply: `{"remedies":[{"name":"Ginger tea","explanation":"Soothes."}]}`,
	}
	p := NewProvider(client)

	req := consultation.RemedyRequest{
		Symptoms:           "headache and fever",
		Location:           "New York",
		PossibleConditions: "Common Cold, Flu",
	}
	advice, err := p.RecommendRemedies(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(advice.Remedies) != 1 {
		t.Fatalf("Expected 1 remedy, got %d", len(advice.Remedies))
	}

	prompt := client.prompts[0]
	for _, want := range []string{"headache and fever", "New York", "Common Cold, Flu"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected %q in the remedy prompt", want)
		}
	}
}
