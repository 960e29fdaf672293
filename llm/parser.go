package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/remedia/remedia-api/consultation"
)

var fenceRegex = regexp.MustCompile("```[a-zA-Z]*\n|```")

// stripFences removes markdown code fences such as ```json ... ``` so the
// payload can be parsed.
func stripFences(text string) string {
	return strings.TrimSpace(fenceRegex.ReplaceAllString(text, ""))
}

// ParseAnalysis parses a symptom analysis reply. Malformed JSON, an empty
// condition list, blank names, or likelihoods outside [0,1] are all errors:
// the call fails rather than fabricating a result.
func ParseAnalysis(raw string) (*consultation.Analysis, error) {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}

	var analysis consultation.Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, fmt.Errorf("malformed analysis response: %w", err)
	}

	if len(analysis.Conditions) == 0 {
		return nil, fmt.Errorf("analysis response contains no conditions")
	}
	for i, c := range analysis.Conditions {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("analysis response condition %d has no name", i)
		}
		if c.Likelihood < 0 || c.Likelihood > 1 {
			return nil, fmt.Errorf("analysis response condition %q has likelihood %v outside [0,1]", c.Name, c.Likelihood)
		}
	}

	return &analysis, nil
}

// ParseAdvice parses a remedy recommendation reply. Malformed JSON, an empty
// remedy list, or blank remedy names are errors. Optional ingredients are
// optional; when present each needs a name and a reasoning.
func ParseAdvice(raw string) (*consultation.RemedyAdvice, error) {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}

	var advice consultation.RemedyAdvice
	if err := json.Unmarshal([]byte(cleaned), &advice); err != nil {
		return nil, fmt.Errorf("malformed remedy response: %w", err)
	}

	if len(advice.Remedies) == 0 {
		return nil, fmt.Errorf("remedy response contains no remedies")
	}
	for i, r := range advice.Remedies {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("remedy response remedy %d has no name", i)
		}
	}
	for i, ing := range advice.OptionalIngredients {
		if strings.TrimSpace(ing.Name) == "" {
			return nil, fmt.Errorf("remedy response ingredient %d has no name", i)
		}
		if strings.TrimSpace(ing.Reasoning) == "" {
			return nil, fmt.Errorf("remedy response ingredient %q has no reasoning", ing.Name)
		}
	}

	return &advice, nil
}
