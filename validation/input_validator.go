// Package validation provides user input validation for the consultation API.
package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/remedia/remedia-api/interfaces"
)

// Input length limits in characters, counted after normalization
const (
	minSymptomsLength = 10
	maxSymptomsLength = 2000
	minLocationLength = 2
	maxLocationLength = 120
)

// Dangerous patterns as strings (faster than regex for simple substring matching)
// strings.Contains is 5-10x faster than regex for these patterns
var dangerousPatterns = []string{
	"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
	"onclick=", "onmouseover=", "onfocus=", "onblur=", "onchange=", "onsubmit=",
	"eval(", "expression(", "url(", "@import", "binding(", "behavior(",
	// Path traversal patterns
	"../", "..\\", "%2e%2e", "file://",
	// NoSQL injection patterns
	"{$ne:", "{$gt:", "{$where:", "{$or:", "{$regex:", "{$expr:",
}

// InputValidatorImpl implements the interfaces.InputValidator interface
type InputValidatorImpl struct{}

// NewInputValidator creates a new input validator
func NewInputValidator() interfaces.InputValidator {
	return &InputValidatorImpl{}
}

// ValidateSymptoms checks a free-text symptom description. The text must be
// long enough to describe something and must pass the generic safety checks.
func (v *InputValidatorImpl) ValidateSymptoms(input string) error {
	normalized := norm.NFC.String(strings.TrimSpace(input))

	if normalized == "" {
		return fmt.Errorf("symptoms cannot be empty")
	}

	length := utf8.RuneCountInString(normalized)
	if length < minSymptomsLength {
		return fmt.Errorf("symptoms description too short: minimum %d characters", minSymptomsLength)
	}
	if length > maxSymptomsLength {
		return fmt.Errorf("symptoms description too long: maximum %d characters", maxSymptomsLength)
	}

	return v.ValidateInput(normalized)
}

// ValidateLocation checks a location string.
func (v *InputValidatorImpl) ValidateLocation(input string) error {
	normalized := norm.NFC.String(strings.TrimSpace(input))

	if normalized == "" {
		return fmt.Errorf("location cannot be empty")
	}

	length := utf8.RuneCountInString(normalized)
	if length < minLocationLength {
		return fmt.Errorf("location too short: minimum %d characters", minLocationLength)
	}
	if length > maxLocationLength {
		return fmt.Errorf("location too long: maximum %d characters", maxLocationLength)
	}

	return v.ValidateInput(normalized)
}

// ValidateInput runs the generic safety checks shared by all free-text
// fields: dangerous markup or injection patterns, control characters, and
// excessive character repetition.
func (v *InputValidatorImpl) ValidateInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("input cannot be empty")
	}

	// Check for potentially dangerous patterns using string matching (5-10x faster than regex)
	lowerInput := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowerInput, pattern) {
			return fmt.Errorf("input contains potentially dangerous content")
		}
	}

	// Free text allows any letters and punctuation, but never control characters
	for _, r := range input {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return fmt.Errorf("input contains invalid control characters")
		}
	}

	// Additional checks for repeated characters (potential DoS)
	if hasExcessiveRepetition(input) {
		return fmt.Errorf("input contains excessive character repetition")
	}

	return nil
}

// hasExcessiveRepetition checks for potential DoS patterns with excessive character repetition
func hasExcessiveRepetition(input string) bool {
	// Check for the same character repeated more than 20 times consecutively
	for i := 0; i < len(input)-20; i++ {
		allSame := true
		for j := 1; j <= 20; j++ {
			if input[i] != input[i+j] {
				allSame = false
				break
			}
		}
		if allSame {
			return true
		}
	}
	return false
}
