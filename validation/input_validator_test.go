package validation

import (
	"strings"
	"testing"
)

func TestValidateSymptoms(t *testing.T) {
	v := NewInputValidator()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"valid description", "I have a headache, fever, and a runny nose", ""},
		{"valid with accents", "douleur à la tête depuis hier", ""},
		{"exactly ten characters", "sore thumb", ""},
		{"empty", "", "cannot be empty"},
		{"whitespace only", "   \t  ", "cannot be empty"},
		{"too short", "headache", "too short"},
		{"nine characters", "tired leg", "too short"},
		{"too long", strings.Repeat("fever and chills ", 200), "too long"},
		{"script tag", "headache <script>alert(1)</script> fever", "dangerous content"},
		{"path traversal", "fever ../../etc/passwd pain here", "dangerous content"},
		{"excessive repetition", "headache " + strings.Repeat("a", 30), "excessive character repetition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSymptoms(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error for %q, got %v", tt.input, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error for %q, got nil", tt.input)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateSymptomsCountsRunesNotBytes(t *testing.T) {
	v := NewInputValidator()

	// Ten accented characters multi-byte in UTF-8, still long enough
	if err := v.ValidateSymptoms("éééééééééé"); err != nil {
		t.Errorf("Expected rune-counted length to pass, got %v", err)
	}
}

func TestValidateLocation(t *testing.T) {
	v := NewInputValidator()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"city", "New York", ""},
		{"two characters", "NY", ""},
		{"country with accents", "São Paulo", ""},
		{"empty", "", "cannot be empty"},
		{"one character", "N", "too short"},
		{"too long", strings.Repeat("a very long place name ", 10), "too long"},
		{"script tag", "NY<script>", "dangerous content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateLocation(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error for %q, got %v", tt.input, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error for %q, got nil", tt.input)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateInputControlCharacters(t *testing.T) {
	v := NewInputValidator()

	if err := v.ValidateInput("fever\x00chills"); err == nil {
		t.Error("Expected error for NUL byte")
	}
	if err := v.ValidateInput("fever\nchills and aches"); err != nil {
		t.Errorf("Expected newlines to be allowed, got %v", err)
	}
}
