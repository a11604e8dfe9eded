package models

import "testing"

func TestValidTone(t *testing.T) {
	tests := []struct {
		tone     string
		expected bool
	}{
		{ToneProfessional, true},
		{ToneCasual, true},
		{ToneExciting, true},
		{ToneTrustworthy, true},
		{"", false},
		{"Professional", false},
		{"sarcastic", false},
		{"exciting ", false},
	}

	for _, tt := range tests {
		t.Run(tt.tone, func(t *testing.T) {
			if got := ValidTone(tt.tone); got != tt.expected {
				t.Errorf("ValidTone(%q) = %v, want %v", tt.tone, got, tt.expected)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	if !ValidStatus(StatusActive) {
		t.Errorf("ValidStatus(%q) = false, want true", StatusActive)
	}
	for _, s := range []string{"", "inactive", "archived", "Active"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}
