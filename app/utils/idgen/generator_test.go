package idgen

import (
	"strings"
	"testing"
)

func TestGenerateSecureID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := GenerateSecureID("user", 16)
		if err != nil {
			t.Fatalf("GenerateSecureID: %v", err)
		}
		if !strings.HasPrefix(id, "user_") {
			t.Fatalf("id = %q", id)
		}
		if len(id) != len("user_")+16 {
			t.Fatalf("len(%q) = %d", id, len(id))
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		if !ValidateIDFormat(id, "user") {
			t.Fatalf("ValidateIDFormat(%q) = false", id)
		}
	}
}

func TestValidateIDFormat(t *testing.T) {
	tests := []struct {
		id     string
		prefix string
		want   bool
	}{
		{"user_abc123", "user", true},
		{"user_", "user", false},
		{"ord_x-y_z", "ord", true},
		{"user_abc!", "user", false},
		{"wrong_abc", "user", false},
		{"userabc", "user", false},
	}
	for _, tt := range tests {
		if got := ValidateIDFormat(tt.id, tt.prefix); got != tt.want {
			t.Errorf("ValidateIDFormat(%q, %q) = %v, want %v", tt.id, tt.prefix, got, tt.want)
		}
	}
}
