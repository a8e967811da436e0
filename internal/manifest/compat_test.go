package manifest

import (
	"strings"
	"testing"
)

func TestCheckCompatibility(t *testing.T) {
	tests := []struct {
		name     string
		requires string
		version  string
		wantErr  string
	}{
		{"no constraint", "", "0.1.0", ""},
		{"satisfied", ">= 0.3.0", "0.4.1", ""},
		{"satisfied with v prefix", "^1.0", "v1.2.0", ""},
		{"not satisfied", ">= 2.0.0", "1.9.0", "requires inix >= 2.0.0"},
		{"dev build skips check", ">= 2.0.0", "dev", ""},
		{"invalid constraint", "not a constraint", "1.0.0", "invalid requires constraint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &TemplateManifest{Name: "rust", Requires: tt.requires}
			err := CheckCompatibility(m, tt.version)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestCheckCompatibility_NilManifest(t *testing.T) {
	if err := CheckCompatibility(nil, "1.0.0"); err != nil {
		t.Errorf("nil manifest should pass, got %v", err)
	}
}

func TestEnforcesRequires(t *testing.T) {
	tests := map[string]bool{
		"1.2.3":  true,
		"v0.4.0": true,
		"dev":    false,
		"":       false,
	}
	for version, want := range tests {
		if got := EnforcesRequires(version); got != want {
			t.Errorf("EnforcesRequires(%q) = %v, want %v", version, got, want)
		}
	}
}
