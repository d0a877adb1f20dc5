package config

import (
	"testing"
)

func TestValidateAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.OutputDir != "Resultados" {
		t.Fatalf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.ReferenceDate != "2023/10/01" {
		t.Fatalf("ReferenceDate = %q", cfg.ReferenceDate)
	}
	if got := cfg.ReferenceDateValue().String(); got != "2023/10/01" {
		t.Fatalf("ReferenceDateValue = %q", got)
	}
}

func TestValidateKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	cfg := &Config{OutputDir: "out", ReferenceDate: "2024/01/15"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.OutputDir != "out" {
		t.Fatalf("OutputDir = %q", cfg.OutputDir)
	}
	if got := cfg.ReferenceDateValue().String(); got != "2024/01/15" {
		t.Fatalf("ReferenceDateValue = %q", got)
	}
}

func TestValidateRejectsBadDate(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"15/01/2024", "2024-01-15", "2024/13/01", "soon"} {
		cfg := &Config{ReferenceDate: raw}
		if err := cfg.Validate(); err == nil {
			t.Fatalf("Validate(%q): want error", raw)
		}
	}
}
