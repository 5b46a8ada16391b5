package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != 20315 {
		t.Fatalf("port = %d, want 20315", cfg.Server.Port)
	}
	if cfg.Ingest.IdentitySheet != "INFORMACION" || cfg.Ingest.PayrollSheet != "NOMINA" {
		t.Fatalf("role sheets = %+v", cfg.Ingest)
	}
	if cfg.Ingest.PeriodToken != "2025" {
		t.Fatalf("period token = %q, want 2025", cfg.Ingest.PeriodToken)
	}
	if cfg.Ingest.MinMonthlySheet != 7 {
		t.Fatalf("min monthly sheet = %d, want 7", cfg.Ingest.MinMonthlySheet)
	}
}

func TestIsPortSpecifiedInToml(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want bool
	}{
		{"specified", "[server]\nport = 8080\n", true},
		{"other keys only", "[server]\ndev_mode = true\n", false},
		{"no server table", "[ingest]\nperiod_token = \"2025\"\n", false},
		{"invalid toml", "not toml", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPortSpecifiedInToml([]byte(tt.toml)); got != tt.want {
				t.Fatalf("isPortSpecifiedInToml = %v, want %v", got, tt.want)
			}
		})
	}
}
