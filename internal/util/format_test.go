package util

import (
	"math"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$ 0"},
		{5, "$ 5"},
		{950, "$ 950"},
		{1000, "$ 1.000"},
		{1234567, "$ 1.234.567"},
		{1000000, "$ 1.000.000"},
		{1050000.75, "$ 1.050.000"},
		{-1234, "$ -1.234"},
		{math.NaN(), "$ 0"},
		{math.Inf(1), "$ 0"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Fatalf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	if got := FormatHours(12.5); got != "12.50 hrs" {
		t.Fatalf("FormatHours(12.5) = %q, want %q", got, "12.50 hrs")
	}
	if got := FormatHours(0); got != "0.00 hrs" {
		t.Fatalf("FormatHours(0) = %q, want %q", got, "0.00 hrs")
	}
}
