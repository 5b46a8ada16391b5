package parser

import (
	"errors"
	"strings"
	"testing"

	"sicet/internal/model"
)

func testRules() ClassifyRules {
	return ClassifyRules{
		IdentitySheet:   "INFORMACION",
		CommentsSheet:   "COMENTARIOS",
		PayrollSheet:    "NOMINA",
		PeriodToken:     "2025",
		MinMonthlySheet: 7,
	}
}

func TestClassifyRolesAndMonthly(t *testing.T) {
	names := []string{
		"Portada", "INFORMACION", "COMENTARIOS", "NOMINA", "Notas", "Plantilla",
		"ENERO 2025", "FEBRERO 2025", "Resumen",
	}

	c, err := Classify(names, testRules())
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}

	if got := c.Roles[model.RoleIdentity]; got != "INFORMACION" {
		t.Fatalf("identity sheet = %q, want INFORMACION", got)
	}
	if got := c.Roles[model.RoleComments]; got != "COMENTARIOS" {
		t.Fatalf("comments sheet = %q, want COMENTARIOS", got)
	}
	if got := c.Roles[model.RolePayroll]; got != "NOMINA" {
		t.Fatalf("payroll sheet = %q, want NOMINA", got)
	}

	want := []string{"ENERO 2025", "FEBRERO 2025"}
	if len(c.Monthly) != len(want) {
		t.Fatalf("monthly = %v, want %v", c.Monthly, want)
	}
	for i := range want {
		if c.Monthly[i] != want[i] {
			t.Fatalf("monthly[%d] = %q, want %q", i, c.Monthly[i], want[i])
		}
	}
}

func TestClassifyRoleNamesTolerateCaseAndWhitespace(t *testing.T) {
	names := []string{
		"x1", "x2", "x3", "x4", "x5", "x6",
		"  informacion ", "Comentarios", "nomina", "JULIO 2025",
	}

	c, err := Classify(names, testRules())
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if got := c.Roles[model.RoleIdentity]; got != "  informacion " {
		t.Fatalf("identity sheet = %q, want original spelling preserved", got)
	}
	if len(c.Monthly) != 1 || c.Monthly[0] != "JULIO 2025" {
		t.Fatalf("monthly = %v, want [JULIO 2025]", c.Monthly)
	}
}

func TestClassifyMissingRoleSheetIsFatal(t *testing.T) {
	names := []string{"INFORMACION", "NOMINA", "ENERO 2025"}

	_, err := Classify(names, testRules())
	if err == nil {
		t.Fatal("expected error for missing comments sheet")
	}
	if !errors.Is(err, ErrMissingSheet) {
		t.Fatalf("error = %v, want ErrMissingSheet", err)
	}
	if !strings.Contains(err.Error(), "comments") {
		t.Fatalf("error %q does not name the missing role", err)
	}
}

func TestClassifyPositionThreshold(t *testing.T) {
	// "MARZO 2025" sits at position 2, below the threshold; it never
	// qualifies even though the token matches.
	names := []string{
		"Portada", "MARZO 2025", "INFORMACION", "COMENTARIOS", "NOMINA",
		"Relleno", "ABRIL 2025",
	}

	c, err := Classify(names, testRules())
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if len(c.Monthly) != 1 || c.Monthly[0] != "ABRIL 2025" {
		t.Fatalf("monthly = %v, want [ABRIL 2025]", c.Monthly)
	}
}

func TestClassifySheetsWithoutTokenIgnored(t *testing.T) {
	names := []string{
		"INFORMACION", "COMENTARIOS", "NOMINA", "x4", "x5", "x6",
		"ENERO 2024", "Resumen anual", "ENERO 2025",
	}

	c, err := Classify(names, testRules())
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if len(c.Monthly) != 1 || c.Monthly[0] != "ENERO 2025" {
		t.Fatalf("monthly = %v, want [ENERO 2025]", c.Monthly)
	}
}

func TestClassifyRoleSheetNeverMonthly(t *testing.T) {
	// A role sheet whose name carries the token keeps its role and never
	// double-counts as monthly.
	rules := testRules()
	rules.PayrollSheet = "NOMINA 2025"
	rules.MinMonthlySheet = 1

	names := []string{"INFORMACION", "COMENTARIOS", "NOMINA 2025", "ENERO 2025"}

	c, err := Classify(names, rules)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if got := c.Roles[model.RolePayroll]; got != "NOMINA 2025" {
		t.Fatalf("payroll sheet = %q, want NOMINA 2025", got)
	}
	if len(c.Monthly) != 1 || c.Monthly[0] != "ENERO 2025" {
		t.Fatalf("monthly = %v, want [ENERO 2025]", c.Monthly)
	}
}
