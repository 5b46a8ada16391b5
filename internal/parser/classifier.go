package parser

import (
	"errors"
	"fmt"
	"strings"

	"sicet/internal/model"
)

// ErrMissingSheet aborts ingestion when a required role sheet is absent.
var ErrMissingSheet = errors.New("required sheet not found")

// ClassifyRules configures sheet discovery. Role names match exactly after
// trimming and upper-casing; monthly sheets are discovered by period token
// and workbook position.
type ClassifyRules struct {
	IdentitySheet string
	CommentsSheet string
	PayrollSheet  string

	// PeriodToken must appear in a normalized sheet name for the sheet to
	// qualify as monthly ("2025" for the current reporting year).
	PeriodToken string

	// MinMonthlySheet is the 1-based workbook position of the first sheet
	// that can be monthly; leading administrative sheets never qualify.
	MinMonthlySheet int
}

// Classification is the outcome of sheet discovery: the role map plus the
// monthly sheets in workbook order. That order is the canonical month order
// for everything downstream.
type Classification struct {
	Roles   map[model.SheetRole]string
	Monthly []string
}

// NormalizeSheetName trims and upper-cases a sheet name for matching.
func NormalizeSheetName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Classify locates the three fixed-role sheets and the qualifying monthly
// sheets. A missing role sheet is fatal and the error names the role.
func Classify(sheetNames []string, rules ClassifyRules) (Classification, error) {
	normalized := make([]string, len(sheetNames))
	for i, n := range sheetNames {
		normalized[i] = NormalizeSheetName(n)
	}

	wanted := []struct {
		role model.SheetRole
		name string
	}{
		{model.RoleIdentity, NormalizeSheetName(rules.IdentitySheet)},
		{model.RoleComments, NormalizeSheetName(rules.CommentsSheet)},
		{model.RolePayroll, NormalizeSheetName(rules.PayrollSheet)},
	}

	roles := make(map[model.SheetRole]string, len(wanted))
	roleNames := make(map[string]bool, len(wanted))
	for _, w := range wanted {
		idx := -1
		for i, n := range normalized {
			if n == w.name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return Classification{}, fmt.Errorf("%w: %q (%s)", ErrMissingSheet, w.name, w.role)
		}
		roles[w.role] = sheetNames[idx]
		roleNames[w.name] = true
	}

	token := strings.ToUpper(strings.TrimSpace(rules.PeriodToken))
	var monthly []string
	for i, n := range normalized {
		if roleNames[n] {
			continue
		}
		if token == "" || !strings.Contains(n, token) {
			continue
		}
		if i+1 < rules.MinMonthlySheet {
			continue
		}
		monthly = append(monthly, sheetNames[i])
	}

	return Classification{Roles: roles, Monthly: monthly}, nil
}
