package parser

import (
	"strings"

	"sicet/internal/model"
)

// MeltRule decides which wide columns of a monthly sheet are overtime
// classifications: the header must carry one of the markers and sit at or
// after MinColumn. Kept as data so the rule is testable against synthetic
// headers.
type MeltRule struct {
	// MinColumn is the first 0-based column index that may hold a
	// classification; the leading columns are identity and name.
	MinColumn int
	Patterns  []string
}

// DefaultMeltRule matches the workbook convention: classification columns
// start at the third column and carry an overtime or surcharge marker.
func DefaultMeltRule() MeltRule {
	return MeltRule{
		MinColumn: 2,
		Patterns:  []string{"HORA EXTRA", "RECARGO"},
	}
}

// ClassificationColumns returns the indexes of the headers the rule accepts.
func (r MeltRule) ClassificationColumns(headers []string) []int {
	var cols []int
	for i, h := range headers {
		if i < r.MinColumn {
			continue
		}
		u := strings.ToUpper(strings.TrimSpace(h))
		for _, p := range r.Patterns {
			if strings.Contains(u, p) {
				cols = append(cols, i)
				break
			}
		}
	}
	return cols
}

// Reshape melts one monthly sheet into long-format overtime entries, one
// per (row, classification column) pair with strictly positive hours. A
// sheet without an identity column or without classification columns is
// skipped, not fatal: skipReason is non-empty and no entries are produced.
func Reshape(t Table, monthLabel string, rule MeltRule) (entries []model.OvertimeEntry, skipReason string) {
	identity := FindColumn(t.Headers, IdentityPatterns)
	if identity < 0 {
		return nil, "no identity column"
	}

	cols := rule.ClassificationColumns(t.Headers)
	if len(cols) == 0 {
		return nil, "no classification columns"
	}

	month := strings.TrimSpace(monthLabel)
	for _, row := range t.Rows {
		key := Cell(row, identity)
		if key == "" {
			continue
		}
		for _, c := range cols {
			hours := CoerceNumber(Cell(row, c))
			if hours <= 0 {
				continue
			}
			entries = append(entries, model.OvertimeEntry{
				Cedula:         key,
				Month:          month,
				Classification: strings.TrimSpace(t.Headers[c]),
				Hours:          hours,
			})
		}
	}

	return entries, ""
}
