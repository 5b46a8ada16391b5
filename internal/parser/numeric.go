package parser

import (
	"strconv"
	"strings"
)

// ParseNumber coerces a loosely formatted workbook cell to a float64.
// The payroll sheets mix es-CO and plain formats: "1.000.000",
// "1.000.000,50", "12,5", "$ 350.000", "3.5". Returns ok=false for empty
// or non-numeric cells.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}

	dot := strings.LastIndex(s, ".")
	comma := strings.LastIndex(s, ",")
	switch {
	case dot >= 0 && comma >= 0:
		// Both present: the rightmost separator is the decimal mark.
		if comma > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case comma >= 0:
		// A single comma with one or two trailing digits is a decimal
		// mark; anything else is grouping.
		if strings.Count(s, ",") == 1 && len(s)-comma-1 <= 2 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case dot >= 0:
		// Repeated dots, or a single dot followed by exactly three
		// digits, read as thousands grouping ("1.000.000", "1.000").
		if strings.Count(s, ".") > 1 || len(s)-dot-1 == 3 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// CoerceNumber applies the best-effort policy: any cell that fails to parse
// reads as 0, never as an error.
func CoerceNumber(s string) float64 {
	f, _ := ParseNumber(s)
	return f
}

// Cell returns the trimmed cell at idx, tolerating short rows and
// unresolved (-1) columns.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
