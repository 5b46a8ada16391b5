package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrColumnNotFound aborts ingestion when a mandatory column cannot be
// resolved on a role sheet.
var ErrColumnNotFound = errors.New("column not found")

// NormalizeOptions declares what a role sheet must and may contain.
type NormalizeOptions struct {
	IdentityPatterns []string

	// NamePatterns resolves the display-name column; RequireName makes an
	// unresolved name fatal (identity sheet only).
	NamePatterns []string
	RequireName  bool

	Extra []CanonicalColumn
}

// NormalizedTable is a role sheet with canonical columns resolved and rows
// lacking an identity key removed. Unresolved optional columns are simply
// absent from Columns; their values read as empty / 0.
type NormalizedTable struct {
	Name        string
	Headers     []string
	Rows        [][]string
	Identity    int
	NameCol     int // -1 when absent
	Columns     map[string]int
	DroppedRows int
	Warnings    []string
}

// Normalize resolves a role sheet's columns and filters its rows. Identity
// resolution failure is always fatal; name resolution is fatal only when
// required; extra columns are fatal only when declared Required.
func Normalize(t Table, opts NormalizeOptions) (*NormalizedTable, error) {
	identity := FindColumn(t.Headers, opts.IdentityPatterns)
	if identity < 0 {
		return nil, fmt.Errorf("%w: identity column on sheet %q", ErrColumnNotFound, t.Name)
	}

	nameCol := -1
	if len(opts.NamePatterns) > 0 {
		nameCol = FindColumn(t.Headers, opts.NamePatterns)
		if nameCol < 0 && opts.RequireName {
			return nil, fmt.Errorf("%w: name column on sheet %q", ErrColumnNotFound, t.Name)
		}
	}

	headers := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		headers[i] = strings.TrimSpace(h)
	}

	nt := &NormalizedTable{
		Name:     t.Name,
		Headers:  headers,
		Identity: identity,
		NameCol:  nameCol,
		Columns:  make(map[string]int, len(opts.Extra)),
	}

	for _, col := range opts.Extra {
		idx := FindColumn(t.Headers, col.Patterns)
		if idx < 0 {
			if col.Required {
				return nil, fmt.Errorf("%w: %s column on sheet %q", ErrColumnNotFound, col.Name, t.Name)
			}
			if col.Numeric {
				nt.Warnings = append(nt.Warnings, fmt.Sprintf("no column matches %s, values default to 0", col.Name))
			} else {
				nt.Warnings = append(nt.Warnings, fmt.Sprintf("no column matches %s, field omitted", col.Name))
			}
			continue
		}
		nt.Columns[col.Name] = idx
	}

	for _, row := range t.Rows {
		if Cell(row, identity) == "" {
			nt.DroppedRows++
			continue
		}
		nt.Rows = append(nt.Rows, row)
	}

	return nt, nil
}

// Key returns a row's identity value.
func (n *NormalizedTable) Key(row []string) string {
	return Cell(row, n.Identity)
}

// DisplayName returns a row's display-name value, empty when the column is
// absent.
func (n *NormalizedTable) DisplayName(row []string) string {
	return Cell(row, n.NameCol)
}

// Value returns a row's raw value for a canonical column, empty when the
// column was not resolved.
func (n *NormalizedTable) Value(row []string, canonical string) string {
	idx, ok := n.Columns[canonical]
	if !ok {
		return ""
	}
	return Cell(row, idx)
}

// Number returns a row's coerced numeric value for a canonical column,
// 0 when the column was not resolved or the cell is not numeric.
func (n *NormalizedTable) Number(row []string, canonical string) float64 {
	return CoerceNumber(n.Value(row, canonical))
}
