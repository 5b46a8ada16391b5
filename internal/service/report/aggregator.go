// Package report derives summary statistics and cross-tabulations from a
// reconciled dataset. Everything here is pure, read-only computation; the
// dataset is never mutated.
package report

import (
	"sort"

	"sicet/internal/model"
)

// PayrollSummary holds the column-wise sums over the payroll table.
type PayrollSummary struct {
	BaseSalary           float64 `json:"baseSalary"`
	EmployerContribution float64 `json:"employerContribution"`
	EmployeeContribution float64 `json:"employeeContribution"`
	ARLContribution      float64 `json:"arlContribution"`
	RealSalary           float64 `json:"realSalary"`
	GrossSalary          float64 `json:"grossSalary"`
	OvertimeHours        float64 `json:"overtimeHours"`
	TotalToPay           float64 `json:"totalToPay"`
}

// PayrollTotals sums every canonical numeric field over the payroll table.
func PayrollTotals(records []model.PayrollRecord) PayrollSummary {
	var s PayrollSummary
	for _, r := range records {
		s.BaseSalary += r.BaseSalary
		s.EmployerContribution += r.EmployerContribution
		s.EmployeeContribution += r.EmployeeContribution
		s.ARLContribution += r.ARLContribution
		s.RealSalary += r.RealSalary
		s.GrossSalary += r.GrossSalary
		s.OvertimeHours += r.OvertimeHours
		s.TotalToPay += r.TotalToPay
	}
	return s
}

// OvertimeSummary mirrors the overview cards: total hours plus distinct
// classification and month counts.
type OvertimeSummary struct {
	TotalHours      float64 `json:"totalHours"`
	Classifications int     `json:"classifications"`
	Months          int     `json:"months"`
}

// Summarize computes the overtime overview over a set of entries.
func Summarize(entries []model.OvertimeEntry) OvertimeSummary {
	classifications := make(map[string]bool)
	months := make(map[string]bool)
	var total float64
	for _, e := range entries {
		total += e.Hours
		classifications[e.Classification] = true
		months[e.Month] = true
	}
	return OvertimeSummary{
		TotalHours:      total,
		Classifications: len(classifications),
		Months:          len(months),
	}
}

// RankedEmployee is one row of the top-overtime ranking.
type RankedEmployee struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

// TopN groups entries by display name, sums hours and returns the n largest
// in descending order, ties kept in first-seen grouping order. names maps a
// cedula to its display name (fallback-join rule).
func TopN(entries []model.OvertimeEntry, n int, names func(string) string) []RankedEmployee {
	totals := make(map[string]float64)
	var order []string
	for _, e := range entries {
		name := names(e.Cedula)
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += e.Hours
	}

	ranked := make([]RankedEmployee, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, RankedEmployee{Name: name, Hours: totals[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Hours > ranked[j].Hours
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// PivotRow is one employee row of the pivot: per-classification sums plus
// the row total.
type PivotRow struct {
	Name  string    `json:"name"`
	Cells []float64 `json:"cells"`
	Total float64   `json:"total"`
}

// PivotTable is the employee x classification cross-tabulation with a TOTAL
// row and TOTAL column appended.
type PivotTable struct {
	Classifications []string   `json:"classifications"`
	Rows            []PivotRow `json:"rows"`
	TotalRow        []float64  `json:"totalRow"`
	GrandTotal      float64    `json:"grandTotal"`
}

// Pivot cross-tabulates hours by display name and classification. Absent
// combinations stay 0. The grand total equals the sum of all entry hours
// whatever the grouping order; row and column orders follow first
// appearance in the entry set.
func Pivot(entries []model.OvertimeEntry, names func(string) string) PivotTable {
	var rowOrder, colOrder []string
	rowIx := make(map[string]int)
	colIx := make(map[string]int)
	sums := make(map[[2]int]float64)

	for _, e := range entries {
		name := names(e.Cedula)
		ri, ok := rowIx[name]
		if !ok {
			ri = len(rowOrder)
			rowIx[name] = ri
			rowOrder = append(rowOrder, name)
		}
		ci, ok := colIx[e.Classification]
		if !ok {
			ci = len(colOrder)
			colIx[e.Classification] = ci
			colOrder = append(colOrder, e.Classification)
		}
		sums[[2]int{ri, ci}] += e.Hours
	}

	p := PivotTable{
		Classifications: colOrder,
		Rows:            make([]PivotRow, len(rowOrder)),
		TotalRow:        make([]float64, len(colOrder)),
	}
	for ri, name := range rowOrder {
		row := PivotRow{Name: name, Cells: make([]float64, len(colOrder))}
		for ci := range colOrder {
			v := sums[[2]int{ri, ci}]
			row.Cells[ci] = v
			row.Total += v
			p.TotalRow[ci] += v
			p.GrandTotal += v
		}
		p.Rows[ri] = row
	}
	return p
}

// FilterMonth keeps the entries of one month label; an empty label keeps
// everything.
func FilterMonth(entries []model.OvertimeEntry, month string) []model.OvertimeEntry {
	if month == "" {
		return entries
	}
	var out []model.OvertimeEntry
	for _, e := range entries {
		if e.Month == month {
			out = append(out, e)
		}
	}
	return out
}
