package model

import "time"

// SheetResult is the per-sheet outcome of one ingestion pass.
type SheetResult struct {
	SheetName   string    `json:"sheetName"`
	Role        SheetRole `json:"role,omitempty"` // empty for monthly sheets
	Status      string    `json:"status"`         // imported / skipped
	Rows        int       `json:"rows"`
	DroppedRows int       `json:"droppedRows"`
	Warnings    []string  `json:"warnings,omitempty"`
}

// IngestReport records what one ingestion produced and every degraded
// condition it tolerated. Fatal conditions never reach a report; they abort
// the pipeline as errors.
type IngestReport struct {
	Filename        string        `json:"filename"`
	TotalSheets     int           `json:"totalSheets"`
	Inventory       []SheetInfo   `json:"inventory"`
	MonthlySheets   int           `json:"monthlySheets"`
	Employees       int           `json:"employees"`
	Comments        int           `json:"comments"`
	PayrollRecords  int           `json:"payrollRecords"`
	OvertimeEntries int           `json:"overtimeEntries"`
	Duration        time.Duration `json:"duration"`
	Sheets          []SheetResult `json:"sheets"`
}

// Warn appends a warning to the matching sheet result, creating it when the
// sheet has not been reported yet.
func (r *IngestReport) Warn(sheetName string, msg string) {
	for i := range r.Sheets {
		if r.Sheets[i].SheetName == sheetName {
			r.Sheets[i].Warnings = append(r.Sheets[i].Warnings, msg)
			return
		}
	}
	r.Sheets = append(r.Sheets, SheetResult{
		SheetName: sheetName,
		Status:    "imported",
		Warnings:  []string{msg},
	})
}
