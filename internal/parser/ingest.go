package parser

import (
	"fmt"
	"io"
	"strings"
	"time"

	"sicet/internal/model"
)

// Options configures one ingestion pass.
type Options struct {
	Rules ClassifyRules
	Melt  MeltRule
}

// Ingest runs the full pipeline over one uploaded workbook: sheet
// classification, role-sheet normalization, monthly reshaping and
// reconciliation. Fatal conditions (missing role sheet, unresolved
// mandatory column) return an error and no dataset. Degraded conditions
// never stop the pipeline; they are recorded on the report and the
// affected values default.
func Ingest(r io.Reader, filename string, opts Options) (*model.Dataset, *model.IngestReport, error) {
	start := time.Now()

	wb, err := OpenWorkbook(r)
	if err != nil {
		return nil, nil, err
	}
	defer wb.Close()

	names := wb.SheetNames()
	classified, err := Classify(names, opts.Rules)
	if err != nil {
		return nil, nil, err
	}

	report := &model.IngestReport{
		Filename:    filename,
		TotalSheets: len(names),
		Inventory:   wb.Sheets(),
	}

	employees, identityColumns, err := parseEmployees(wb, classified.Roles[model.RoleIdentity], report)
	if err != nil {
		return nil, nil, err
	}

	comments, err := parseComments(wb, classified.Roles[model.RoleComments], report)
	if err != nil {
		return nil, nil, err
	}

	payroll, err := parsePayroll(wb, classified.Roles[model.RolePayroll], report)
	if err != nil {
		return nil, nil, err
	}

	var overtime []model.OvertimeEntry
	var months []string
	for _, name := range classified.Monthly {
		t, err := wb.Table(name)
		if err != nil {
			report.Sheets = append(report.Sheets, model.SheetResult{
				SheetName: name,
				Status:    "skipped",
				Warnings:  []string{"unreadable sheet: " + err.Error()},
			})
			continue
		}
		// A recognized sheet keeps its month label even when reshaping
		// skips it; the label set mirrors the classifier, not the melt.
		months = append(months, strings.TrimSpace(name))
		report.MonthlySheets++
		entries, skipReason := Reshape(t, name, opts.Melt)
		if skipReason != "" {
			report.Sheets = append(report.Sheets, model.SheetResult{
				SheetName: name,
				Status:    "skipped",
				Warnings:  []string{skipReason},
			})
			continue
		}
		overtime = append(overtime, entries...)
		report.Sheets = append(report.Sheets, model.SheetResult{
			SheetName: name,
			Status:    "imported",
			Rows:      len(entries),
		})
	}

	dataset := Reconcile(wb.ID(), employees, comments, payroll, overtime, months, identityColumns)

	if n := unmatchedComments(comments, payroll); n > 0 {
		report.Warn(classified.Roles[model.RoleComments],
			fmt.Sprintf("%d comments have no payroll match", n))
	}

	report.Employees = len(employees)
	report.Comments = len(comments)
	report.PayrollRecords = len(payroll)
	report.OvertimeEntries = len(overtime)
	report.Duration = time.Since(start)

	return dataset, report, nil
}

func unmatchedComments(comments []model.Comment, payroll []model.PayrollRecord) int {
	keys := make(map[string]bool, len(payroll))
	for _, p := range payroll {
		keys[p.Cedula] = true
	}
	n := 0
	for _, cm := range comments {
		if !keys[cm.Cedula] {
			n++
		}
	}
	return n
}

// Reconcile joins the normalized collections into the final dataset.
// Comments take their payroll figures by left join on cedula; unmatched
// comments keep zeros. Employee rows are never mutated by the join.
func Reconcile(id string, employees []model.Employee, comments []model.Comment, payroll []model.PayrollRecord, overtime []model.OvertimeEntry, months, identityColumns []string) *model.Dataset {
	byKey := make(map[string]model.PayrollRecord, len(payroll))
	for _, p := range payroll {
		byKey[p.Cedula] = p
	}
	for i := range comments {
		if p, ok := byKey[comments[i].Cedula]; ok {
			comments[i].OvertimeHours = p.OvertimeHours
			comments[i].TotalToPay = p.TotalToPay
		}
	}
	return model.NewDataset(id, employees, comments, payroll, overtime, months, identityColumns)
}

func parseEmployees(wb *Workbook, sheetName string, report *model.IngestReport) ([]model.Employee, []string, error) {
	t, err := wb.Table(sheetName)
	if err != nil {
		return nil, nil, err
	}

	nt, err := Normalize(t, NormalizeOptions{
		IdentityPatterns: EmployeeIdentityPatterns,
		NamePatterns:     NamePatterns,
		RequireName:      true,
		Extra: []CanonicalColumn{
			{Name: ColPhone, Patterns: PhonePatterns},
		},
	})
	if err != nil {
		return nil, nil, err
	}

	employees := make([]model.Employee, 0, len(nt.Rows))
	for _, row := range nt.Rows {
		attrs := make(map[string]string, len(nt.Headers))
		for i, h := range nt.Headers {
			if h == "" {
				continue
			}
			attrs[h] = Cell(row, i)
		}
		employees = append(employees, model.Employee{
			Cedula:     nt.Key(row),
			Name:       nt.DisplayName(row),
			Phone:      nt.Value(row, ColPhone),
			Attributes: attrs,
		})
	}

	report.Sheets = append(report.Sheets, model.SheetResult{
		SheetName:   sheetName,
		Role:        model.RoleIdentity,
		Status:      "imported",
		Rows:        len(employees),
		DroppedRows: nt.DroppedRows,
		Warnings:    nt.Warnings,
	})

	return employees, nt.Headers, nil
}

func parseComments(wb *Workbook, sheetName string, report *model.IngestReport) ([]model.Comment, error) {
	t, err := wb.Table(sheetName)
	if err != nil {
		return nil, err
	}

	nt, err := Normalize(t, NormalizeOptions{
		IdentityPatterns: IdentityPatterns,
		Extra: []CanonicalColumn{
			{Name: ColComment, Patterns: CommentPatterns, Required: true},
		},
	})
	if err != nil {
		return nil, err
	}

	comments := make([]model.Comment, 0, len(nt.Rows))
	for _, row := range nt.Rows {
		comments = append(comments, model.Comment{
			Cedula: nt.Key(row),
			Text:   nt.Value(row, ColComment),
		})
	}

	report.Sheets = append(report.Sheets, model.SheetResult{
		SheetName:   sheetName,
		Role:        model.RoleComments,
		Status:      "imported",
		Rows:        len(comments),
		DroppedRows: nt.DroppedRows,
		Warnings:    nt.Warnings,
	})

	return comments, nil
}

func parsePayroll(wb *Workbook, sheetName string, report *model.IngestReport) ([]model.PayrollRecord, error) {
	t, err := wb.Table(sheetName)
	if err != nil {
		return nil, err
	}

	nt, err := Normalize(t, NormalizeOptions{
		IdentityPatterns: IdentityPatterns,
		Extra:            PayrollColumns,
	})
	if err != nil {
		return nil, err
	}

	records := make([]model.PayrollRecord, 0, len(nt.Rows))
	for _, row := range nt.Rows {
		records = append(records, model.PayrollRecord{
			Cedula:               nt.Key(row),
			BaseSalary:           nt.Number(row, ColBaseSalary),
			EmployerContribution: nt.Number(row, ColEmployerContribution),
			EmployeeContribution: nt.Number(row, ColEmployeeContribution),
			ARLContribution:      nt.Number(row, ColARLContribution),
			RealSalary:           nt.Number(row, ColRealSalary),
			GrossSalary:          nt.Number(row, ColGrossSalary),
			OvertimeHours:        nt.Number(row, ColOvertimeHours),
			TotalToPay:           nt.Number(row, ColTotalToPay),
		})
	}

	report.Sheets = append(report.Sheets, model.SheetResult{
		SheetName:   sheetName,
		Role:        model.RolePayroll,
		Status:      "imported",
		Rows:        len(records),
		DroppedRows: nt.DroppedRows,
		Warnings:    nt.Warnings,
	})

	return records, nil
}
