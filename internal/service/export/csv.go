// Package export serializes already-computed display tables for download.
// No business logic lives here: values arrive reconciled and aggregated.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"sicet/internal/model"
	"sicet/internal/service/report"
	"sicet/internal/util"
)

// payrollHeader is the payroll display table's column set and order.
var payrollHeader = []string{
	"CEDULA", "NOMBRE", "SALARIO_BASE", "CONTRIBUCION_EMPR",
	"CONTRIBUCION_EMPL", "APORTE_ARL", "SALARIO_BRUTO", "SALARIO_REAL",
}

// PayrollCSV serializes the payroll display table as delimited text with a
// UTF-8 byte-order marker so spreadsheet applications pick up the encoding.
// names maps a cedula to its display name (fallback-join rule).
func PayrollCSV(records []model.PayrollRecord, names func(string) string) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(buf)
	if err := w.Write(payrollHeader); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			r.Cedula,
			names(r.Cedula),
			util.FormatCurrency(r.BaseSalary),
			util.FormatCurrency(r.EmployerContribution),
			util.FormatCurrency(r.EmployeeContribution),
			util.FormatCurrency(r.ARLContribution),
			util.FormatCurrency(r.GrossSalary),
			util.FormatCurrency(r.RealSalary),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// PivotXLSX writes the overtime pivot to a workbook with bold header and
// total rows.
func PivotXLSX(p report.PivotTable, sheetName string) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)

	headers := append([]string{"EMPLEADO"}, p.Classifications...)
	headers = append(headers, "TOTAL")
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(sheetName, 1, 1, boldStyle)

	for i, row := range p.Rows {
		r := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), row.Name)
		for j, v := range row.Cells {
			cell, _ := excelize.CoordinatesToCellName(j+2, r)
			f.SetCellValue(sheetName, cell, v)
		}
		cell, _ := excelize.CoordinatesToCellName(len(p.Classifications)+2, r)
		f.SetCellValue(sheetName, cell, row.Total)
	}

	totalRow := len(p.Rows) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalRow), "TOTAL")
	for j, v := range p.TotalRow {
		cell, _ := excelize.CoordinatesToCellName(j+2, totalRow)
		f.SetCellValue(sheetName, cell, v)
	}
	cell, _ := excelize.CoordinatesToCellName(len(p.Classifications)+2, totalRow)
	f.SetCellValue(sheetName, cell, p.GrandTotal)
	f.SetRowStyle(sheetName, totalRow, totalRow, boldStyle)

	f.SetColWidth(sheetName, "A", "A", 30)

	return f, nil
}
