package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"sicet/internal/model"
	"sicet/internal/service/report"
)

func TestPayrollCSV(t *testing.T) {
	records := []model.PayrollRecord{
		{Cedula: "100", BaseSalary: 1000000, RealSalary: 950000, GrossSalary: 1100000},
		{Cedula: "200", BaseSalary: 2000000, RealSalary: 1900000},
	}
	names := func(cedula string) string {
		if cedula == "100" {
			return "Ana"
		}
		return cedula
	}

	data, err := PayrollCSV(records, names)
	if err != nil {
		t.Fatalf("PayrollCSV returned error: %v", err)
	}

	bom := []byte{0xEF, 0xBB, 0xBF}
	if !bytes.HasPrefix(data, bom) {
		t.Fatal("output does not start with a UTF-8 BOM")
	}

	rows, err := csv.NewReader(bytes.NewReader(data[len(bom):])).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header plus 2", len(rows))
	}

	header := rows[0]
	if header[0] != "CEDULA" || header[1] != "NOMBRE" || header[2] != "SALARIO_BASE" {
		t.Fatalf("header = %v", header)
	}

	ana := rows[1]
	if ana[0] != "100" || ana[1] != "Ana" {
		t.Fatalf("row = %v", ana)
	}
	if ana[2] != "$ 1.000.000" {
		t.Fatalf("base salary cell = %q, want currency rendition", ana[2])
	}

	// Fallback display name for a cedula without a roster match.
	if rows[2][1] != "200" {
		t.Fatalf("fallback name = %q, want raw cedula", rows[2][1])
	}
}

func TestPivotXLSX(t *testing.T) {
	p := report.PivotTable{
		Classifications: []string{"HORA EXTRA DIURNA", "RECARGO NOCTURNO"},
		Rows: []report.PivotRow{
			{Name: "Ana", Cells: []float64{5, 2}, Total: 7},
			{Name: "Beto", Cells: []float64{3, 0}, Total: 3},
		},
		TotalRow:   []float64{8, 2},
		GrandTotal: 10,
	}

	f, err := PivotXLSX(p, "Horas Extra")
	if err != nil {
		t.Fatalf("PivotXLSX returned error: %v", err)
	}
	defer f.Close()

	get := func(cell string) string {
		t.Helper()
		v, err := f.GetCellValue("Horas Extra", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		return v
	}

	if get("A1") != "EMPLEADO" || get("B1") != "HORA EXTRA DIURNA" || get("D1") != "TOTAL" {
		t.Fatalf("header row = %q %q %q", get("A1"), get("B1"), get("D1"))
	}
	if get("A2") != "Ana" || get("B2") != "5" || get("D2") != "7" {
		t.Fatalf("first data row = %q %q %q", get("A2"), get("B2"), get("D2"))
	}
	if get("A4") != "TOTAL" || get("B4") != "8" || get("D4") != "10" {
		t.Fatalf("total row = %q %q %q", get("A4"), get("B4"), get("D4"))
	}
}
