package parser

import (
	"testing"

	"sicet/internal/model"
)

func TestReshapeMeltsWideToLong(t *testing.T) {
	table := Table{
		Name:    "ENERO 2025",
		Headers: []string{"CEDULA", "NOMBRE", "HORA EXTRA DIURNA", "RECARGO NOCTURNO"},
		Rows: [][]string{
			{"A", "Ana", "5", "0"},
			{"B", "Beto", "0", "3"},
		},
	}

	entries, skip := Reshape(table, "ENERO 2025", DefaultMeltRule())
	if skip != "" {
		t.Fatalf("unexpected skip reason %q", skip)
	}

	want := []model.OvertimeEntry{
		{Cedula: "A", Month: "ENERO 2025", Classification: "HORA EXTRA DIURNA", Hours: 5},
		{Cedula: "B", Month: "ENERO 2025", Classification: "RECARGO NOCTURNO", Hours: 3},
	}
	if len(entries) != len(want) {
		t.Fatalf("entries = %v, want %v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Fatalf("entries[%d] = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestReshapeSkipsSheetWithoutIdentity(t *testing.T) {
	table := Table{
		Name:    "ENERO 2025",
		Headers: []string{"NOMBRE", "CARGO", "HORA EXTRA DIURNA"},
		Rows:    [][]string{{"Ana", "Tec", "5"}},
	}

	entries, skip := Reshape(table, "ENERO 2025", DefaultMeltRule())
	if skip != "no identity column" {
		t.Fatalf("skip = %q, want %q", skip, "no identity column")
	}
	if entries != nil {
		t.Fatalf("entries = %v, want nil", entries)
	}
}

func TestReshapeSkipsSheetWithoutClassifications(t *testing.T) {
	table := Table{
		Name:    "ENERO 2025",
		Headers: []string{"CEDULA", "NOMBRE", "CARGO"},
		Rows:    [][]string{{"A", "Ana", "Tec"}},
	}

	_, skip := Reshape(table, "ENERO 2025", DefaultMeltRule())
	if skip != "no classification columns" {
		t.Fatalf("skip = %q, want %q", skip, "no classification columns")
	}
}

func TestReshapeIgnoresLeadingColumnsAndBadCells(t *testing.T) {
	// A marker header in the leading columns is identity territory and never
	// melts; non-numeric and non-positive cells drop silently.
	table := Table{
		Name:    "FEBRERO 2025",
		Headers: []string{"CEDULA", "HORA EXTRA REF", "HORA EXTRA DIURNA", "RECARGO FESTIVO"},
		Rows: [][]string{
			{"A", "9", "2,5", "-1"},
			{"B", "9", "n/a", "0"},
			{"", "9", "4", "4"},
		},
	}

	entries, skip := Reshape(table, " FEBRERO 2025 ", DefaultMeltRule())
	if skip != "" {
		t.Fatalf("unexpected skip reason %q", skip)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %v, want exactly one", entries)
	}
	got := entries[0]
	if got.Cedula != "A" || got.Classification != "HORA EXTRA DIURNA" || got.Hours != 2.5 {
		t.Fatalf("entry = %+v", got)
	}
	if got.Month != "FEBRERO 2025" {
		t.Fatalf("month = %q, want trimmed label", got.Month)
	}
}

func TestClassificationColumns(t *testing.T) {
	rule := DefaultMeltRule()
	headers := []string{"CEDULA", "NOMBRE", "HORA EXTRA DIURNA", "CARGO", "RECARGO NOCTURNO"}

	cols := rule.ClassificationColumns(headers)
	want := []int{2, 4}
	if len(cols) != len(want) {
		t.Fatalf("cols = %v, want %v", cols, want)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("cols[%d] = %d, want %d", i, cols[i], want[i])
		}
	}
}
