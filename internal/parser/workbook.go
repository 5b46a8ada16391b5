package parser

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"sicet/internal/model"
)

// Table is one sheet's rectangular data: a header row plus data rows.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Workbook wraps an uploaded spreadsheet for read-only access.
type Workbook struct {
	file *excelize.File
	id   string
}

// OpenWorkbook loads a workbook from a byte stream.
func OpenWorkbook(r io.Reader) (*Workbook, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	return &Workbook{file: file, id: uuid.New().String()}, nil
}

// ID returns the identifier assigned to this upload.
func (w *Workbook) ID() string {
	return w.id
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// Sheets lists the workbook's sheets with their positions and row counts.
func (w *Workbook) Sheets() []model.SheetInfo {
	names := w.file.GetSheetList()
	result := make([]model.SheetInfo, 0, len(names))
	for i, name := range names {
		rows, err := w.file.GetRows(name)
		if err != nil {
			continue
		}
		result = append(result, model.SheetInfo{
			Name:     name,
			Position: i + 1,
			RowCount: len(rows),
		})
	}
	return result
}

// Table reads one sheet as a header row plus data rows. An empty sheet
// yields an empty table, not an error.
func (w *Workbook) Table(name string) (Table, error) {
	rows, err := w.file.GetRows(name)
	if err != nil {
		return Table{}, err
	}
	t := Table{Name: name}
	if len(rows) > 0 {
		t.Headers = rows[0]
		t.Rows = rows[1:]
	}
	return t, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}
