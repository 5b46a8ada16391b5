package model

// SheetRole identifies the three fixed-role sheets of a workbook.
type SheetRole string

const (
	RoleIdentity SheetRole = "identity" // INFORMACION
	RoleComments SheetRole = "comments" // COMENTARIOS
	RolePayroll  SheetRole = "payroll"  // NOMINA
)

// SheetInfo describes a sheet as found in the uploaded workbook.
type SheetInfo struct {
	Name     string `json:"name"`
	Position int    `json:"position"` // 1-based workbook position
	RowCount int    `json:"rowCount"`
}
