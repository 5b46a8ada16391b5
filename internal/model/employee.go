package model

// Employee is one row of the identity sheet, keyed by cedula.
type Employee struct {
	Cedula string `json:"cedula"`
	Name   string `json:"name"`
	Phone  string `json:"phone,omitempty"`

	// Attributes keeps every original identity-sheet column for detail views.
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Comment is one free-text observation from the comments sheet, enriched
// with the matching payroll figures (zero when the cedula has no payroll row).
type Comment struct {
	Cedula        string  `json:"cedula"`
	Text          string  `json:"text"`
	OvertimeHours float64 `json:"overtimeHours"`
	TotalToPay    float64 `json:"totalToPay"`
}

// PayrollRecord is one row of the payroll sheet. Every numeric field is
// present after normalization; unresolved columns and bad cells read as 0.
type PayrollRecord struct {
	Cedula               string  `json:"cedula"`
	BaseSalary           float64 `json:"baseSalary"`
	EmployerContribution float64 `json:"employerContribution"`
	EmployeeContribution float64 `json:"employeeContribution"`
	ARLContribution      float64 `json:"arlContribution"`
	RealSalary           float64 `json:"realSalary"`
	GrossSalary          float64 `json:"grossSalary"`
	OvertimeHours        float64 `json:"overtimeHours"`
	TotalToPay           float64 `json:"totalToPay"`
}

// OvertimeEntry is one long-format row produced by reshaping a monthly
// sheet: strictly positive hours for one (cedula, month, classification).
type OvertimeEntry struct {
	Cedula         string  `json:"cedula"`
	Month          string  `json:"month"`
	Classification string  `json:"classification"`
	Hours          float64 `json:"hours"`
}
