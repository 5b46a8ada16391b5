package model

// Dataset is the reconciled output of one workbook ingestion. It is built
// once per upload and never mutated afterwards; a new upload replaces the
// whole dataset. Accessors return the backing slices, callers must not
// modify them.
type Dataset struct {
	ID string `json:"id"`

	employees   []Employee
	employeeIx  map[string]int
	comments    []Comment
	payroll     []PayrollRecord
	payrollIx   map[string]int
	overtime    []OvertimeEntry
	months      []string
	identityCol []string
}

// NewDataset indexes the collections by cedula. Duplicate keys follow
// last-write-wins, matching upstream sheet behavior.
func NewDataset(id string, employees []Employee, comments []Comment, payroll []PayrollRecord, overtime []OvertimeEntry, months, identityColumns []string) *Dataset {
	d := &Dataset{
		ID:          id,
		employees:   employees,
		employeeIx:  make(map[string]int, len(employees)),
		comments:    comments,
		payroll:     payroll,
		payrollIx:   make(map[string]int, len(payroll)),
		overtime:    overtime,
		months:      months,
		identityCol: identityColumns,
	}
	for i, e := range employees {
		d.employeeIx[e.Cedula] = i
	}
	for i, p := range payroll {
		d.payrollIx[p.Cedula] = i
	}
	return d
}

// Employees returns the roster in identity-sheet order.
func (d *Dataset) Employees() []Employee {
	return d.employees
}

// EmployeeByKey looks up one employee by cedula.
func (d *Dataset) EmployeeByKey(cedula string) (Employee, bool) {
	if i, ok := d.employeeIx[cedula]; ok {
		return d.employees[i], true
	}
	return Employee{}, false
}

// Comments returns the enriched comment collection.
func (d *Dataset) Comments() []Comment {
	return d.comments
}

// Payroll returns the payroll records in sheet order.
func (d *Dataset) Payroll() []PayrollRecord {
	return d.payroll
}

// PayrollByKey looks up one payroll record by cedula.
func (d *Dataset) PayrollByKey(cedula string) (PayrollRecord, bool) {
	if i, ok := d.payrollIx[cedula]; ok {
		return d.payroll[i], true
	}
	return PayrollRecord{}, false
}

// Overtime returns the concatenated long-format overtime collection.
func (d *Dataset) Overtime() []OvertimeEntry {
	return d.overtime
}

// MonthLabels returns the recognized monthly sheet names in discovery order.
func (d *Dataset) MonthLabels() []string {
	return d.months
}

// IdentityColumns returns the identity sheet's header order, used to render
// the passthrough attributes in their original order.
func (d *Dataset) IdentityColumns() []string {
	return d.identityCol
}

// DisplayName resolves a cedula to the employee name, falling back to the
// raw cedula when no employee matches. Never returns an empty string for a
// non-empty key.
func (d *Dataset) DisplayName(cedula string) string {
	if e, ok := d.EmployeeByKey(cedula); ok && e.Name != "" {
		return e.Name
	}
	return cedula
}
