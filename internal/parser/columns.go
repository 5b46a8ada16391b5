package parser

import "strings"

// Header text in these workbooks drifts between months and authors, so
// canonical fields resolve by case-insensitive substring match against
// prioritized variant lists, never by equality. New variants are added to
// the tables below, not to the matching logic.
var (
	// EmployeeIdentityPatterns locates the cedula column on the identity sheet.
	EmployeeIdentityPatterns = []string{"CÉDULA", "CEDULA", "ID", "NÚMERO DE CONTACTO"}

	// IdentityPatterns locates the cedula column on every other sheet.
	IdentityPatterns = []string{"CÉDULA", "CEDULA", "ID"}

	NamePatterns  = []string{"NOMBRE", "TÉCNICO", "TECNICO", "EMPLEADO"}
	PhonePatterns = []string{"TELÉFONO", "TELEFONO", "CONTACTO"}

	CommentPatterns = []string{"COMENTARIOS", "OBSERVACIONES"}
)

// CanonicalColumn declares one canonical field: its stable name, the header
// variants that resolve to it and whether its values are coerced to numeric.
type CanonicalColumn struct {
	Name     string
	Patterns []string
	Numeric  bool
	Required bool
}

// PayrollColumns maps the payroll sheet's canonical fields to their header
// variants. None are required; an unresolved column zero-fills its field.
var PayrollColumns = []CanonicalColumn{
	{Name: ColBaseSalary, Patterns: []string{"SALARIO BASE"}, Numeric: true},
	{Name: ColEmployerContribution, Patterns: []string{"CONTRIBUCIONES EMPLEADOR", "CONTRIBUCIONES DEL EMPLEADOR"}, Numeric: true},
	{Name: ColEmployeeContribution, Patterns: []string{"CONTRIBUCIONES EMPLEADO", "CONTRIBUCIONES DEL EMPLEADO"}, Numeric: true},
	{Name: ColARLContribution, Patterns: []string{"APORTE ARL"}, Numeric: true},
	{Name: ColRealSalary, Patterns: []string{"SALARIO REAL"}, Numeric: true},
	{Name: ColGrossSalary, Patterns: []string{"SALARIO BRUTO"}, Numeric: true},
	{Name: ColOvertimeHours, Patterns: []string{"HORAS EXTRA"}, Numeric: true},
	{Name: ColTotalToPay, Patterns: []string{"TOTAL A PAGAR AL EMPLEADO"}, Numeric: true},
}

// Canonical field names shared by the normalizer and the reconciler.
const (
	ColBaseSalary           = "SALARIO_BASE"
	ColEmployerContribution = "CONTRIBUCION_EMPR"
	ColEmployeeContribution = "CONTRIBUCION_EMPL"
	ColARLContribution      = "APORTE_ARL"
	ColRealSalary           = "SALARIO_REAL"
	ColGrossSalary          = "SALARIO_BRUTO"
	ColOvertimeHours        = "HORAS_EXTRA_NOM"
	ColTotalToPay           = "TOTAL_PAGAR_NOM"
	ColComment              = "COMENTARIOS"
	ColPhone                = "TELEFONO"
)

// FindColumn returns the index of the first header whose upper-cased text
// contains any pattern, walking headers in sheet order and patterns in
// priority order per header. Returns -1 when nothing matches.
func FindColumn(headers []string, patterns []string) int {
	for i, h := range headers {
		u := strings.ToUpper(strings.TrimSpace(h))
		if u == "" {
			continue
		}
		for _, p := range patterns {
			if strings.Contains(u, p) {
				return i
			}
		}
	}
	return -1
}
