package employee

// EmployeeType distinguishes payroll treatment in reports: normal/overtime
// hour breakdown is only computed for company employees.
type EmployeeType string

const (
	TypeCompany  EmployeeType = "company"
	TypeSupplier EmployeeType = "supplier"
)

func (t EmployeeType) Valid() bool {
	return t == TypeCompany || t == TypeSupplier
}

// Location is the work site an employee is rostered at.
type Location string

const (
	LocationKuwait Location = "kuwait"
	LocationSaudi  Location = "saudi"
)

func (l Location) Valid() bool {
	return l == LocationKuwait || l == LocationSaudi
}

// Employee is read-only reference data owned by the roster; the attendance
// core never mutates it.
type Employee struct {
	ID          string
	Name        string
	Designation Designation
	Type        EmployeeType
	Location    Location
	Project     *string
}
