package employee

import (
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/validator"
)

type AddEmployeeRequest struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Designation  string  `json:"designation"`
	EmployeeType string  `json:"employee_type"`
	Location     string  `json:"location"`
	Project      *string `json:"project,omitempty"`
}

func (r *AddEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required (max 64 characters)"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !Designation(r.Designation).Valid() {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "unknown designation"})
	}
	if !EmployeeType(r.EmployeeType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "employee_type", Message: "employee_type must be company or supplier"})
	}
	if !Location(r.Location).Valid() {
		errs = append(errs, validator.ValidationError{Field: "location", Message: "location must be kuwait or saudi"})
	}
	if r.Project != nil && validator.IsEmpty(*r.Project) {
		errs = append(errs, validator.ValidationError{Field: "project", Message: "project must not be blank when present"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Designation      string  `json:"designation"`
	DesignationLabel string  `json:"designation_label"`
	EmployeeType     string  `json:"employee_type"`
	Location         string  `json:"location"`
	Project          *string `json:"project,omitempty"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		Name:             e.Name,
		Designation:      string(e.Designation),
		DesignationLabel: e.Designation.Label(),
		EmployeeType:     string(e.Type),
		Location:         string(e.Location),
		Project:          e.Project,
	}
}

// WorkingStatusResponse reports an employee's status for one day; days with
// no record are presumed absent.
type WorkingStatusResponse struct {
	EmployeeID    string `json:"employee_id"`
	Date          string `json:"date"`
	WorkingStatus string `json:"working_status"`
}
