package dto

import "employeedir/src/core/domain"

// DepartmentResponse is the wire form of a department.
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func DepartmentFromDomain(d domain.Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name}
}

func DepartmentsFromDomain(ds []domain.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, DepartmentFromDomain(d))
	}
	return out
}

// EmployeeRequest is the body of create and update calls.
// Department is accepted so clients can echo a fetched record back, but it
// is never written; only DepartmentID is.
type EmployeeRequest struct {
	ID           int64               `json:"id"`
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	HireDate     Date                `json:"hireDate"`
	Phone        string              `json:"phone"`
	Address      string              `json:"address"`
	DepartmentID int64               `json:"departmentId"`
	Department   *DepartmentResponse `json:"department,omitempty"`
}

// ToDomain maps the request onto an Employee. The Department snapshot is dropped.
func (r EmployeeRequest) ToDomain() domain.Employee {
	return domain.Employee{
		ID:           r.ID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		HireDate:     r.HireDate.Time,
		Phone:        r.Phone,
		Address:      r.Address,
		DepartmentID: r.DepartmentID,
	}
}

// EmployeeResponse is the wire form of an employee with its department resolved.
type EmployeeResponse struct {
	ID           int64               `json:"id"`
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	HireDate     Date                `json:"hireDate"`
	Phone        string              `json:"phone"`
	Address      string              `json:"address"`
	DepartmentID int64               `json:"departmentId"`
	Department   *DepartmentResponse `json:"department"`
}

func EmployeeFromDomain(e domain.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		HireDate:     NewDate(e.HireDate),
		Phone:        e.Phone,
		Address:      e.Address,
		DepartmentID: e.DepartmentID,
	}
	if e.Department != nil {
		d := DepartmentFromDomain(*e.Department)
		resp.Department = &d
	}
	return resp
}

func EmployeesFromDomain(es []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(es))
	for _, e := range es {
		out = append(out, EmployeeFromDomain(e))
	}
	return out
}
