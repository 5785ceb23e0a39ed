package domain

import "time"

// DateLayout is the calendar-date format used for hire dates on the wire and in storage.
const DateLayout = "2006-01-02"

// Department is shared reference data. It is seeded at initialization and
// never created, changed or removed through the application.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Employee is a directory entry.
type Employee struct {
	ID           int64
	FirstName    string
	LastName     string
	HireDate     time.Time
	Phone        string
	Address      string
	DepartmentID int64

	// Department is resolved on read. It may be nil on input and is ignored by writes.
	Department *Department
}

// WithDepartment returns a copy of e whose Department snapshot is replaced by d.
func (e Employee) WithDepartment(d Department) Employee {
	e.Department = &d
	return e
}

// DateOnly returns midnight UTC of t's calendar date, so dates from different
// locations compare by day only.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
