package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"employeedir/src/core/domain"
	"employeedir/src/core/ports"
	"employeedir/src/infra/db"
)

var _ ports.DirectoryRepository = (*SQLiteRepository)(nil)

// SQLiteRepository implements DirectoryRepository on an embedded SQLite database.
// Hire dates are stored as YYYY-MM-DD text.
type SQLiteRepository struct {
	store *db.SQLite
	log   *slog.Logger
}

// NewSQLiteRepository constructs a repository backed by SQLite.
func NewSQLiteRepository(store *db.SQLite, log *slog.Logger) *SQLiteRepository {
	return &SQLiteRepository{
		store: store,
		log:   log,
	}
}

func (r *SQLiteRepository) Health(ctx context.Context) error {
	return r.store.Health(ctx)
}

func isSQLiteForeignKeyViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	// Without extended result codes only the primary code is reported.
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "FOREIGN KEY")
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Departments

func (r *SQLiteRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.store.DB.QueryContext(ctx, `SELECT id, name FROM departments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]domain.Department, 0)
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// Employees

const sqliteEmployeeSelect = `
	SELECT e.id, e.first_name, e.last_name, e.hire_date, e.phone, e.address, e.department_id,
	       d.id, d.name
	FROM employees e
	JOIN departments d ON d.id = e.department_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteEmployee(row rowScanner) (*domain.Employee, error) {
	var e domain.Employee
	var d domain.Department
	var hireDate string
	if err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &hireDate, &e.Phone, &e.Address, &e.DepartmentID,
		&d.ID, &d.Name,
	); err != nil {
		return nil, err
	}
	parsed, err := time.Parse(domain.DateLayout, hireDate)
	if err != nil {
		return nil, fmt.Errorf("employee %d has malformed hire_date %q: %w", e.ID, hireDate, err)
	}
	e.HireDate = parsed
	e.Department = &d
	return &e, nil
}

func (r *SQLiteRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.store.DB.QueryContext(ctx, sqliteEmployeeSelect+` ORDER BY e.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		e, err := scanSQLiteEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

func (r *SQLiteRepository) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	return r.getEmployee(ctx, r.store.DB, id)
}

func (r *SQLiteRepository) getEmployee(ctx context.Context, q queryer, id int64) (*domain.Employee, error) {
	e, err := scanSQLiteEmployee(q.QueryRowContext(ctx, sqliteEmployeeSelect+` WHERE e.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("employee")
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLiteRepository) CreateEmployee(ctx context.Context, in domain.Employee) (*domain.Employee, error) {
	const q = `
		INSERT INTO employees (first_name, last_name, hire_date, phone, address, department_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	var created *domain.Employee
	err := r.store.InTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, q,
			in.FirstName, in.LastName, in.HireDate.Format(domain.DateLayout), in.Phone, in.Address, in.DepartmentID,
		)
		if err != nil {
			return r.writeError(err, in.DepartmentID)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		created, err = r.getEmployee(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *SQLiteRepository) UpdateEmployee(ctx context.Context, in domain.Employee) (*domain.Employee, error) {
	const q = `
		UPDATE employees
		SET first_name = ?, last_name = ?, hire_date = ?, phone = ?, address = ?, department_id = ?
		WHERE id = ?
	`
	var updated *domain.Employee
	err := r.store.InTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, q,
			in.FirstName, in.LastName, in.HireDate.Format(domain.DateLayout), in.Phone, in.Address, in.DepartmentID,
			in.ID,
		)
		if err != nil {
			return r.writeError(err, in.DepartmentID)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.NewNotFoundError("employee")
		}
		updated, err = r.getEmployee(ctx, tx, in.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *SQLiteRepository) DeleteEmployee(ctx context.Context, id int64) error {
	res, err := r.store.DB.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		r.log.Debug("delete matched no employee", "employee_id", id)
	}
	return nil
}

func (r *SQLiteRepository) writeError(err error, departmentID int64) error {
	if isSQLiteForeignKeyViolation(err) {
		r.log.Warn("employee write references missing department", "department_id", departmentID)
		return domain.NewReferentialIntegrityError(fmt.Sprintf("department %d does not exist", departmentID))
	}
	return err
}
