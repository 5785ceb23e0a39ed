package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"employeedir/src/core/domain"
	"employeedir/src/core/ports"
	"employeedir/src/infra/db"
)

var _ ports.DirectoryRepository = (*PostgresRepository)(nil)

// PostgresRepository implements DirectoryRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// Departments

func (r *PostgresRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	const q = `SELECT id, name FROM departments ORDER BY id`

	rows, err := r.pool.Query(ctx, q)
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

const pgEmployeeSelect = `
	SELECT e.id, e.first_name, e.last_name, e.hire_date, e.phone, e.address, e.department_id,
	       d.id, d.name
	FROM employees e
	JOIN departments d ON d.id = e.department_id
`

func scanPgEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	var d domain.Department
	if err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.HireDate, &e.Phone, &e.Address, &e.DepartmentID,
		&d.ID, &d.Name,
	); err != nil {
		return nil, err
	}
	e.HireDate = domain.DateOnly(e.HireDate)
	e.Department = &d
	return &e, nil
}

func (r *PostgresRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.pool.Query(ctx, pgEmployeeSelect+` ORDER BY e.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		e, err := scanPgEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

func (r *PostgresRepository) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	e, err := scanPgEmployee(r.pool.QueryRow(ctx, pgEmployeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("employee")
		}
		return nil, err
	}
	return e, nil
}

func (r *PostgresRepository) CreateEmployee(ctx context.Context, in domain.Employee) (*domain.Employee, error) {
	const q = `
		WITH e AS (
			INSERT INTO employees (first_name, last_name, hire_date, phone, address, department_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, first_name, last_name, hire_date, phone, address, department_id
		)
		SELECT e.id, e.first_name, e.last_name, e.hire_date, e.phone, e.address, e.department_id,
		       d.id, d.name
		FROM e
		JOIN departments d ON d.id = e.department_id
	`
	e, err := scanPgEmployee(r.pool.QueryRow(ctx, q,
		in.FirstName, in.LastName, domain.DateOnly(in.HireDate), in.Phone, in.Address, in.DepartmentID,
	))
	if err != nil {
		return nil, r.writeError(err, in.DepartmentID)
	}
	return e, nil
}

func (r *PostgresRepository) UpdateEmployee(ctx context.Context, in domain.Employee) (*domain.Employee, error) {
	const q = `
		WITH e AS (
			UPDATE employees
			SET first_name = $2, last_name = $3, hire_date = $4, phone = $5, address = $6, department_id = $7
			WHERE id = $1
			RETURNING id, first_name, last_name, hire_date, phone, address, department_id
		)
		SELECT e.id, e.first_name, e.last_name, e.hire_date, e.phone, e.address, e.department_id,
		       d.id, d.name
		FROM e
		JOIN departments d ON d.id = e.department_id
	`
	e, err := scanPgEmployee(r.pool.QueryRow(ctx, q,
		in.ID, in.FirstName, in.LastName, domain.DateOnly(in.HireDate), in.Phone, in.Address, in.DepartmentID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("employee")
		}
		return nil, r.writeError(err, in.DepartmentID)
	}
	return e, nil
}

func (r *PostgresRepository) DeleteEmployee(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		r.log.Debug("delete matched no employee", "employee_id", id)
	}
	return nil
}

func (r *PostgresRepository) writeError(err error, departmentID int64) error {
	if isForeignKeyViolation(err) {
		r.log.Warn("employee write references missing department", "department_id", departmentID)
		return domain.NewReferentialIntegrityError(fmt.Sprintf("department %d does not exist", departmentID))
	}
	return err
}
