package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/entity"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, name, email, password_hash, role, status, created_at, updated_at`

// EmployeeRepo EmployeeRepository adapter (usable with pool or tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository builds the adapter.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persists a new employee.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.Email, e.PasswordHash, e.Role, e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID fetches an employee by ID; nil when absent.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.getOne(`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

// GetByEmail fetches an employee by email; nil when absent.
func (r *EmployeeRepo) GetByEmail(email string) (*entity.Employee, error) {
	return r.getOne(`SELECT `+employeeColumns+` FROM employees WHERE email = $1`, email)
}

func (r *EmployeeRepo) getOne(query string, arg any) (*entity.Employee, error) {
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&e.ID, &e.Name, &e.Email, &e.PasswordHash, &e.Role, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// List pages employees matching a search filter; also returns the total.
func (r *EmployeeRepo) List(q repository.ListQuery) ([]*entity.Employee, int, error) {
	where := ` WHERE ($1 = '' OR name ILIKE $2 OR email ILIKE $2)`

	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM employees`+where, q.Search, likePattern(q.Search),
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	rows, err := r.q.Query(context.Background(),
		`SELECT `+employeeColumns+` FROM employees`+where+` ORDER BY name LIMIT $3 OFFSET $4`,
		q.Search, likePattern(q.Search), q.Limit, q.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.PasswordHash, &e.Role, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, total, rows.Err()
}

// Update rewrites the mutable fields of an employee.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	query := `
		UPDATE employees SET name = $2, email = $3, password_hash = $4, role = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Name, e.Email, e.PasswordHash, e.Role, e.Status, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete removes an employee by ID.
func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
