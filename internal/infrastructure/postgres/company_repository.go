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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, email, phone, website, industry,
	street, city, state, zip_code, country, tags, description,
	created_by_id, created_by_name, created_at, updated_at`

// CompanyRepo CompanyRepository adapter (usable with pool or tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the adapter. Pass a pool or tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persists a new company.
func (r *CompanyRepo) Create(c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	cbID, cbName := refFields(c.CreatedBy)
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.Phone, c.Website, c.Industry,
		c.Address.Street, c.Address.City, c.Address.State, c.Address.ZipCode, c.Address.Country,
		c.Tags, c.Description, cbID, cbName, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID fetches a company by ID; nil when absent.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.getOne(`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

// GetByName fetches a company by exact name; nil when absent.
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	return r.getOne(`SELECT `+companyColumns+` FROM companies WHERE name = $1`, name)
}

func (r *CompanyRepo) getOne(query string, arg any) (*entity.Company, error) {
	row := r.q.QueryRow(context.Background(), query, arg)
	c, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// List pages companies matching the query; also returns the total count.
func (r *CompanyRepo) List(q repository.ListQuery) ([]*entity.Company, int, error) {
	where := ` WHERE ($1 = '' OR name ILIKE $2 OR email ILIKE $2 OR industry ILIKE $2)
		AND (cardinality($3::text[]) = 0 OR tags @> $3::text[])`
	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}

	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM companies`+where, q.Search, likePattern(q.Search), tags,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count companies: %w", err)
	}

	rows, err := r.q.Query(context.Background(),
		`SELECT `+companyColumns+` FROM companies`+where+` ORDER BY name LIMIT $4 OFFSET $5`,
		q.Search, likePattern(q.Search), tags, q.Limit, q.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// All returns every company ordered by name (export).
func (r *CompanyRepo) All() ([]*entity.Company, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+companyColumns+` FROM companies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("all companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update rewrites the mutable fields of a company.
func (r *CompanyRepo) Update(c *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, email = $3, phone = $4, website = $5, industry = $6,
			street = $7, city = $8, state = $9, zip_code = $10, country = $11,
			tags = $12, description = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Email, c.Phone, c.Website, c.Industry,
		c.Address.Street, c.Address.City, c.Address.State, c.Address.ZipCode, c.Address.Country,
		c.Tags, c.Description, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Delete removes a company by ID.
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	var cbID, cbName *string
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Website, &c.Industry,
		&c.Address.Street, &c.Address.City, &c.Address.State, &c.Address.ZipCode, &c.Address.Country,
		&c.Tags, &c.Description, &cbID, &cbName, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.CreatedBy = buildRef(cbID, cbName)
	return &c, nil
}

func refFields(ref *entity.Ref) (id, name *string) {
	if ref == nil {
		return nil, nil
	}
	return &ref.ID, &ref.Name
}

func buildRef(id, name *string) *entity.Ref {
	if id == nil {
		return nil
	}
	ref := &entity.Ref{ID: *id}
	if name != nil {
		ref.Name = *name
	}
	return ref
}
