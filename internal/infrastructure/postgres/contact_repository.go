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

var _ repository.ContactRepository = (*ContactRepo)(nil)

// emails and phones persist as JSONB; pgx encodes/decodes the slices
// through encoding/json.
const contactColumns = `id, first_name, last_name, company_id, company_name,
	emails, phones, job_title, department,
	street, city, state, zip_code, country, notes, tags,
	created_by_id, created_by_name, created_at, updated_at`

// ContactRepo ContactRepository adapter (usable with pool or tx).
type ContactRepo struct {
	q Querier
}

// NewContactRepository builds the adapter.
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

// Create persists a new contact.
func (r *ContactRepo) Create(ct *entity.Contact) error {
	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	companyID, companyName := refFields(ct.CompanyRef)
	cbID, cbName := refFields(ct.CreatedBy)
	_, err := r.q.Exec(context.Background(), query,
		ct.ID, ct.FirstName, ct.LastName, companyID, companyName,
		ct.Emails, ct.Phones, ct.JobTitle, ct.Department,
		ct.Address.Street, ct.Address.City, ct.Address.State, ct.Address.ZipCode, ct.Address.Country,
		ct.Notes, ct.Tags, cbID, cbName, ct.CreatedAt, ct.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByID fetches a contact by ID; nil when absent.
func (r *ContactRepo) GetByID(id string) (*entity.Contact, error) {
	return r.getOne(`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
}

// GetByEmail fetches the contact carrying the given email in any entry.
func (r *ContactRepo) GetByEmail(email string) (*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts
		WHERE emails @> jsonb_build_array(jsonb_build_object('email', $1::text)) LIMIT 1`
	return r.getOne(query, email)
}

func (r *ContactRepo) getOne(query string, arg any) (*entity.Contact, error) {
	row := r.q.QueryRow(context.Background(), query, arg)
	ct, err := scanContact(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return ct, nil
}

// List pages contacts matching the query; also returns the total count.
func (r *ContactRepo) List(q repository.ListQuery) ([]*entity.Contact, int, error) {
	where := ` WHERE ($1 = '' OR first_name ILIKE $2 OR last_name ILIKE $2 OR company_name ILIKE $2)
		AND (cardinality($3::text[]) = 0 OR tags @> $3::text[])`
	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}

	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM contacts`+where, q.Search, likePattern(q.Search), tags,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	rows, err := r.q.Query(context.Background(),
		`SELECT `+contactColumns+` FROM contacts`+where+` ORDER BY last_name, first_name LIMIT $4 OFFSET $5`,
		q.Search, likePattern(q.Search), tags, q.Limit, q.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contact
	for rows.Next() {
		ct, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, ct)
	}
	return list, total, rows.Err()
}

// All returns every contact (export).
func (r *ContactRepo) All() ([]*entity.Contact, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+contactColumns+` FROM contacts ORDER BY last_name, first_name`)
	if err != nil {
		return nil, fmt.Errorf("all contacts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contact
	for rows.Next() {
		ct, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, ct)
	}
	return list, rows.Err()
}

// Update rewrites the mutable fields of a contact.
func (r *ContactRepo) Update(ct *entity.Contact) error {
	query := `
		UPDATE contacts SET first_name = $2, last_name = $3, company_id = $4, company_name = $5,
			emails = $6, phones = $7, job_title = $8, department = $9,
			street = $10, city = $11, state = $12, zip_code = $13, country = $14,
			notes = $15, tags = $16, updated_at = $17
		WHERE id = $1`
	companyID, companyName := refFields(ct.CompanyRef)
	_, err := r.q.Exec(context.Background(), query,
		ct.ID, ct.FirstName, ct.LastName, companyID, companyName,
		ct.Emails, ct.Phones, ct.JobTitle, ct.Department,
		ct.Address.Street, ct.Address.City, ct.Address.State, ct.Address.ZipCode, ct.Address.Country,
		ct.Notes, ct.Tags, ct.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// Delete removes a contact by ID.
func (r *ContactRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

func scanContact(row pgx.Row) (*entity.Contact, error) {
	var ct entity.Contact
	var companyID, companyName, cbID, cbName *string
	err := row.Scan(
		&ct.ID, &ct.FirstName, &ct.LastName, &companyID, &companyName,
		&ct.Emails, &ct.Phones, &ct.JobTitle, &ct.Department,
		&ct.Address.Street, &ct.Address.City, &ct.Address.State, &ct.Address.ZipCode, &ct.Address.Country,
		&ct.Notes, &ct.Tags, &cbID, &cbName, &ct.CreatedAt, &ct.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	ct.CompanyRef = buildRef(companyID, companyName)
	ct.CreatedBy = buildRef(cbID, cbName)
	return &ct, nil
}
