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

var _ repository.DealRepository = (*DealRepo)(nil)

const dealColumns = `id, title, lead_id, contact_email, company_name,
	value, currency, stage, probability, close_date, description, notes,
	created_by_id, created_by_name, created_at, updated_at`

// DealRepo DealRepository adapter (usable with pool or tx).
type DealRepo struct {
	q Querier
}

// NewDealRepository builds the adapter.
func NewDealRepository(q Querier) *DealRepo {
	return &DealRepo{q: q}
}

// Create persists a new deal. value maps to NUMERIC through the
// shopspring decimal codec registered on the pool.
func (r *DealRepo) Create(d *entity.Deal) error {
	query := `
		INSERT INTO deals (` + dealColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	cbID, cbName := refFields(d.CreatedBy)
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Title, d.LeadID, d.ContactEmail, d.CompanyName,
		d.Value, d.Currency, d.Stage, d.Probability, d.CloseDate, d.Description, d.Notes,
		cbID, cbName, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert deal: %w", err)
	}
	return nil
}

// GetByID fetches a deal by ID; nil when absent.
func (r *DealRepo) GetByID(id string) (*entity.Deal, error) {
	return r.getOne(`SELECT `+dealColumns+` FROM deals WHERE id = $1`, id)
}

// GetByTitle fetches a deal by exact title; nil when absent.
func (r *DealRepo) GetByTitle(title string) (*entity.Deal, error) {
	return r.getOne(`SELECT `+dealColumns+` FROM deals WHERE title = $1`, title)
}

func (r *DealRepo) getOne(query string, arg any) (*entity.Deal, error) {
	row := r.q.QueryRow(context.Background(), query, arg)
	d, err := scanDeal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deal: %w", err)
	}
	return d, nil
}

// List pages deals matching a search filter; also returns the total count.
func (r *DealRepo) List(q repository.ListQuery) ([]*entity.Deal, int, error) {
	where := ` WHERE ($1 = '' OR title ILIKE $2 OR company_name ILIKE $2)`

	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM deals`+where, q.Search, likePattern(q.Search),
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count deals: %w", err)
	}

	rows, err := r.q.Query(context.Background(),
		`SELECT `+dealColumns+` FROM deals`+where+` ORDER BY close_date, title LIMIT $3 OFFSET $4`,
		q.Search, likePattern(q.Search), q.Limit, q.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan deal: %w", err)
		}
		list = append(list, d)
	}
	return list, total, rows.Err()
}

// All returns every deal (export).
func (r *DealRepo) All() ([]*entity.Deal, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+dealColumns+` FROM deals ORDER BY close_date, title`)
	if err != nil {
		return nil, fmt.Errorf("all deals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Update rewrites the mutable fields of a deal.
func (r *DealRepo) Update(d *entity.Deal) error {
	query := `
		UPDATE deals SET title = $2, lead_id = $3, contact_email = $4, company_name = $5,
			value = $6, currency = $7, stage = $8, probability = $9, close_date = $10,
			description = $11, notes = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Title, d.LeadID, d.ContactEmail, d.CompanyName,
		d.Value, d.Currency, d.Stage, d.Probability, d.CloseDate,
		d.Description, d.Notes, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update deal: %w", err)
	}
	return nil
}

// Delete removes a deal by ID.
func (r *DealRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM deals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}
	return nil
}

func scanDeal(row pgx.Row) (*entity.Deal, error) {
	var d entity.Deal
	var cbID, cbName *string
	err := row.Scan(
		&d.ID, &d.Title, &d.LeadID, &d.ContactEmail, &d.CompanyName,
		&d.Value, &d.Currency, &d.Stage, &d.Probability, &d.CloseDate, &d.Description, &d.Notes,
		&cbID, &cbName, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.CreatedBy = buildRef(cbID, cbName)
	return &d, nil
}
