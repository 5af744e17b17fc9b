package usecase

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/dto"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/exporter"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/importer"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/entity"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/repository"
)

// Accepted closeDate layouts for deal imports.
var closeDateLayouts = []string{"2006-01-02", "01/02/2006", "2006/01/02"}

// DealUseCase use cases for deals: CRUD, bulk CSV import/export.
type DealUseCase struct {
	repo repository.DealRepository
}

// NewDealUseCase builds the use case.
func NewDealUseCase(repo repository.DealRepository) *DealUseCase {
	return &DealUseCase{repo: repo}
}

// Create creates a deal. Title, value and closeDate are required.
func (uc *DealUseCase) Create(in dto.CreateDealRequest, createdBy *entity.Ref) (*dto.DealResponse, error) {
	if in.Title == "" || in.CloseDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByTitle(in.Title)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	deal := &entity.Deal{
		ID:           uuid.New().String(),
		Title:        in.Title,
		LeadID:       in.LeadID,
		ContactEmail: in.ContactEmail,
		CompanyName:  in.CompanyName,
		Value:        in.Value,
		Currency:     defaultCurrency(in.Currency),
		Stage:        defaultStage(in.Stage),
		Probability:  in.Probability,
		CloseDate:    in.CloseDate,
		Description:  in.Description,
		Notes:        in.Notes,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(deal); err != nil {
		return nil, err
	}
	return toDealResponse(deal), nil
}

// GetByID returns a deal or ErrNotFound.
func (uc *DealUseCase) GetByID(id string) (*dto.DealResponse, error) {
	deal, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, domain.ErrNotFound
	}
	return toDealResponse(deal), nil
}

// List pages deals matching a search filter.
func (uc *DealUseCase) List(page dto.PageRequest, search string) (*dto.DealListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(repository.ListQuery{
		Search: search,
		Limit:  page.Limit,
		Offset: (page.Page - 1) * page.Limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DealResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDealResponse(d))
	}
	return &dto.DealListResponse{
		Deals:      out,
		Pagination: dto.Paginate(page.Page, page.Limit, total),
	}, nil
}

// Import ingests a deals CSV. value must parse as a decimal and
// closeDate as a date; rows that fail either are reported, not fatal.
func (uc *DealUseCase) Import(r io.Reader, createdBy *entity.Ref) (*dto.ImportResult, error) {
	rows, rowErrors, err := importer.Parse(r, importer.Deals)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	result := &dto.ImportResult{Errors: rowErrors}
	for _, row := range rows {
		value, err := decimal.NewFromString(row.Get("value"))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: invalid value %q", row.Line, row.Get("value")))
			continue
		}
		closeDate, err := parseCloseDate(row.Get("closeDate"))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: invalid closeDate %q", row.Line, row.Get("closeDate")))
			continue
		}
		existing, _ := uc.repo.GetByTitle(row.Get("title"))
		if existing != nil {
			result.Duplicates++
			continue
		}
		probability := 0
		if p := row.Get("probability"); p != "" {
			probability, _ = strconv.Atoi(p)
		}
		now := time.Now()
		deal := &entity.Deal{
			ID:           uuid.New().String(),
			Title:        row.Get("title"),
			LeadID:       row.Get("leadId"),
			ContactEmail: row.Get("contactEmail"),
			CompanyName:  row.Get("companyName"),
			Value:        value,
			Currency:     defaultCurrency(row.Get("currency")),
			Stage:        defaultStage(row.Get("stage")),
			Probability:  probability,
			CloseDate:    closeDate,
			Description:  row.Get("description"),
			Notes:        row.Get("notes"),
			CreatedBy:    createdBy,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.repo.Create(deal); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", row.Line, err))
			continue
		}
		result.Created++
	}
	return result, nil
}

// Export writes every deal as CSV.
func (uc *DealUseCase) Export(w io.Writer) error {
	deals, err := uc.repo.All()
	if err != nil {
		return err
	}
	return exporter.Deals(w, deals)
}

func parseCloseDate(s string) (time.Time, error) {
	for _, layout := range closeDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

func defaultCurrency(s string) string {
	if s == "" {
		return "USD"
	}
	return s
}

func defaultStage(s string) string {
	if s == "" {
		return entity.StageQualification
	}
	return s
}

func toDealResponse(d *entity.Deal) *dto.DealResponse {
	return &dto.DealResponse{
		ID:           d.ID,
		Title:        d.Title,
		LeadID:       d.LeadID,
		ContactEmail: d.ContactEmail,
		CompanyName:  d.CompanyName,
		Value:        d.Value,
		Currency:     d.Currency,
		Stage:        d.Stage,
		Probability:  d.Probability,
		CloseDate:    d.CloseDate,
		Description:  d.Description,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
