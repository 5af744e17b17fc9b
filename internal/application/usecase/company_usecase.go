package usecase

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/dto"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/exporter"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/grid"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/importer"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/entity"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/repository"
)

// CompanyUseCase use cases for accounts: CRUD, grid listing, bulk CSV
// import/export and outbound email.
type CompanyUseCase struct {
	repo   repository.CompanyRepository
	mailer Mailer
}

// NewCompanyUseCase builds the use case. mailer may be nil when SMTP is
// not configured; SendEmail then fails with a clear message.
func NewCompanyUseCase(repo repository.CompanyRepository, mailer Mailer) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, mailer: mailer}
}

// Create creates a company. Name is the only required field.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest, createdBy *entity.Ref) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	company := &entity.Company{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Website:     in.Website,
		Industry:    in.Industry,
		Address:     toAddress(in.Address),
		Tags:        in.Tags,
		Description: in.Description,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID returns a company or ErrNotFound.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// Update replaces the mutable fields of a company.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	company.Name = in.Name
	company.Email = in.Email
	company.Phone = in.Phone
	company.Website = in.Website
	company.Industry = in.Industry
	company.Address = toAddress(in.Address)
	company.Tags = in.Tags
	company.Description = in.Description
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete removes a company by ID.
func (uc *CompanyUseCase) Delete(id string) error {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List pages companies matching search/tags filters.
func (uc *CompanyUseCase) List(page dto.PageRequest, search string, tags []string) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(repository.ListQuery{
		Search: search,
		Tags:   tags,
		Limit:  page.Limit,
		Offset: (page.Page - 1) * page.Limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Companies:  out,
		Pagination: dto.Paginate(page.Page, page.Limit, total),
	}, nil
}

// Grid pages companies as display rows.
func (uc *CompanyUseCase) Grid(page dto.PageRequest, search string, tags []string) (*dto.CompanyGridResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(repository.ListQuery{
		Search: search,
		Tags:   tags,
		Limit:  page.Limit,
		Offset: (page.Page - 1) * page.Limit,
	})
	if err != nil {
		return nil, err
	}
	rows := make([]dto.CompanyGridRow, 0, len(list))
	for _, c := range list {
		rows = append(rows, grid.CompanyRow(c))
	}
	return &dto.CompanyGridResponse{
		Rows:       rows,
		Pagination: dto.Paginate(page.Page, page.Limit, total),
	}, nil
}

// Import ingests a companies CSV. Rows missing required fields or
// duplicating an existing name are skipped and counted; valid rows are
// persisted. The created count never hides the error list.
func (uc *CompanyUseCase) Import(r io.Reader, createdBy *entity.Ref) (*dto.ImportResult, error) {
	rows, rowErrors, err := importer.Parse(r, importer.Companies)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	result := &dto.ImportResult{Errors: rowErrors}
	for _, row := range rows {
		existing, _ := uc.repo.GetByName(row.Get("name"))
		if existing != nil {
			result.Duplicates++
			continue
		}
		now := time.Now()
		company := &entity.Company{
			ID:       uuid.New().String(),
			Name:     row.Get("name"),
			Email:    row.Get("email"),
			Phone:    row.Get("phone"),
			Website:  row.Get("website"),
			Industry: row.Get("industry"),
			Address: entity.Address{
				Street:  row.Get("street"),
				City:    row.Get("city"),
				State:   row.Get("state"),
				ZipCode: row.Get("zipCode"),
				Country: row.Get("country"),
			},
			Tags:      importer.SplitTags(row.Get("tags")),
			CreatedBy: createdBy,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.Create(company); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", row.Line, err))
			continue
		}
		result.Created++
	}
	return result, nil
}

// Export writes every company as CSV.
func (uc *CompanyUseCase) Export(w io.Writer) error {
	companies, err := uc.repo.All()
	if err != nil {
		return err
	}
	return exporter.Companies(w, companies)
}

// SendEmail sends a message to the company's address on file.
func (uc *CompanyUseCase) SendEmail(id string, in dto.SendEmailRequest) (*dto.SendEmailResponse, error) {
	if in.FromEmail == "" || in.Subject == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if company.Email == "" {
		return nil, fmt.Errorf("%w: company has no email address", domain.ErrInvalidInput)
	}
	if uc.mailer == nil {
		return nil, fmt.Errorf("outbound mail is not configured")
	}
	if err := uc.mailer.Send(in.FromEmail, company.Email, in.Subject, in.Message); err != nil {
		return nil, fmt.Errorf("send email: %w", err)
	}
	return &dto.SendEmailResponse{Success: true, Message: "Email sent to " + company.Email}, nil
}

func toAddress(a dto.AddressDTO) entity.Address {
	return entity.Address{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

func toAddressDTO(a entity.Address) dto.AddressDTO {
	return dto.AddressDTO{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

func toRefDTO(r *entity.Ref) *dto.RefDTO {
	if r == nil {
		return nil
	}
	return &dto.RefDTO{ID: r.ID, Name: r.Name}
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Website:     c.Website,
		Industry:    c.Industry,
		Address:     toAddressDTO(c.Address),
		Tags:        tags,
		Description: c.Description,
		CreatedBy:   toRefDTO(c.CreatedBy),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
