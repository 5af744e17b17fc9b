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

// ContactUseCase use cases for contacts: CRUD, grid listing, bulk CSV
// import/export and outbound email to the primary address.
type ContactUseCase struct {
	repo        repository.ContactRepository
	companyRepo repository.CompanyRepository
	mailer      Mailer
}

// NewContactUseCase builds the use case.
func NewContactUseCase(repo repository.ContactRepository, companyRepo repository.CompanyRepository, mailer Mailer) *ContactUseCase {
	return &ContactUseCase{repo: repo, companyRepo: companyRepo, mailer: mailer}
}

// Create creates a contact. First and last name are required, and at most
// one email and one phone entry may be flagged primary.
func (uc *ContactUseCase) Create(in dto.CreateContactRequest, createdBy *entity.Ref) (*dto.ContactResponse, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	emails, err := toEmails(in.Emails)
	if err != nil {
		return nil, err
	}
	phones, err := toPhones(in.Phones)
	if err != nil {
		return nil, err
	}
	companyRef, err := uc.resolveCompany(in.CompanyID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	contact := &entity.Contact{
		ID:         uuid.New().String(),
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		CompanyRef: companyRef,
		Emails:     emails,
		Phones:     phones,
		JobTitle:   in.JobTitle,
		Department: in.Department,
		Address:    toAddress(in.Address),
		Notes:      in.Notes,
		Tags:       in.Tags,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// GetByID returns a contact or ErrNotFound.
func (uc *ContactUseCase) GetByID(id string) (*dto.ContactResponse, error) {
	contact, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	return toContactResponse(contact), nil
}

// Update replaces the mutable fields of a contact.
func (uc *ContactUseCase) Update(id string, in dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	contact, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	emails, err := toEmails(in.Emails)
	if err != nil {
		return nil, err
	}
	phones, err := toPhones(in.Phones)
	if err != nil {
		return nil, err
	}
	companyRef, err := uc.resolveCompany(in.CompanyID)
	if err != nil {
		return nil, err
	}
	contact.FirstName = in.FirstName
	contact.LastName = in.LastName
	contact.CompanyRef = companyRef
	contact.Emails = emails
	contact.Phones = phones
	contact.JobTitle = in.JobTitle
	contact.Department = in.Department
	contact.Address = toAddress(in.Address)
	contact.Notes = in.Notes
	contact.Tags = in.Tags
	contact.UpdatedAt = time.Now()
	if err := uc.repo.Update(contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// Delete removes a contact by ID.
func (uc *ContactUseCase) Delete(id string) error {
	contact, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if contact == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List pages contacts matching search/tags filters.
func (uc *ContactUseCase) List(page dto.PageRequest, search string, tags []string) (*dto.ContactListResponse, error) {
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
	out := make([]*dto.ContactResponse, 0, len(list))
	for _, ct := range list {
		out = append(out, toContactResponse(ct))
	}
	return &dto.ContactListResponse{
		Contacts:   out,
		Pagination: dto.Paginate(page.Page, page.Limit, total),
	}, nil
}

// Grid pages contacts as display rows.
func (uc *ContactUseCase) Grid(page dto.PageRequest, search string, tags []string) (*dto.ContactGridResponse, error) {
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
	now := time.Now()
	rows := make([]dto.ContactGridRow, 0, len(list))
	for _, ct := range list {
		rows = append(rows, grid.ContactRow(ct, now))
	}
	return &dto.ContactGridResponse{
		Rows:       rows,
		Pagination: dto.Paginate(page.Page, page.Limit, total),
	}, nil
}

// Import ingests a contacts CSV. The email column becomes the primary
// email; a contact whose email already exists counts as a duplicate. A
// companyName cell is resolved to an existing company when one matches.
func (uc *ContactUseCase) Import(r io.Reader, createdBy *entity.Ref) (*dto.ImportResult, error) {
	rows, rowErrors, err := importer.Parse(r, importer.Contacts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	result := &dto.ImportResult{Errors: rowErrors}
	for _, row := range rows {
		if email := row.Get("email"); email != "" {
			existing, _ := uc.repo.GetByEmail(email)
			if existing != nil {
				result.Duplicates++
				continue
			}
		}
		var companyRef *entity.Ref
		if name := row.Get("companyName"); name != "" {
			if company, _ := uc.companyRepo.GetByName(name); company != nil {
				companyRef = &entity.Ref{ID: company.ID, Name: company.Name}
			}
		}
		var emails []entity.ContactEmail
		if email := row.Get("email"); email != "" {
			emails = append(emails, entity.ContactEmail{Email: email, Type: "work", IsPrimary: true})
		}
		var phones []entity.ContactPhone
		if phone := row.Get("phone"); phone != "" {
			phones = append(phones, entity.ContactPhone{Phone: phone, Type: "work", IsPrimary: true})
		}
		now := time.Now()
		contact := &entity.Contact{
			ID:         uuid.New().String(),
			FirstName:  row.Get("firstName"),
			LastName:   row.Get("lastName"),
			CompanyRef: companyRef,
			Emails:     emails,
			Phones:     phones,
			JobTitle:   row.Get("jobTitle"),
			Department: row.Get("department"),
			Address: entity.Address{
				Street:  row.Get("street"),
				City:    row.Get("city"),
				State:   row.Get("state"),
				ZipCode: row.Get("zipCode"),
				Country: row.Get("country"),
			},
			CreatedBy: createdBy,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.Create(contact); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", row.Line, err))
			continue
		}
		result.Created++
	}
	return result, nil
}

// Export writes every contact as CSV.
func (uc *ContactUseCase) Export(w io.Writer) error {
	contacts, err := uc.repo.All()
	if err != nil {
		return err
	}
	return exporter.Contacts(w, contacts)
}

// SendEmail sends a message to the contact's primary email.
func (uc *ContactUseCase) SendEmail(id string, in dto.SendEmailRequest) (*dto.SendEmailResponse, error) {
	if in.FromEmail == "" || in.Subject == "" {
		return nil, domain.ErrInvalidInput
	}
	contact, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	primary, ok := grid.PrimaryEmail(contact.Emails)
	if !ok {
		return nil, fmt.Errorf("%w: contact has no email address", domain.ErrInvalidInput)
	}
	if uc.mailer == nil {
		return nil, fmt.Errorf("outbound mail is not configured")
	}
	if err := uc.mailer.Send(in.FromEmail, primary.Email, in.Subject, in.Message); err != nil {
		return nil, fmt.Errorf("send email: %w", err)
	}
	return &dto.SendEmailResponse{Success: true, Message: "Email sent to " + primary.Email}, nil
}

func (uc *ContactUseCase) resolveCompany(companyID string) (*entity.Ref, error) {
	if companyID == "" {
		return nil, nil
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: company %s", domain.ErrNotFound, companyID)
	}
	return &entity.Ref{ID: company.ID, Name: company.Name}, nil
}

// toEmails validates the at-most-one-primary rule.
func toEmails(in []dto.ContactEmailDTO) ([]entity.ContactEmail, error) {
	var out []entity.ContactEmail
	primaries := 0
	for _, e := range in {
		if e.Email == "" {
			continue
		}
		if e.IsPrimary {
			primaries++
		}
		out = append(out, entity.ContactEmail{Email: e.Email, Type: e.Type, IsPrimary: e.IsPrimary})
	}
	if primaries > 1 {
		return nil, fmt.Errorf("%w: at most one email may be primary", domain.ErrInvalidInput)
	}
	return out, nil
}

func toPhones(in []dto.ContactPhoneDTO) ([]entity.ContactPhone, error) {
	var out []entity.ContactPhone
	primaries := 0
	for _, p := range in {
		if p.Phone == "" {
			continue
		}
		if p.IsPrimary {
			primaries++
		}
		out = append(out, entity.ContactPhone{Phone: p.Phone, Type: p.Type, IsPrimary: p.IsPrimary})
	}
	if primaries > 1 {
		return nil, fmt.Errorf("%w: at most one phone may be primary", domain.ErrInvalidInput)
	}
	return out, nil
}

func toContactResponse(ct *entity.Contact) *dto.ContactResponse {
	emails := make([]dto.ContactEmailDTO, 0, len(ct.Emails))
	for _, e := range ct.Emails {
		emails = append(emails, dto.ContactEmailDTO{Email: e.Email, Type: e.Type, IsPrimary: e.IsPrimary})
	}
	phones := make([]dto.ContactPhoneDTO, 0, len(ct.Phones))
	for _, p := range ct.Phones {
		phones = append(phones, dto.ContactPhoneDTO{Phone: p.Phone, Type: p.Type, IsPrimary: p.IsPrimary})
	}
	tags := ct.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.ContactResponse{
		ID:         ct.ID,
		FirstName:  ct.FirstName,
		LastName:   ct.LastName,
		CompanyRef: toRefDTO(ct.CompanyRef),
		Emails:     emails,
		Phones:     phones,
		JobTitle:   ct.JobTitle,
		Department: ct.Department,
		Address:    toAddressDTO(ct.Address),
		Notes:      ct.Notes,
		Tags:       tags,
		CreatedBy:  toRefDTO(ct.CreatedBy),
		CreatedAt:  ct.CreatedAt,
		UpdatedAt:  ct.UpdatedAt,
	}
}
