package usecase

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/dto"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/importer"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/entity"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/repository"
)

// EmployeeUseCase admin-panel use cases: employee CRUD, bulk CSV
// provisioning and promotion to admin.
type EmployeeUseCase struct {
	repo            repository.EmployeeRepository
	defaultPassword string
}

// NewEmployeeUseCase builds the use case. defaultPassword is assigned to
// employees provisioned via CSV upload.
func NewEmployeeUseCase(repo repository.EmployeeRepository, defaultPassword string) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, defaultPassword: defaultPassword}
}

// Create creates an employee with an explicit password.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role := in.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	employee, err := uc.newEmployee(in.Name, in.Email, in.Password, role)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID returns an employee or ErrNotFound.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Update changes the profile fields of an employee.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		employee.Name = in.Name
	}
	if in.Email != "" {
		employee.Email = in.Email
	}
	if in.Status != "" {
		employee.Status = in.Status
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Delete removes an employee by ID.
func (uc *EmployeeUseCase) Delete(id string) error {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List pages employees.
func (uc *EmployeeUseCase) List(page dto.PageRequest, search string) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(repository.ListQuery{
		Search: search,
		Limit:  page.Limit,
		Offset: (page.Page - 1) * page.Limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Employees:  out,
		Pagination: dto.Paginate(page.Page, page.Limit, total),
	}, nil
}

// UploadCSV provisions employees from a two-column name,email CSV. Every
// created account gets the configured default password, hashed here.
func (uc *EmployeeUseCase) UploadCSV(r io.Reader) (*dto.ImportResult, error) {
	rows, rowErrors, err := importer.Parse(r, importer.Employees)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	result := &dto.ImportResult{Errors: rowErrors}
	for _, row := range rows {
		existing, _ := uc.repo.GetByEmail(row.Get("email"))
		if existing != nil {
			result.Duplicates++
			continue
		}
		employee, err := uc.newEmployee(row.Get("name"), row.Get("email"), uc.defaultPassword, entity.RoleEmployee)
		if err != nil {
			return nil, err
		}
		if err := uc.repo.Create(employee); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", row.Line, err))
			continue
		}
		result.Created++
	}
	return result, nil
}

// Promote raises an employee to admin. Promoting an admin is a no-op.
func (uc *EmployeeUseCase) Promote(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if employee.Role != entity.RoleAdmin {
		employee.Role = entity.RoleAdmin
		employee.UpdatedAt = time.Now()
		if err := uc.repo.Update(employee); err != nil {
			return nil, err
		}
	}
	return toEmployeeResponse(employee), nil
}

func (uc *EmployeeUseCase) newEmployee(name, email, password, role string) (*entity.Employee, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &entity.Employee{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Role:      e.Role,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
