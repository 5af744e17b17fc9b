package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/dto"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/repository"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login for employee accounts.
type AuthUseCase struct {
	employeeRepo repository.EmployeeRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(employeeRepo repository.EmployeeRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{employeeRepo: employeeRepo, jwtCfg: jwtCfg}
}

// Login verifies email/password, issues a JWT and returns token plus employee.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	employee, err := uc.employeeRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if employee.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, employee.ID, employee.Email, employee.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Employee: dto.EmployeeResponse{
			ID:        employee.ID,
			Name:      employee.Name,
			Email:     employee.Email,
			Role:      employee.Role,
			Status:    employee.Status,
			CreatedAt: employee.CreatedAt,
			UpdatedAt: employee.UpdatedAt,
		},
	}, nil
}
