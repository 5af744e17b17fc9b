package repository

import "github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/entity"

// EmployeeRepository defines the persistence port for Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByEmail(email string) (*entity.Employee, error)
	List(q ListQuery) ([]*entity.Employee, int, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
}
