package repository

import "github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/entity"

// CompanyRepository defines the persistence port for Company.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
	List(q ListQuery) ([]*entity.Company, int, error)
	All() ([]*entity.Company, error)
	Update(company *entity.Company) error
	Delete(id string) error
}
