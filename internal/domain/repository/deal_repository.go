package repository

import "github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/entity"

// DealRepository defines the persistence port for Deal.
type DealRepository interface {
	Create(deal *entity.Deal) error
	GetByID(id string) (*entity.Deal, error)
	GetByTitle(title string) (*entity.Deal, error)
	List(q ListQuery) ([]*entity.Deal, int, error)
	All() ([]*entity.Deal, error)
	Update(deal *entity.Deal) error
	Delete(id string) error
}
