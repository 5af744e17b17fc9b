package repository

import "github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/entity"

// ContactRepository defines the persistence port for Contact.
type ContactRepository interface {
	Create(contact *entity.Contact) error
	GetByID(id string) (*entity.Contact, error)
	GetByEmail(email string) (*entity.Contact, error)
	List(q ListQuery) ([]*entity.Contact, int, error)
	All() ([]*entity.Contact, error)
	Update(contact *entity.Contact) error
	Delete(id string) error
}
