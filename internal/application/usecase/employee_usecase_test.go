package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/dto"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/entity"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/repository"
)

type fakeEmployeeRepo struct {
	byID map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: make(map[string]*entity.Employee)}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	r.byID[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.byID[id], nil
}

func (r *fakeEmployeeRepo) GetByEmail(email string) (*entity.Employee, error) {
	for _, e := range r.byID {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) List(q repository.ListQuery) ([]*entity.Employee, int, error) {
	var out []*entity.Employee
	for _, e := range r.byID {
		out = append(out, e)
	}
	return out, len(out), nil
}

func (r *fakeEmployeeRepo) Update(e *entity.Employee) error {
	r.byID[e.ID] = e
	return nil
}

func (r *fakeEmployeeRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func newCreateEmployeeRequest(name, email string) dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{Name: name, Email: email, Password: "s3cret!"}
}

func TestEmployeeUploadCSV_ProvisionsWithDefaultPassword(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := NewEmployeeUseCase(repo, "Welcome123!")

	csv := "name,email\n" +
		"Jane Doe,jane@zentro.test\n" +
		"John Roe,john@zentro.test\n"
	result, err := uc.UploadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Zero(t, result.Duplicates)
	assert.Empty(t, result.Errors)

	jane, err := repo.GetByEmail("jane@zentro.test")
	require.NoError(t, err)
	require.NotNil(t, jane)
	assert.Equal(t, entity.RoleEmployee, jane.Role)
	assert.Equal(t, "active", jane.Status)
	assert.NotEqual(t, "Welcome123!", jane.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(jane.PasswordHash), []byte("Welcome123!")))
}

func TestEmployeeUploadCSV_SkipsDuplicatesAndBadRows(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := NewEmployeeUseCase(repo, "Welcome123!")

	_, err := uc.UploadCSV(strings.NewReader("name,email\nJane Doe,jane@zentro.test\n"))
	require.NoError(t, err)

	csv := "name,email\n" +
		"Jane Doe,jane@zentro.test\n" +
		"No Email,\n" +
		"New Person,new@zentro.test\n"
	result, err := uc.UploadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Duplicates)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, `Row 3: missing required field "email"`, result.Errors[0])
}

func TestEmployeePromote_Idempotent(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := NewEmployeeUseCase(repo, "Welcome123!")

	created, err := uc.Create(newCreateEmployeeRequest("Jane Doe", "jane@zentro.test"))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, created.Role)

	promoted, err := uc.Promote(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, promoted.Role)

	again, err := uc.Promote(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, again.Role)

	_, err = uc.Promote("missing-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeCreate_RejectsDuplicateEmail(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := NewEmployeeUseCase(repo, "Welcome123!")

	_, err := uc.Create(newCreateEmployeeRequest("Jane Doe", "jane@zentro.test"))
	require.NoError(t, err)

	_, err = uc.Create(newCreateEmployeeRequest("Jane Clone", "jane@zentro.test"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
