package dto

import "time"

// LoginRequest body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token plus the authenticated employee.
type LoginResponse struct {
	Token    string           `json:"token"`
	Employee EmployeeResponse `json:"employee"`
}

// CreateEmployeeRequest body for POST /api/admin/employees.
type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateEmployeeRequest body for PUT /api/admin/employees/:id.
type UpdateEmployeeRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// EmployeeResponse wire shape of an employee (never carries the hash).
type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmployeeListResponse envelope of GET /api/admin/employees.
type EmployeeListResponse struct {
	Employees  []*EmployeeResponse `json:"employees"`
	Pagination Pagination          `json:"pagination"`
}
