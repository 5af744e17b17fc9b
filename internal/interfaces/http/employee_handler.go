package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/dto"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/usecase"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/pkg/filecheck"
)

// EmployeeHandler handles the admin employee panel.
type EmployeeHandler struct {
	uc     *usecase.EmployeeUseCase
	upload filecheck.Options
}

// NewEmployeeHandler builds the handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, upload filecheck.Options) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, upload: upload}
}

// List GET /api/admin/employees?page&limit&search
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageRequest(c), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create POST /api/admin/employees
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/admin/employees/:id
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/admin/employees/:id
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/admin/employees/:id
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadCSV POST /api/admin/employees/upload-csv (multipart field "file",
// two columns: name,email; default password assigned server-side)
func (h *EmployeeHandler) UploadCSV(c *fiber.Ctx) error {
	fh, err := uploadedCSV(c, h.upload)
	if err != nil {
		return respondError(c, err)
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()
	result, err := h.uc.UploadCSV(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Promote POST /api/admin/employees/:id/promote
func (h *EmployeeHandler) Promote(c *fiber.Ctx) error {
	out, err := h.uc.Promote(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
