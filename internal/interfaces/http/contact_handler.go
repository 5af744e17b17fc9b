package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/dto"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/usecase"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/pkg/filecheck"
)

// ContactHandler handles HTTP requests for contacts.
type ContactHandler struct {
	uc     *usecase.ContactUseCase
	upload filecheck.Options
}

// NewContactHandler builds the handler.
func NewContactHandler(uc *usecase.ContactUseCase, upload filecheck.Options) *ContactHandler {
	return &ContactHandler{uc: uc, upload: upload}
}

// List GET /api/contacts?page&limit&search&tags[&view=grid]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	page := pageRequest(c)
	search := c.Query("search")
	tags := tagsParam(c)
	if c.Query("view") == "grid" {
		out, err := h.uc.Grid(page, search, tags)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(page, search, tags)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create POST /api/contacts
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(in, actorRef(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/contacts/:id
func (h *ContactHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/contacts/:id
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/contacts/:id
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import POST /api/contacts/import (multipart field "file")
func (h *ContactHandler) Import(c *fiber.Ctx) error {
	fh, err := uploadedCSV(c, h.upload)
	if err != nil {
		return respondError(c, err)
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()
	result, err := h.uc.Import(f, actorRef(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Export GET /api/contacts/export
func (h *ContactHandler) Export(c *fiber.Ctx) error {
	return sendCSV(c, "contacts", func(buf *bytes.Buffer) error {
		return h.uc.Export(buf)
	})
}

// SendEmail POST /api/contacts/:id/send-email
func (h *ContactHandler) SendEmail(c *fiber.Ctx) error {
	var in dto.SendEmailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.SendEmail(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
