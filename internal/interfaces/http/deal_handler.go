package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/dto"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/usecase"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/pkg/filecheck"
)

// DealHandler handles HTTP requests for deals.
type DealHandler struct {
	uc     *usecase.DealUseCase
	upload filecheck.Options
}

// NewDealHandler builds the handler.
func NewDealHandler(uc *usecase.DealUseCase, upload filecheck.Options) *DealHandler {
	return &DealHandler{uc: uc, upload: upload}
}

// List GET /api/deals?page&limit&search
func (h *DealHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(pageRequest(c), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create POST /api/deals
func (h *DealHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDealRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(in, actorRef(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/deals/:id
func (h *DealHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Import POST /api/deals/import (multipart field "file")
func (h *DealHandler) Import(c *fiber.Ctx) error {
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

// Export GET /api/deals/export
func (h *DealHandler) Export(c *fiber.Ctx) error {
	return sendCSV(c, "deals", func(buf *bytes.Buffer) error {
		return h.uc.Export(buf)
	})
}
