package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/auth"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/dto"
)

// AuthHandler handles authentication requests.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email and password are required"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		// Invalid email and invalid password both map to 401 so the
		// response does not reveal which accounts exist.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid credentials"})
	}
	return c.JSON(out)
}
