package handlers

import (
	"errors"

	"github.com/alvozap/backoffice/internal/dto"
	"github.com/alvozap/backoffice/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	sessions *services.SessionService
}

func NewAuthHandler(sessions *services.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	account, token, err := h.sessions.SignUp(services.SignUpInput{
		EstablishmentName: req.EstablishmentName,
		ContactName:       req.ContactName,
		Email:             req.Email,
		Phone:             req.Phone,
		Password:          req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		AccessToken: token,
		Account:     *account,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	account, token, err := h.sessions.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailNotFound) || errors.Is(err, services.ErrInvalidPassword) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.AuthResponse{
		AccessToken: token,
		Account:     *account,
	})
}

// Session returns the restored session, null when nobody is logged in.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(dto.SessionResponse{Account: h.sessions.Current()})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout()
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}
