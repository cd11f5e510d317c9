package handlers

import (
	"github.com/alvozap/backoffice/internal/dto"
	"github.com/alvozap/backoffice/internal/models"
	"github.com/alvozap/backoffice/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AssistantHandler struct {
	assistant *services.AssistantService
}

func NewAssistantHandler(assistant *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

func (h *AssistantHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.assistant.Get())
}

func (h *AssistantHandler) Update(c *fiber.Ctx) error {
	var cfg models.AssistantConfig
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	updated, err := h.assistant.Update(cfg)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(updated)
}
