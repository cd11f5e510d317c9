package handlers

import (
	"github.com/alvozap/backoffice/internal/dto"
	"github.com/alvozap/backoffice/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ChannelHandler struct {
	channel *services.ChannelService
}

func NewChannelHandler(channel *services.ChannelService) *ChannelHandler {
	return &ChannelHandler{channel: channel}
}

func (h *ChannelHandler) Status(c *fiber.Ctx) error {
	connected, connecting := h.channel.Status()
	return c.JSON(dto.ChannelStatusResponse{Connected: connected, Connecting: connecting})
}

func (h *ChannelHandler) Connect(c *fiber.Ctx) error {
	h.channel.Connect()
	return h.Status(c)
}

func (h *ChannelHandler) Disconnect(c *fiber.Ctx) error {
	h.channel.Disconnect()
	return h.Status(c)
}

func (h *ChannelHandler) SetConnecting(c *fiber.Ctx) error {
	var req dto.SetConnectingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	h.channel.SetConnecting(req.Connecting)
	return h.Status(c)
}
