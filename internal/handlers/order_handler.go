package handlers

import (
	"errors"
	"time"

	"github.com/alvozap/backoffice/internal/dto"
	"github.com/alvozap/backoffice/internal/models"
	"github.com/alvozap/backoffice/internal/money"
	"github.com/alvozap/backoffice/internal/services"
	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List supports ?status= and ?q= the way the board's filter pills and search
// box do.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders := h.orders.List(c.Query("status"), c.Query("q"))
	return c.JSON(dto.NewOrderResponses(orders, time.Now()))
}

func (h *OrderHandler) Stats(c *fiber.Ctx) error {
	stats := h.orders.Stats()
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, n := range stats.ByStatus {
		byStatus[string(status)] = n
	}
	return c.JSON(dto.OrderStatsResponse{
		TotalOrders: stats.TotalOrders,
		SalesCents:  stats.SalesCents,
		Sales:       money.Format(stats.SalesCents),
		ByStatus:    byStatus,
	})
}

func (h *OrderHandler) Accept(c *fiber.Ctx) error {
	order, err := h.orders.Accept(orderID(c))
	return h.respond(c, order, err)
}

func (h *OrderHandler) Reject(c *fiber.Ctx) error {
	order, err := h.orders.Reject(orderID(c))
	return h.respond(c, order, err)
}

func (h *OrderHandler) Dispatch(c *fiber.Ctx) error {
	order, err := h.orders.Dispatch(orderID(c))
	return h.respond(c, order, err)
}

func (h *OrderHandler) ConfirmDelivery(c *fiber.Ctx) error {
	order, err := h.orders.ConfirmDelivery(orderID(c))
	return h.respond(c, order, err)
}

func (h *OrderHandler) UndoDelivery(c *fiber.Ctx) error {
	var req dto.UndoDeliveryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	order, err := h.orders.UndoDelivery(orderID(c), req.Confirmed)
	return h.respond(c, order, err)
}

// orderID restores the "#8942" display code the route parameter carries
// without its hash mark.
func orderID(c *fiber.Ctx) string {
	return "#" + c.Params("id")
}

func (h *OrderHandler) respond(c *fiber.Ctx, order models.Order, err error) error {
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrUndoNotConfirmed) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(dto.NewOrderResponse(order, time.Now()))
}
