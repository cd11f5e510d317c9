package services

import (
	"testing"

	"github.com/alvozap/backoffice/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLifecycle(t *testing.T) {
	s := NewOrderService()

	// seeded order #8942 starts new
	order, err := s.Get("#8942")
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusNew, order.Status)

	order, err = s.Accept("#8942")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPreparing, order.Status)

	order, err = s.Dispatch("#8942")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusOutForDelivery, order.Status)

	order, err = s.ConfirmDelivery("#8942")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, order.Status)

	order, err = s.UndoDelivery("#8942", true)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusOutForDelivery, order.Status)
}

func TestInvalidTransitionsRejected(t *testing.T) {
	s := NewOrderService()

	// delivering straight from new is not a valid step
	_, err := s.ConfirmDelivery("#8942")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// state did not move
	order, err := s.Get("#8942")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusNew, order.Status)

	// dispatch from new is equally invalid
	_, err = s.Dispatch("#8942")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// accept on an already-preparing order
	_, err = s.Accept("#8940")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRejectIsTerminal(t *testing.T) {
	s := NewOrderService()

	order, err := s.Reject("#8942")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusRejected, order.Status)

	_, err = s.Accept("#8942")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = s.Reject("#8942")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUndoDeliveryRequiresConfirmation(t *testing.T) {
	s := NewOrderService()

	_, err := s.ConfirmDelivery("#8938")
	require.NoError(t, err)

	_, err = s.UndoDelivery("#8938", false)
	assert.ErrorIs(t, err, ErrUndoNotConfirmed)

	order, err := s.Get("#8938")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, order.Status)
}

func TestUnknownOrder(t *testing.T) {
	s := NewOrderService()
	_, err := s.Accept("#0000")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListFiltering(t *testing.T) {
	s := NewOrderService()

	all := s.List("", "")
	assert.Len(t, all, 3)
	assert.Len(t, s.List("all", ""), 3)

	novo := s.List("new", "")
	require.Len(t, novo, 1)
	assert.Equal(t, "#8942", novo[0].ID)

	// substring over customer name, case-insensitive
	maria := s.List("", "maria")
	require.Len(t, maria, 1)
	assert.Equal(t, "Maria Oliveira", maria[0].Customer)

	// substring over the display code
	byID := s.List("", "8938")
	require.Len(t, byID, 1)
	assert.Equal(t, "#8938", byID[0].ID)

	// filter and search combine
	assert.Empty(t, s.List("delivered", "maria"))

	// filtering is a pure projection
	order, err := s.Get("#8942")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusNew, order.Status)
}

func TestStats(t *testing.T) {
	s := NewOrderService()

	stats := s.Stats()
	assert.Equal(t, 3, stats.TotalOrders)
	assert.EqualValues(t, 5200+8450+3800, stats.SalesCents)
	assert.Equal(t, 1, stats.ByStatus[models.OrderStatusNew])
	assert.Equal(t, 1, stats.ByStatus[models.OrderStatusPreparing])
	assert.Equal(t, 1, stats.ByStatus[models.OrderStatusOutForDelivery])

	// rejected orders drop out of the sales figures
	_, err := s.Reject("#8942")
	require.NoError(t, err)
	stats = s.Stats()
	assert.Equal(t, 2, stats.TotalOrders)
	assert.EqualValues(t, 8450+3800, stats.SalesCents)
	assert.Equal(t, 1, stats.ByStatus[models.OrderStatusRejected])
}
