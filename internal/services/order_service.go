package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/alvozap/backoffice/internal/models"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUndoNotConfirmed  = errors.New("undo delivery requires confirmation")
)

// OrderAction is a user intent on the order board.
type OrderAction string

const (
	ActionAccept          OrderAction = "accept"
	ActionReject          OrderAction = "reject"
	ActionDispatch        OrderAction = "dispatch"
	ActionConfirmDelivery OrderAction = "confirm_delivery"
	ActionUndoDelivery    OrderAction = "undo_delivery"
)

// transitions is the order lifecycle: forward only, except the confirmed
// undo from delivered back to out_for_delivery. Anything not listed here is
// rejected with ErrInvalidTransition.
var transitions = map[models.OrderStatus]map[OrderAction]models.OrderStatus{
	models.OrderStatusNew: {
		ActionAccept: models.OrderStatusPreparing,
		ActionReject: models.OrderStatusRejected,
	},
	models.OrderStatusPreparing: {
		ActionDispatch: models.OrderStatusOutForDelivery,
	},
	models.OrderStatusOutForDelivery: {
		ActionConfirmDelivery: models.OrderStatusDelivered,
	},
	models.OrderStatusDelivered: {
		ActionUndoDelivery: models.OrderStatusOutForDelivery,
	},
}

// OrderService holds the order board in memory for the process lifetime.
type OrderService struct {
	mu     sync.Mutex
	orders []*models.Order
}

func NewOrderService() *OrderService {
	return &OrderService{orders: seedOrders(time.Now())}
}

func seedOrders(now time.Time) []*models.Order {
	return []*models.Order{
		{
			ID:           "#8942",
			Customer:     "João Silva",
			ItemsSummary: "1x Pizza Margherita, 1x Coca-Cola 2L",
			ValueCents:   5200,
			PlacedAt:     now.Add(-10 * time.Minute),
			Status:       models.OrderStatusNew,
		},
		{
			ID:           "#8940",
			Customer:     "Maria Oliveira",
			ItemsSummary: "2x Burger Artesanal, 1x Batata Frita G, 1x Suco Natural",
			ValueCents:   8450,
			PlacedAt:     now.Add(-25 * time.Minute),
			Status:       models.OrderStatusPreparing,
		},
		{
			ID:           "#8938",
			Customer:     "Ricardo Neves",
			ItemsSummary: "1x Poke de Salmão, 1x Água sem gás",
			ValueCents:   3800,
			PlacedAt:     now.Add(-40 * time.Minute),
			Status:       models.OrderStatusOutForDelivery,
		},
	}
}

// List filters the board by status ("" or "all" keeps everything) and by a
// case-insensitive substring of the customer name or order id. Pure
// projection: nothing is mutated.
func (s *OrderService) List(status, query string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if status != "" && status != "all" && string(o.Status) != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(o.Customer), q) &&
			!strings.Contains(strings.ToLower(o.ID), q) {
			continue
		}
		out = append(out, *o)
	}
	return out
}

// Get returns the order with the given display code.
func (s *OrderService) Get(id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.find(id)
	if o == nil {
		return models.Order{}, ErrOrderNotFound
	}
	return *o, nil
}

func (s *OrderService) Accept(id string) (models.Order, error) {
	return s.apply(id, ActionAccept)
}

func (s *OrderService) Reject(id string) (models.Order, error) {
	return s.apply(id, ActionReject)
}

func (s *OrderService) Dispatch(id string) (models.Order, error) {
	return s.apply(id, ActionDispatch)
}

func (s *OrderService) ConfirmDelivery(id string) (models.Order, error) {
	return s.apply(id, ActionConfirmDelivery)
}

// UndoDelivery moves a delivered order back to out_for_delivery. The board
// asks the operator to confirm first; an unconfirmed request is refused.
func (s *OrderService) UndoDelivery(id string, confirmed bool) (models.Order, error) {
	if !confirmed {
		return models.Order{}, ErrUndoNotConfirmed
	}
	return s.apply(id, ActionUndoDelivery)
}

func (s *OrderService) apply(id string, action OrderAction) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.find(id)
	if o == nil {
		return models.Order{}, ErrOrderNotFound
	}
	next, ok := transitions[o.Status][action]
	if !ok {
		return models.Order{}, ErrInvalidTransition
	}
	o.Status = next
	return *o, nil
}

func (s *OrderService) find(id string) *models.Order {
	for _, o := range s.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// OrderStats feeds the board footer and dashboard KPIs.
type OrderStats struct {
	TotalOrders int
	SalesCents  int64
	ByStatus    map[models.OrderStatus]int
}

// Stats sums every order that was not rejected.
func (s *OrderService) Stats() OrderStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := OrderStats{ByStatus: make(map[models.OrderStatus]int)}
	for _, o := range s.orders {
		stats.ByStatus[o.Status]++
		if o.Status == models.OrderStatusRejected {
			continue
		}
		stats.TotalOrders++
		stats.SalesCents += o.ValueCents
	}
	return stats
}
