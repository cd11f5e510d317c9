package dto

import (
	"fmt"
	"time"

	"github.com/alvozap/backoffice/internal/models"
	"github.com/alvozap/backoffice/internal/money"
)

type OrderResponse struct {
	ID           string `json:"id"`
	Customer     string `json:"customer"`
	ItemsSummary string `json:"items_summary"`
	ValueCents   int64  `json:"value_cents"`
	Value        string `json:"value"`
	Time         string `json:"time"`
	TimeAgo      string `json:"time_ago"`
	Status       string `json:"status"`
}

func NewOrderResponse(o models.Order, now time.Time) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		Customer:     o.Customer,
		ItemsSummary: o.ItemsSummary,
		ValueCents:   o.ValueCents,
		Value:        money.Format(o.ValueCents),
		Time:         o.PlacedAt.Format("15:04"),
		TimeAgo:      timeAgo(o.PlacedAt, now),
		Status:       string(o.Status),
	}
}

func NewOrderResponses(orders []models.Order, now time.Time) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = NewOrderResponse(o, now)
	}
	return out
}

// timeAgo renders the board's relative timestamp ("10 min atrás").
func timeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "agora"
	case d < time.Hour:
		return fmt.Sprintf("%d min atrás", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d h atrás", int(d.Hours()))
	default:
		return fmt.Sprintf("%d dias atrás", int(d.Hours()/24))
	}
}

type UndoDeliveryRequest struct {
	Confirmed bool `json:"confirmed"`
}

type OrderStatsResponse struct {
	TotalOrders int            `json:"total_orders"`
	SalesCents  int64          `json:"sales_cents"`
	Sales       string         `json:"sales"`
	ByStatus    map[string]int `json:"by_status"`
}
