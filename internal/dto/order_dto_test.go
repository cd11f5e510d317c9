package dto

import (
	"testing"
	"time"

	"github.com/alvozap/backoffice/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNewOrderResponse(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 45, 0, 0, time.UTC)
	order := models.Order{
		ID:           "#8942",
		Customer:     "João Silva",
		ItemsSummary: "1x Pizza Margherita, 1x Coca-Cola 2L",
		ValueCents:   5200,
		PlacedAt:     now.Add(-10 * time.Minute),
		Status:       models.OrderStatusNew,
	}

	resp := NewOrderResponse(order, now)
	assert.Equal(t, "R$ 52,00", resp.Value)
	assert.Equal(t, "12:35", resp.Time)
	assert.Equal(t, "10 min atrás", resp.TimeAgo)
	assert.Equal(t, "new", resp.Status)
}

func TestTimeAgo(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "agora", timeAgo(now.Add(-30*time.Second), now))
	assert.Equal(t, "25 min atrás", timeAgo(now.Add(-25*time.Minute), now))
	assert.Equal(t, "3 h atrás", timeAgo(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2 dias atrás", timeAgo(now.Add(-49*time.Hour), now))
}
