package services

import (
	"testing"

	"github.com/alvozap/backoffice/internal/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewSettingsService(kv.NewMemory())

	settings := s.Get()
	assert.Equal(t, "Pizzaria do Chef", settings.Establishment.Name)
	assert.True(t, settings.Payments.Pix)
	assert.False(t, settings.Notifications.DailyReport)
}

func TestSettingsUpdatePersists(t *testing.T) {
	store := kv.NewMemory()
	s := NewSettingsService(store)

	settings := s.Get()
	settings.Establishment.Name = "Cantina da Nonna"
	settings.Payments.Cash = false
	settings.Notifications.DailyReport = true

	_, err := s.Update(settings)
	require.NoError(t, err)

	restarted := NewSettingsService(store)
	got := restarted.Get()
	assert.Equal(t, "Cantina da Nonna", got.Establishment.Name)
	assert.False(t, got.Payments.Cash)
	assert.True(t, got.Notifications.DailyReport)
}

func TestSettingsDiscardsCorruptRecord(t *testing.T) {
	store := kv.NewMemory()
	require.NoError(t, store.Set("settings", []byte("not json")))

	s := NewSettingsService(store)
	assert.Equal(t, "Pizzaria do Chef", s.Get().Establishment.Name)
}
