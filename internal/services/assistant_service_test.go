package services

import (
	"testing"

	"github.com/alvozap/backoffice/internal/kv"
	"github.com/alvozap/backoffice/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistantDefaults(t *testing.T) {
	s := NewAssistantService(kv.NewMemory())

	cfg := s.Get()
	assert.True(t, cfg.Active)
	assert.Equal(t, "Robô AlvoZap", cfg.BotName)
	assert.Equal(t, []string{"amigavel", "prestativa"}, cfg.Personalities)
	assert.NotEmpty(t, cfg.WelcomeMessage)
	assert.NotEmpty(t, cfg.OffHoursMessage)
}

func TestAssistantUpdatePersists(t *testing.T) {
	store := kv.NewMemory()
	s := NewAssistantService(store)

	cfg := s.Get()
	cfg.Active = false
	cfg.BotName = "Atendente da Casa"
	cfg.Personalities = []string{"vendas"}

	_, err := s.Update(cfg)
	require.NoError(t, err)

	restarted := NewAssistantService(store)
	got := restarted.Get()
	assert.False(t, got.Active)
	assert.Equal(t, "Atendente da Casa", got.BotName)
	assert.Equal(t, []string{"vendas"}, got.Personalities)
}

func TestAssistantUpdateValidation(t *testing.T) {
	s := NewAssistantService(kv.NewMemory())

	_, err := s.Update(models.AssistantConfig{BotName: "  "})
	assert.ErrorIs(t, err, ErrBotNameRequired)

	_, err = s.Update(models.AssistantConfig{
		BotName:       "Robô",
		Personalities: []string{"sarcastica"},
	})
	assert.ErrorIs(t, err, ErrUnknownPersonality)
}

func TestAssistantDiscardsCorruptRecord(t *testing.T) {
	store := kv.NewMemory()
	require.NoError(t, store.Set("assistant_config", []byte("{broken")))

	s := NewAssistantService(store)
	assert.Equal(t, "Robô AlvoZap", s.Get().BotName)

	_, err := store.Get("assistant_config")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}
