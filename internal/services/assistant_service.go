package services

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/alvozap/backoffice/internal/kv"
	"github.com/alvozap/backoffice/internal/models"
)

var (
	ErrUnknownPersonality = errors.New("unknown assistant personality")
	ErrBotNameRequired    = errors.New("assistant name is required")
)

const assistantKey = "assistant_config"

// assistantPersonalities are the traits the configuration screen offers.
var assistantPersonalities = map[string]struct{}{
	"amigavel":   {},
	"prestativa": {},
	"vendas":     {},
}

// AssistantService holds the AI attendant configuration, persisted as a
// single record.
type AssistantService struct {
	mu     sync.Mutex
	store  kv.Store
	config models.AssistantConfig
}

func NewAssistantService(store kv.Store) *AssistantService {
	s := &AssistantService{store: store, config: defaultAssistantConfig()}

	raw, err := store.Get(assistantKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			slog.Error("failed to read assistant config", "error", err.Error())
		}
		return s
	}
	var cfg models.AssistantConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		slog.Error("discarding corrupt assistant config", "error", err.Error())
		if err := store.Delete(assistantKey); err != nil {
			slog.Error("failed to delete corrupt assistant config", "error", err.Error())
		}
		return s
	}
	s.config = cfg
	return s
}

func defaultAssistantConfig() models.AssistantConfig {
	return models.AssistantConfig{
		Active:        true,
		BotName:       "Robô AlvoZap",
		Personalities: []string{"amigavel", "prestativa"},
		WelcomeMessage: "Olá! Seja bem-vindo ao nosso restaurante. Eu sou o seu assistente virtual " +
			"e estou aqui para facilitar o seu pedido. Como posso te ajudar hoje?",
		OffHoursMessage: "Olá! Obrigado pelo contato. No momento estamos fechados. Nosso horário de " +
			"funcionamento é de terça a domingo, das 18:00 às 23:30.",
	}
}

func (s *AssistantService) Get() models.AssistantConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

func (s *AssistantService) Update(cfg models.AssistantConfig) (models.AssistantConfig, error) {
	if strings.TrimSpace(cfg.BotName) == "" {
		return models.AssistantConfig{}, ErrBotNameRequired
	}
	for _, p := range cfg.Personalities {
		if _, ok := assistantPersonalities[p]; !ok {
			return models.AssistantConfig{}, ErrUnknownPersonality
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(cfg)
	if err != nil {
		return models.AssistantConfig{}, err
	}
	if err := s.store.Set(assistantKey, raw); err != nil {
		return models.AssistantConfig{}, err
	}
	s.config = cfg
	return cfg, nil
}
