package services

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/alvozap/backoffice/internal/kv"
	"github.com/alvozap/backoffice/internal/models"
)

const settingsKey = "settings"

// SettingsService holds the establishment settings, persisted as a single
// record.
type SettingsService struct {
	mu       sync.Mutex
	store    kv.Store
	settings models.Settings
}

func NewSettingsService(store kv.Store) *SettingsService {
	s := &SettingsService{store: store, settings: defaultSettings()}

	raw, err := store.Get(settingsKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			slog.Error("failed to read settings", "error", err.Error())
		}
		return s
	}
	var settings models.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		slog.Error("discarding corrupt settings", "error", err.Error())
		if err := store.Delete(settingsKey); err != nil {
			slog.Error("failed to delete corrupt settings", "error", err.Error())
		}
		return s
	}
	s.settings = settings
	return s
}

func defaultSettings() models.Settings {
	return models.Settings{
		Establishment: models.EstablishmentInfo{
			Name:    "Pizzaria do Chef",
			Phone:   "+55 11 99999-9999",
			Address: "Rua das Pizzas, 123 - São Paulo, SP",
		},
		Hours: models.OpeningHours{
			Weekdays:   "18:00 - 23:30",
			Weekends:   "17:00 - 00:00",
			ClosedDays: "Segunda-feira",
		},
		Payments: models.PaymentMethods{
			Pix:            true,
			CardOnDelivery: true,
			Cash:           true,
		},
		Notifications: models.NotificationPrefs{
			NewOrder:    true,
			Chat:        true,
			DailyReport: false,
		},
	}
}

func (s *SettingsService) Get() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *SettingsService) Update(settings models.Settings) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(settings)
	if err != nil {
		return models.Settings{}, err
	}
	if err := s.store.Set(settingsKey, raw); err != nil {
		return models.Settings{}, err
	}
	s.settings = settings
	return settings, nil
}
