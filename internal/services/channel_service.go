package services

import (
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/alvozap/backoffice/internal/kv"
)

const connectionKey = "connection_flag"

// ChannelService tracks whether the WhatsApp channel is marked connected.
// The connected flag is persisted on every change; the connecting indicator
// is transient UI state and never written to storage.
type ChannelService struct {
	mu         sync.Mutex
	store      kv.Store
	connected  bool
	connecting bool
}

func NewChannelService(store kv.Store) *ChannelService {
	s := &ChannelService{store: store}
	raw, err := store.Get(connectionKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			slog.Error("failed to read connection flag", "error", err.Error())
		}
		return s
	}
	s.connected = string(raw) == "true"
	return s
}

func (s *ChannelService) Connect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = true
	s.connecting = false
	s.persist()
}

func (s *ChannelService) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = false
	s.persist()
}

func (s *ChannelService) SetConnecting(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connecting = v
}

func (s *ChannelService) Status() (connected, connecting bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected, s.connecting
}

func (s *ChannelService) persist() {
	if err := s.store.Set(connectionKey, []byte(strconv.FormatBool(s.connected))); err != nil {
		slog.Error("failed to persist connection flag", "error", err.Error())
	}
}
