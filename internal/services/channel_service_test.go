package services

import (
	"testing"

	"github.com/alvozap/backoffice/internal/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelDefaultsDisconnected(t *testing.T) {
	s := NewChannelService(kv.NewMemory())
	connected, connecting := s.Status()
	assert.False(t, connected)
	assert.False(t, connecting)
}

func TestConnectPersistsAndClearsConnecting(t *testing.T) {
	store := kv.NewMemory()
	s := NewChannelService(store)

	s.SetConnecting(true)
	s.Connect()

	connected, connecting := s.Status()
	assert.True(t, connected)
	assert.False(t, connecting)

	raw, err := store.Get("connection_flag")
	require.NoError(t, err)
	assert.Equal(t, "true", string(raw))

	// a fresh service over the same store sees the flag
	restarted := NewChannelService(store)
	connected, _ = restarted.Status()
	assert.True(t, connected)
}

func TestDisconnectPersists(t *testing.T) {
	store := kv.NewMemory()
	s := NewChannelService(store)

	s.Connect()
	s.Disconnect()

	raw, err := store.Get("connection_flag")
	require.NoError(t, err)
	assert.Equal(t, "false", string(raw))
}

func TestConnectingIsNotPersisted(t *testing.T) {
	store := kv.NewMemory()
	s := NewChannelService(store)

	s.SetConnecting(true)
	_, connecting := s.Status()
	assert.True(t, connecting)

	// nothing written: connecting is transient UI state
	_, err := store.Get("connection_flag")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	restarted := NewChannelService(store)
	_, connecting = restarted.Status()
	assert.False(t, connecting)
}
