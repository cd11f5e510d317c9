package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	_, err := m.Get("users")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set("users", []byte(`{"a":1}`)))
	got, err := m.Get("users")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	require.NoError(t, m.Delete("users"))
	_, err = m.Get("users")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting a missing key is not an error
	assert.NoError(t, m.Delete("users"))
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	v := []byte("true")
	require.NoError(t, m.Set("connection_flag", v))
	v[0] = 'X'

	got, err := m.Get("connection_flag")
	require.NoError(t, err)
	assert.Equal(t, "true", string(got))
}
