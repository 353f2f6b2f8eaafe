package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetMissingKey(t *testing.T) {
	kv := NewMemory()

	_, err := kv.Get("sess_a", KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySetOverwrites(t *testing.T) {
	kv := NewMemory()

	require.NoError(t, kv.Set("sess_a", KeyOrderNumber, []byte(`"1234567"`)))
	require.NoError(t, kv.Set("sess_a", KeyOrderNumber, []byte(`"7654321"`)))

	value, err := kv.Get("sess_a", KeyOrderNumber)
	require.NoError(t, err)
	assert.Equal(t, `"7654321"`, string(value))
}

func TestMemorySessionsAreIsolated(t *testing.T) {
	kv := NewMemory()

	require.NoError(t, kv.Set("sess_a", KeyCart, []byte(`[]`)))

	_, err := kv.Get("sess_b", KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)
}
