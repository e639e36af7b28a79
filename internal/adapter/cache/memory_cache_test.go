package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/wb-order-client/internal/domain"
)

func TestStoreSetGet(t *testing.T) {
	s := NewMemoryOrderStore()
	s.Set(domain.Order{OrderUID: "a1", TrackNumber: "T1"})

	got, ok := s.Get("a1")
	require.True(t, ok)
	assert.Equal(t, "T1", got.TrackNumber)

	_, ok = s.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	payload := `[
		{"order_uid": "a1", "track_number": "T1"},
		{"track_number": "no-uid"},
		{"order_uid": "a2", "track_number": "T2"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	s := NewMemoryOrderStore()
	n, err := s.SeedFile(path)
	require.NoError(t, err)

	// запись без order_uid пропущена
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, s.Len())

	_, ok := s.Get("a2")
	assert.True(t, ok)
}

func TestSeedFileErrors(t *testing.T) {
	s := NewMemoryOrderStore()

	_, err := s.SeedFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = s.SeedFile(path)
	assert.Error(t, err)
}
