package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemory_PutGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, ok, err := m.Get(ctx, "list:10:0")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, m.Put(ctx, "list:10:0", []byte(`[{"id":1}]`), 100))

	entry, ok, err := m.Get(ctx, "list:10:0")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "list:10:0", entry.Key)
	require.Equal(t, []byte(`[{"id":1}]`), entry.Payload)
	require.Equal(t, 100, entry.Total)
	require.WithinDuration(t, time.Now(), entry.CapturedAt, time.Second)
}

func TestMemory_GetReturnsStaleEntries(t *testing.T) {
	m := NewMemory()
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, "search:x", []byte(`[]`), 0))

	// the cache itself never evicts on read; freshness is the caller's call
	entry, ok, err := m.Get(ctx, "search:x")
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, entry.Fresh(time.Now(), 5*time.Minute))
}

func TestMemory_PutOverwrites(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, "k", []byte(`old`), 1))
	require.NoError(t, m.Put(ctx, "k", []byte(`new`), 2))

	entry, ok, _ := m.Get(ctx, "k")
	require.True(t, ok)
	require.Equal(t, []byte(`new`), entry.Payload)
	require.Equal(t, 2, entry.Total)
	require.Equal(t, 1, m.Len())
}

func TestMemory_Clear(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, "a", []byte(`[]`), 0))
	require.NoError(t, m.Put(ctx, "b", []byte(`[]`), 0))
	require.Equal(t, 2, m.Len())

	require.NoError(t, m.Clear(ctx))
	require.Equal(t, 0, m.Len())

	_, ok, _ := m.Get(ctx, "a")
	require.False(t, ok)
}

func TestMemory_PutCopiesPayload(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	payload := []byte(`[1,2,3]`)
	require.NoError(t, m.Put(ctx, "k", payload, 3))
	payload[0] = 'X'

	entry, _, _ := m.Get(ctx, "k")
	require.Equal(t, []byte(`[1,2,3]`), entry.Payload)
}
