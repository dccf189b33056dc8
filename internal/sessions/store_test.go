package sessions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore_SaveAndGet(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	session := &Session{ID: "s-1", Language: "en-US", Status: StatusPending}
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "s-1", got.ID)
	assert.Equal(t, StatusPending, got.Status)
}

func TestInMemoryStore_SaveValidation(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, nil))
	assert.Error(t, store.Save(ctx, &Session{}))
}

func TestInMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{ID: "s-1", Status: StatusPending}))

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	got.Status = StatusFailed

	again, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, again.Status, "mutating a returned session must not affect the store")
}

func TestInMemoryStore_GetNotFound(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Get(context.Background(), "missing")
	assert.Error(t, err)
}

func TestInMemoryStore_List(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{ID: "s-1", Status: StatusPending}))
	require.NoError(t, store.Save(ctx, &Session{ID: "s-2", Status: StatusCompleted}))
	require.NoError(t, store.Save(ctx, &Session{ID: "s-3", Status: StatusCompleted}))

	all, err := store.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	completed, err := store.List(ctx, Filter{Status: StatusCompleted})
	require.NoError(t, err)
	assert.Len(t, completed, 2)

	limited, err := store.List(ctx, Filter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	offset, err := store.List(ctx, Filter{Offset: 5})
	require.NoError(t, err)
	assert.Empty(t, offset)
}

func TestInMemoryStore_ListPaginationIsStable(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(ctx, &Session{
			ID:        fmt.Sprintf("s-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	// Paging through in chunks must visit every session exactly once.
	var seen []string
	for offset := 0; offset < 5; offset += 2 {
		page, err := store.List(ctx, Filter{Limit: 2, Offset: offset})
		require.NoError(t, err)
		for _, s := range page {
			seen = append(seen, s.ID)
		}
	}
	assert.Equal(t, []string{"s-0", "s-1", "s-2", "s-3", "s-4"}, seen)
}

func TestInMemoryStore_Delete(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{ID: "s-1"}))
	require.NoError(t, store.Delete(ctx, "s-1"))

	_, err := store.Get(ctx, "s-1")
	assert.Error(t, err)

	// Deleting a missing session is a no-op.
	assert.NoError(t, store.Delete(ctx, "missing"))
}

func TestInMemoryStore_UpdateStatus(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{ID: "s-1", Status: StatusPending}))
	require.NoError(t, store.UpdateStatus(ctx, "s-1", StatusFailed, "no speech input"))

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Equal(t, "no speech input", got.Error)

	assert.Error(t, store.UpdateStatus(ctx, "missing", StatusFailed, ""))
}
