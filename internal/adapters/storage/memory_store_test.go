package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stoik/link-guard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RecordAndList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)

	for i := 0; i < 3; i++ {
		w := &domain.Warning{MessageID: fmt.Sprintf("msg-%d", i), Lookalike: "discord.com", Distance: 1}
		require.NoError(t, store.RecordWarning(ctx, w))
		assert.NotEqual(t, uuid.Nil, w.ID, "ID should be assigned")
		assert.False(t, w.CreatedAt.IsZero(), "CreatedAt should be assigned")
	}

	warnings, err := store.ListRecentWarnings(ctx, 2)
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Equal(t, "msg-2", warnings[0].MessageID)
	assert.Equal(t, "msg-1", warnings[1].MessageID)

	all, err := store.ListRecentWarnings(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryStore_NonPositiveLimit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)
	require.NoError(t, store.RecordWarning(ctx, &domain.Warning{MessageID: "msg-0"}))

	for _, limit := range []int{0, -1} {
		warnings, err := store.ListRecentWarnings(ctx, limit)
		require.NoError(t, err)
		assert.Empty(t, warnings, "limit %d", limit)
	}
}

func TestMemoryStore_KeepsExistingID(t *testing.T) {
	id := uuid.New()
	store := NewMemoryStore(0)

	require.NoError(t, store.RecordWarning(context.Background(), &domain.Warning{ID: id}))

	warnings, err := store.ListRecentWarnings(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, id, warnings[0].ID)
}

func TestMemoryStore_EvictsOldest(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(2)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordWarning(ctx, &domain.Warning{MessageID: fmt.Sprintf("msg-%d", i)}))
	}

	warnings, err := store.ListRecentWarnings(ctx, 10)
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Equal(t, "msg-4", warnings[0].MessageID)
	assert.Equal(t, "msg-3", warnings[1].MessageID)
	assert.NoError(t, store.Close())
}
