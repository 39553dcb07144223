package memstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodnote-ai/moodnote/pkg/types"
)

func TestJournalEntryStore(t *testing.T) {
	ctx := context.Background()
	provider := MustSetup()
	store := provider.JournalEntryStore()

	now := time.Now()
	for i, id := range []int64{1, 2, 3} {
		err := store.Create(ctx, types.JournalEntry{
			ID:   id,
			Text: "entry",
			Mood: types.MOOD_NEUTRAL,
			Date: now.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	list, err := store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].ID)

	ranged, err := store.ListByDateRange(ctx, now.Add(30*time.Second), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, ranged, 2)

	require.NoError(t, store.Delete(ctx, 2))
	_, err = store.Get(ctx, 2)
	assert.Equal(t, sql.ErrNoRows, err)

	require.NoError(t, store.Clear(ctx))
	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSettingStore(t *testing.T) {
	ctx := context.Background()
	store := MustSetup().SettingStore()

	_, err := store.Get(ctx, types.SETTING_REMINDER_TIME)
	assert.Equal(t, sql.ErrNoRows, err)

	require.NoError(t, store.Set(ctx, types.SETTING_REMINDER_TIME, "09:00"))
	require.NoError(t, store.Set(ctx, types.SETTING_REMINDER_TIME, "21:00"))

	setting, err := store.Get(ctx, types.SETTING_REMINDER_TIME)
	require.NoError(t, err)
	assert.Equal(t, "21:00", setting.Value)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
