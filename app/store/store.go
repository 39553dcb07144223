package store

import (
	"context"
	"time"

	"github.com/moodnote-ai/moodnote/pkg/sqlstore"
	"github.com/moodnote-ai/moodnote/pkg/types"
)

// JournalEntryStore is the persistence port for journal entries. Entries are
// never updated in place; delete and clear are the only mutations.
type JournalEntryStore interface {
	sqlstore.SqlCommons
	Create(ctx context.Context, data types.JournalEntry) error
	Get(ctx context.Context, id int64) (*types.JournalEntry, error)
	// List returns the newest entries first, at most limit of them.
	List(ctx context.Context, limit uint64) ([]types.JournalEntry, error)
	ListAll(ctx context.Context) ([]types.JournalEntry, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]types.JournalEntry, error)
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}

// SettingStore is a string key/value settings table.
type SettingStore interface {
	sqlstore.SqlCommons
	Get(ctx context.Context, key string) (*types.Setting, error)
	Set(ctx context.Context, key, value string) error
	ListAll(ctx context.Context) ([]types.Setting, error)
}

// Store bundles every store the application consumes.
type Store interface {
	JournalEntryStore() JournalEntryStore
	SettingStore() SettingStore
}
