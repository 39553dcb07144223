// Package memstore is an in-memory store.Store used in development mode and
// by logic tests. It mirrors the sql store's ordering guarantees.
package memstore

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/moodnote-ai/moodnote/app/store"
	"github.com/moodnote-ai/moodnote/pkg/types"
)

type Provider struct {
	entries  *JournalEntryStore
	settings *SettingStore
}

func MustSetup() *Provider {
	return &Provider{
		entries: &JournalEntryStore{
			data: make(map[int64]types.JournalEntry),
		},
		settings: &SettingStore{
			data: make(map[string]types.Setting),
		},
	}
}

func (p *Provider) JournalEntryStore() store.JournalEntryStore {
	return p.entries
}

func (p *Provider) SettingStore() store.SettingStore {
	return p.settings
}

type JournalEntryStore struct {
	mu   sync.RWMutex
	data map[int64]types.JournalEntry
}

func (s *JournalEntryStore) GetTable(key ...interface{}) string {
	return types.TABLE_JOURNAL_ENTRY.Name()
}

func (s *JournalEntryStore) Create(ctx context.Context, data types.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if data.Date.IsZero() {
		data.Date = time.Now()
	}
	s.data[data.ID] = data
	return nil
}

func (s *JournalEntryStore) Get(ctx context.Context, id int64) (*types.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.data[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &entry, nil
}

func (s *JournalEntryStore) List(ctx context.Context, limit uint64) ([]types.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]types.JournalEntry, 0, len(s.data))
	for _, entry := range s.data {
		res = append(res, entry)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Date.After(res[j].Date)
	})
	if limit > 0 && uint64(len(res)) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (s *JournalEntryStore) ListAll(ctx context.Context) ([]types.JournalEntry, error) {
	return s.List(ctx, 0)
}

func (s *JournalEntryStore) ListByDateRange(ctx context.Context, start, end time.Time) ([]types.JournalEntry, error) {
	all, _ := s.List(ctx, 0)

	var res []types.JournalEntry
	for _, entry := range all {
		if entry.Date.Before(start) || entry.Date.After(end) {
			continue
		}
		res = append(res, entry)
	}
	return res, nil
}

func (s *JournalEntryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

func (s *JournalEntryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[int64]types.JournalEntry)
	return nil
}

type SettingStore struct {
	mu   sync.RWMutex
	data map[string]types.Setting
}

func (s *SettingStore) GetTable(key ...interface{}) string {
	return types.TABLE_SETTING.Name()
}

func (s *SettingStore) Get(ctx context.Context, key string) (*types.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	setting, ok := s.data[key]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &setting, nil
}

func (s *SettingStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = types.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().Unix(),
	}
	return nil
}

func (s *SettingStore) ListAll(ctx context.Context) ([]types.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]types.Setting, 0, len(s.data))
	for _, setting := range s.data {
		res = append(res, setting)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Key < res[j].Key
	})
	return res, nil
}
