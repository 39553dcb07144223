package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/moodnote-ai/moodnote/app/core"
	"github.com/moodnote-ai/moodnote/pkg/errors"
	"github.com/moodnote-ai/moodnote/pkg/i18n"
	"github.com/moodnote-ai/moodnote/pkg/sentiment"
	"github.com/moodnote-ai/moodnote/pkg/types"
	"github.com/moodnote-ai/moodnote/pkg/utils"
)

type EntryLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewEntryLogic(ctx context.Context, core *core.Core) *EntryLogic {
	return &EntryLogic{
		ctx:  ctx,
		core: core,
	}
}

// CreateEntryResult carries the saved entry plus the distress flag so the
// caller can surface crisis resources immediately.
type CreateEntryResult struct {
	Entry            types.JournalEntry `json:"entry"`
	DistressDetected bool               `json:"distress_detected"`
}

// CreateEntry analyzes and persists a full journal entry. mood is optional,
// when set it overrides whatever the analysis infers.
func (l *EntryLogic) CreateEntry(text string, mood types.MoodLabel) (*CreateEntryResult, error) {
	if text == "" {
		return nil, errors.New("EntryLogic.CreateEntry.check", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}
	if mood != "" && !mood.Valid() {
		return nil, errors.New("EntryLogic.CreateEntry.mood.check", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	distress := sentiment.DetectDistress(text)
	if distress {
		l.core.Metrics().DistressDetectedInc("entry")
	}

	analysis := l.core.Analyzer().AnalyzeMood(l.ctx, text, mood)

	entry := types.JournalEntry{
		ID:             utils.GenUniqID(),
		Text:           text,
		Mood:           analysis.Mood,
		Sentiment:      analysis.Sentiment,
		SentimentScore: analysis.Score,
		StressLevel:    analysis.StressLevel,
		Date:           time.Now(),
	}

	if err := l.core.Store().JournalEntryStore().Create(l.ctx, entry); err != nil {
		return nil, errors.New("EntryLogic.CreateEntry.JournalEntryStore.Create", i18n.ERROR_INTERNAL, err)
	}
	l.core.Metrics().EntryCreatedInc("entry")

	return &CreateEntryResult{
		Entry:            entry,
		DistressDetected: distress,
	}, nil
}

// QuickCheckin records a mood tap plus the stress slider, without free text.
// The stored text is a fixed template so trend analysis still has tokens to
// work with.
func (l *EntryLogic) QuickCheckin(mood types.MoodLabel, stress int) (*types.JournalEntry, error) {
	if !mood.Valid() {
		return nil, errors.New("EntryLogic.QuickCheckin.mood.check", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}
	if stress < 0 || stress > 100 {
		return nil, errors.New("EntryLogic.QuickCheckin.stress.check", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	entry := types.JournalEntry{
		ID:             utils.GenUniqID(),
		Text:           "Quick check-in: " + string(mood),
		Mood:           mood,
		Sentiment:      types.SENTIMENT_NEUTRAL,
		StressLevel:    stress,
		IsQuickCheckin: true,
		Date:           time.Now(),
	}

	if err := l.core.Store().JournalEntryStore().Create(l.ctx, entry); err != nil {
		return nil, errors.New("EntryLogic.QuickCheckin.JournalEntryStore.Create", i18n.ERROR_INTERNAL, err)
	}
	l.core.Metrics().EntryCreatedInc("quick_checkin")

	return &entry, nil
}

// ListEntries returns the newest entries first, at most limit of them, all
// of them when limit is zero.
func (l *EntryLogic) ListEntries(limit uint64) ([]types.JournalEntry, error) {
	list, err := l.core.Store().JournalEntryStore().List(l.ctx, limit)
	if err != nil {
		return nil, errors.New("EntryLogic.ListEntries.JournalEntryStore.List", i18n.ERROR_INTERNAL, err)
	}
	if list == nil {
		list = []types.JournalEntry{}
	}
	return list, nil
}

func (l *EntryLogic) ListByDateRange(start, end time.Time) ([]types.JournalEntry, error) {
	if end.Before(start) {
		return nil, errors.New("EntryLogic.ListByDateRange.range.check", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}
	list, err := l.core.Store().JournalEntryStore().ListByDateRange(l.ctx, start, end)
	if err != nil {
		return nil, errors.New("EntryLogic.ListByDateRange.JournalEntryStore.ListByDateRange", i18n.ERROR_INTERNAL, err)
	}
	if list == nil {
		list = []types.JournalEntry{}
	}
	return list, nil
}

func (l *EntryLogic) DeleteEntry(id int64) error {
	_, err := l.core.Store().JournalEntryStore().Get(l.ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.New("EntryLogic.DeleteEntry.JournalEntryStore.Get", i18n.ERROR_NOT_FOUND, err).Code(http.StatusNotFound)
		}
		return errors.New("EntryLogic.DeleteEntry.JournalEntryStore.Get", i18n.ERROR_INTERNAL, err)
	}

	if err = l.core.Store().JournalEntryStore().Delete(l.ctx, id); err != nil {
		return errors.New("EntryLogic.DeleteEntry.JournalEntryStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// ClearEntries removes every journal entry. Settings are untouched.
func (l *EntryLogic) ClearEntries() error {
	if err := l.core.Store().JournalEntryStore().Clear(l.ctx); err != nil {
		return errors.New("EntryLogic.ClearEntries.JournalEntryStore.Clear", i18n.ERROR_INTERNAL, err)
	}
	return nil
}

// Export snapshots every entry and setting into a portable document.
func (l *EntryLogic) Export() (*types.ExportData, error) {
	entries, err := l.core.Store().JournalEntryStore().ListAll(l.ctx)
	if err != nil {
		return nil, errors.New("EntryLogic.Export.JournalEntryStore.ListAll", i18n.ERROR_INTERNAL, err)
	}
	if entries == nil {
		entries = []types.JournalEntry{}
	}

	settings, err := l.core.Store().SettingStore().ListAll(l.ctx)
	if err != nil {
		return nil, errors.New("EntryLogic.Export.SettingStore.ListAll", i18n.ERROR_INTERNAL, err)
	}

	settingMap := make(map[string]string, len(settings))
	for _, s := range settings {
		settingMap[s.Key] = s.Value
	}

	return &types.ExportData{
		Entries:    entries,
		Settings:   settingMap,
		ExportDate: time.Now().Format(time.RFC3339),
	}, nil
}
