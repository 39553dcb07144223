package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/moodnote-ai/moodnote/pkg/types"
)

type JournalEntryStore struct {
	CommonFields
}

func NewJournalEntryStore(provider SqlProviderAchieve) *JournalEntryStore {
	repo := &JournalEntryStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_JOURNAL_ENTRY)
	repo.SetAllColumns("id", "text", "mood", "sentiment", "sentiment_score", "stress_level", "is_quick_checkin", "date")
	return repo
}

// Create
func (s *JournalEntryStore) Create(ctx context.Context, data types.JournalEntry) error {
	if data.Date.IsZero() {
		data.Date = time.Now()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "text", "mood", "sentiment", "sentiment_score", "stress_level", "is_quick_checkin", "date").
		Values(data.ID, data.Text, data.Mood, data.Sentiment, data.SentimentScore, data.StressLevel, data.IsQuickCheckin, data.Date)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return err
	}
	return nil
}

// Get
func (s *JournalEntryStore) Get(ctx context.Context, id int64) (*types.JournalEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.JournalEntry
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// List returns the newest entries first.
func (s *JournalEntryStore) List(ctx context.Context, limit uint64) ([]types.JournalEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.JournalEntry
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *JournalEntryStore) ListAll(ctx context.Context) ([]types.JournalEntry, error) {
	return s.List(ctx, 0)
}

func (s *JournalEntryStore) ListByDateRange(ctx context.Context, start, end time.Time) ([]types.JournalEntry, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.GtOrEq{"date": start}).Where(sq.LtOrEq{"date": end}).
		OrderBy("date DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.JournalEntry
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// Delete
func (s *JournalEntryStore) Delete(ctx context.Context, id int64) error {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

// Clear removes every entry.
func (s *JournalEntryStore) Clear(ctx context.Context) error {
	query := sq.Delete(s.GetTable())

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}
