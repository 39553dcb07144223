package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/moodnote-ai/moodnote/pkg/types"
)

type SettingStore struct {
	CommonFields
}

func NewSettingStore(provider SqlProviderAchieve) *SettingStore {
	repo := &SettingStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_SETTING)
	repo.SetAllColumns("key", "value", "updated_at")
	return repo
}

func (s *SettingStore) Get(ctx context.Context, key string) (*types.Setting, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"key": key})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Setting
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// Set upserts the value for key.
func (s *SettingStore) Set(ctx context.Context, key, value string) error {
	query := sq.Insert(s.GetTable()).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().Unix()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at")

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	return err
}

func (s *SettingStore) ListAll(ctx context.Context) ([]types.Setting, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).OrderBy("key ASC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res []types.Setting
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
