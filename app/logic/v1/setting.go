package v1

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/moodnote-ai/moodnote/app/core"
	"github.com/moodnote-ai/moodnote/pkg/errors"
	"github.com/moodnote-ai/moodnote/pkg/i18n"
	"github.com/moodnote-ai/moodnote/pkg/types"
)

type SettingLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewSettingLogic(ctx context.Context, core *core.Core) *SettingLogic {
	return &SettingLogic{
		ctx:  ctx,
		core: core,
	}
}

var knownSettings = map[string]bool{
	types.SETTING_NOTIFICATIONS_ENABLED: true,
	types.SETTING_REMINDER_TIME:         true,
}

func (l *SettingLogic) GetSetting(key string) (*types.Setting, error) {
	if !knownSettings[key] {
		return nil, errors.New("SettingLogic.GetSetting.check", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	setting, err := l.core.Store().SettingStore().Get(l.ctx, key)
	if err != nil {
		if err == sql.ErrNoRows {
			return &types.Setting{Key: key}, nil
		}
		return nil, errors.New("SettingLogic.GetSetting.SettingStore.Get", i18n.ERROR_INTERNAL, err)
	}
	return setting, nil
}

func (l *SettingLogic) SetSetting(key, value string) error {
	if !knownSettings[key] {
		return errors.New("SettingLogic.SetSetting.check", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	if err := l.core.Store().SettingStore().Set(l.ctx, key, value); err != nil {
		return errors.New("SettingLogic.SetSetting.SettingStore.Set", i18n.ERROR_INTERNAL, err)
	}
	return nil
}
