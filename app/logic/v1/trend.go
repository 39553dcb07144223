package v1

import (
	"context"
	"time"

	"github.com/moodnote-ai/moodnote/app/core"
	"github.com/moodnote-ai/moodnote/pkg/errors"
	"github.com/moodnote-ai/moodnote/pkg/i18n"
	"github.com/moodnote-ai/moodnote/pkg/trend"
	"github.com/moodnote-ai/moodnote/pkg/types"
)

type TrendLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewTrendLogic(ctx context.Context, core *core.Core) *TrendLogic {
	return &TrendLogic{
		ctx:  ctx,
		core: core,
	}
}

// DailyTrend buckets every entry into the last windowDays calendar days.
// windowDays falls back to the configured default when zero or negative.
func (l *TrendLogic) DailyTrend(windowDays int) ([]types.DayBucket, error) {
	if windowDays <= 0 {
		windowDays = l.core.Cfg().Journal.TrendWindow()
	}

	entries, err := l.core.Store().JournalEntryStore().ListAll(l.ctx)
	if err != nil {
		return nil, errors.New("TrendLogic.DailyTrend.JournalEntryStore.ListAll", i18n.ERROR_INTERNAL, err)
	}

	return trend.DailyBuckets(entries, windowDays, time.Now()), nil
}

// MoodCurve returns one point per entry inside the window, oldest first.
func (l *TrendLogic) MoodCurve(windowDays int) ([]types.MoodCurvePoint, error) {
	if windowDays <= 0 {
		windowDays = l.core.Cfg().Journal.MoodCurveWindow()
	}

	entries, err := l.core.Store().JournalEntryStore().ListAll(l.ctx)
	if err != nil {
		return nil, errors.New("TrendLogic.MoodCurve.JournalEntryStore.ListAll", i18n.ERROR_INTERNAL, err)
	}

	return trend.MoodCurve(entries, windowDays, time.Now()), nil
}
