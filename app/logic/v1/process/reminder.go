package process

import (
	"context"
	"log/slog"
	"time"

	"github.com/moodnote-ai/moodnote/pkg/safe"
	"github.com/moodnote-ai/moodnote/pkg/types"
	"github.com/moodnote-ai/moodnote/pkg/utils"
)

// registerReminder schedules the daily journaling reminder. The reminder
// time lives in settings so it can be changed without restarting, the job
// re-reads it every minute.
func (p *Process) registerReminder() {
	_, err := p.cron.AddFunc("* * * * *", func() {
		safe.Run(func() {
			p.runReminder(time.Now())
		})
	})
	if err != nil {
		panic(err)
	}
}

func (p *Process) runReminder(now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	if !p.reminderDue(ctx, now) {
		return
	}

	slog.Info("journal reminder due",
		slog.String("reminder_time", now.Format("15:04")),
		slog.String("date", utils.LocalDay(now).Format("2006-01-02")))
}

// reminderDue reports whether the nudge should fire at now: notifications on,
// the configured time matches to the minute, and nothing was journaled today.
func (p *Process) reminderDue(ctx context.Context, now time.Time) bool {
	settings := p.core.Store().SettingStore()

	enabled, err := settings.Get(ctx, types.SETTING_NOTIFICATIONS_ENABLED)
	if err != nil || enabled.Value != "true" {
		return false
	}

	reminder, err := settings.Get(ctx, types.SETTING_REMINDER_TIME)
	if err != nil || reminder.Value == "" {
		return false
	}

	if now.Format("15:04") != reminder.Value {
		return false
	}

	today := utils.LocalDay(now)
	entries, err := p.core.Store().JournalEntryStore().ListByDateRange(ctx, today, now)
	if err != nil {
		slog.Error("reminder entry lookup failed", slog.Any("error", err))
		return false
	}
	return len(entries) == 0
}
