// Package trend aggregates journal entries into chart-ready series.
package trend

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/moodnote-ai/moodnote/pkg/types"
)

// DailyBuckets buckets entries by local calendar day over the trailing
// window ending at now. The result always holds exactly windowDays buckets,
// oldest first, the last one being "today"; days without entries keep nil
// averages so charts can render gaps. Buckets are recomputed from scratch on
// every call.
func DailyBuckets(entries []types.JournalEntry, windowDays int, now time.Time) []types.DayBucket {
	today := localDay(now)
	buckets := make([]types.DayBucket, 0, windowDays)

	for i := windowDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)

		dayEntries := lo.Filter(entries, func(e types.JournalEntry, _ int) bool {
			return localDay(e.Date.In(now.Location())).Equal(day)
		})

		bucket := types.DayBucket{
			Date:  day.Format("2006-01-02"),
			Label: dayLabel(day, i),
		}

		if len(dayEntries) > 0 {
			var moodSum, stressSum float64
			for _, e := range dayEntries {
				moodSum += moodValue(e.Mood)
				stressSum += float64(e.StressLevel)
			}
			n := float64(len(dayEntries))
			avgMood := moodSum / n
			avgStress := stressSum / n
			bucket.AverageMood = &avgMood
			bucket.AverageStress = &avgStress
		}

		buckets = append(buckets, bucket)
	}

	return buckets
}

// MoodCurve maps every entry inside the trailing window onto the 0-100 mood
// scale, one point per entry in ascending date order. This is deliberately a
// different aggregation from DailyBuckets (no day bucketing, no gap filling)
// and the two are never unified.
func MoodCurve(entries []types.JournalEntry, windowDays int, now time.Time) []types.MoodCurvePoint {
	windowStart := now.AddDate(0, 0, -windowDays)

	filtered := lo.Filter(entries, func(e types.JournalEntry, _ int) bool {
		return !e.Date.Before(windowStart)
	})
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	return lo.Map(filtered, func(e types.JournalEntry, _ int) types.MoodCurvePoint {
		return types.MoodCurvePoint{
			Label: e.Date.In(now.Location()).Format("1/2/2006"),
			Score: e.Mood.CurveScore(),
		}
	})
}

func localDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayLabel(day time.Time, daysAgo int) string {
	switch daysAgo {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return day.Format("Jan 2")
	}
}

// moodValue is the 1-5 numeric mapping used for day averages; entries with a
// missing or unknown mood count as 3.
func moodValue(m types.MoodLabel) float64 {
	if !m.Valid() {
		return 3
	}
	return m.Scale()
}
