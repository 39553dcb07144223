package trend_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodnote-ai/moodnote/pkg/trend"
	"github.com/moodnote-ai/moodnote/pkg/types"
)

var now = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func entry(daysAgo int, mood types.MoodLabel, stress int) types.JournalEntry {
	return types.JournalEntry{
		Mood:        mood,
		StressLevel: stress,
		Date:        now.AddDate(0, 0, -daysAgo),
	}
}

func TestDailyBuckets_AlwaysDense(t *testing.T) {
	buckets := trend.DailyBuckets(nil, 30, now)
	require.Len(t, buckets, 30)

	for _, b := range buckets {
		assert.Nil(t, b.AverageMood)
		assert.Nil(t, b.AverageStress)
	}

	first, err := time.Parse("2006-01-02", buckets[0].Date)
	require.NoError(t, err)
	last, err := time.Parse("2006-01-02", buckets[29].Date)
	require.NoError(t, err)
	assert.Equal(t, 29, int(last.Sub(first).Hours()/24))
	assert.Equal(t, "2025-06-15", buckets[29].Date)
}

func TestDailyBuckets_Labels(t *testing.T) {
	buckets := trend.DailyBuckets(nil, 7, now)
	require.Len(t, buckets, 7)

	assert.Equal(t, "Today", buckets[6].Label)
	assert.Equal(t, "Yesterday", buckets[5].Label)
	assert.Equal(t, "Jun 13", buckets[4].Label)
	assert.Equal(t, "Jun 9", buckets[0].Label)
}

func TestDailyBuckets_SameDayAveraging(t *testing.T) {
	entries := []types.JournalEntry{
		entry(0, types.MOOD_HAPPY, 20),
		entry(0, types.MOOD_SAD, 60),
	}

	buckets := trend.DailyBuckets(entries, 30, now)
	today := buckets[29]

	require.NotNil(t, today.AverageStress)
	assert.InDelta(t, 40, *today.AverageStress, 1e-9)
	require.NotNil(t, today.AverageMood)
	assert.InDelta(t, 3, *today.AverageMood, 1e-9) // (4+2)/2
}

func TestDailyBuckets_EntriesOutsideWindowIgnored(t *testing.T) {
	entries := []types.JournalEntry{
		entry(35, types.MOOD_HAPPY, 10),
		entry(3, types.MOOD_NEUTRAL, 30),
	}

	buckets := trend.DailyBuckets(entries, 30, now)

	populated := 0
	for _, b := range buckets {
		if b.AverageMood != nil {
			populated++
		}
	}
	assert.Equal(t, 1, populated)
	require.NotNil(t, buckets[26].AverageStress)
	assert.InDelta(t, 30, *buckets[26].AverageStress, 1e-9)
}

func TestDailyBuckets_UnknownMoodCountsAsThree(t *testing.T) {
	entries := []types.JournalEntry{
		entry(0, "", 0),
	}

	buckets := trend.DailyBuckets(entries, 7, now)
	require.NotNil(t, buckets[6].AverageMood)
	assert.InDelta(t, 3, *buckets[6].AverageMood, 1e-9)
}

func TestMoodCurve_WindowFilterAndOrder(t *testing.T) {
	entries := []types.JournalEntry{
		entry(10, types.MOOD_VERY_SAD, 0),
		entry(2, types.MOOD_HAPPY, 0),
	}

	points := trend.MoodCurve(entries, 7, now)
	require.Len(t, points, 1)
	assert.Equal(t, 75, points[0].Score)
}

func TestMoodCurve_OnePointPerEntry(t *testing.T) {
	morning := entry(1, types.MOOD_VERY_HAPPY, 0)
	evening := entry(1, types.MOOD_VERY_SAD, 0)
	evening.Date = evening.Date.Add(4 * time.Hour)

	entries := []types.JournalEntry{evening, morning, entry(0, types.MOOD_NEUTRAL, 0)}

	points := trend.MoodCurve(entries, 30, now)
	require.Len(t, points, 3)
	// ascending by date, same-day entries both present (no bucketing)
	assert.Equal(t, 100, points[0].Score)
	assert.Equal(t, 0, points[1].Score)
	assert.Equal(t, 50, points[2].Score)
}

func TestMoodCurve_UnknownMoodDefaultsTo50(t *testing.T) {
	points := trend.MoodCurve([]types.JournalEntry{entry(0, "whatever", 0)}, 7, now)
	require.Len(t, points, 1)
	assert.Equal(t, 50, points[0].Score)
}
