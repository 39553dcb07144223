package types

import (
	"time"
)

// MoodLabel is the user-facing categorical mood, self-reported or inferred.
type MoodLabel string

const (
	MOOD_VERY_SAD   = MoodLabel("very-sad")
	MOOD_SAD        = MoodLabel("sad")
	MOOD_NEUTRAL    = MoodLabel("neutral")
	MOOD_HAPPY      = MoodLabel("happy")
	MOOD_VERY_HAPPY = MoodLabel("very-happy")
)

func (m MoodLabel) Valid() bool {
	switch m {
	case MOOD_VERY_SAD, MOOD_SAD, MOOD_NEUTRAL, MOOD_HAPPY, MOOD_VERY_HAPPY:
		return true
	}
	return false
}

// Scale returns the mood on the 1-5 charting scale, 3 for unknown labels.
func (m MoodLabel) Scale() float64 {
	switch m {
	case MOOD_VERY_SAD:
		return 1
	case MOOD_SAD:
		return 2
	case MOOD_NEUTRAL:
		return 3
	case MOOD_HAPPY:
		return 4
	case MOOD_VERY_HAPPY:
		return 5
	}
	return 3
}

// CurveScore returns the mood on the 0-100 curve scale, 50 for unknown labels.
func (m MoodLabel) CurveScore() int {
	switch m {
	case MOOD_VERY_SAD:
		return 0
	case MOOD_SAD:
		return 25
	case MOOD_NEUTRAL:
		return 50
	case MOOD_HAPPY:
		return 75
	case MOOD_VERY_HAPPY:
		return 100
	}
	return 50
}

// Sentiment is the coarse polarity derived from lexicon counts.
type Sentiment string

const (
	SENTIMENT_NEGATIVE = Sentiment("negative")
	SENTIMENT_NEUTRAL  = Sentiment("neutral")
	SENTIMENT_POSITIVE = Sentiment("positive")
)

// JournalEntry is one persisted journal record. Entries are immutable once
// created; delete and clear are the only mutations the store offers.
type JournalEntry struct {
	ID             int64     `json:"id" db:"id"`
	Text           string    `json:"text" db:"text"`
	Mood           MoodLabel `json:"mood" db:"mood"`
	Sentiment      Sentiment `json:"sentiment" db:"sentiment"`
	SentimentScore int       `json:"sentiment_score" db:"sentiment_score"`
	StressLevel    int       `json:"stress_level" db:"stress_level"`
	IsQuickCheckin bool      `json:"is_quick_checkin" db:"is_quick_checkin"`
	Date           time.Time `json:"date" db:"date"`
}

// Setting is one key/value record from the settings store.
type Setting struct {
	Key       string `json:"key" db:"key"`
	Value     string `json:"value" db:"value"`
	UpdatedAt int64  `json:"updated_at" db:"updated_at"`
}

const (
	SETTING_NOTIFICATIONS_ENABLED = "notificationsEnabled"
	SETTING_REMINDER_TIME         = "reminderTime"
)

// ExportData is the export envelope. It must round-trip the store's native
// representation unchanged.
type ExportData struct {
	Entries    []JournalEntry    `json:"entries"`
	Settings   map[string]string `json:"settings"`
	ExportDate string            `json:"exportDate"`
}
