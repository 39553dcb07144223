package types

// DayBucket is one calendar day's aggregated averages for charting.
// Buckets are recomputed from scratch on every aggregation call and never
// cached. Averages are nil for days without entries so charts can show gaps.
type DayBucket struct {
	Date          string   `json:"date"`
	Label         string   `json:"label"`
	AverageMood   *float64 `json:"avg_mood"`
	AverageStress *float64 `json:"avg_stress"`
}

// MoodCurvePoint is one entry's mood mapped onto the 0-100 scale, used by
// the simpler single-series trend chart. One point per entry, not per day.
type MoodCurvePoint struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// AnalysisResult is what the scorer (or the AI enhancer) produces for a
// piece of journal text.
type AnalysisResult struct {
	Sentiment   Sentiment `json:"sentiment"`
	Score       int       `json:"score"`
	StressLevel int       `json:"stressLevel"`
	Mood        MoodLabel `json:"mood"`
}
