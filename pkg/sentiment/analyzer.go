// Package sentiment implements the local journal-entry scorer: a lexicon
// based sentiment/stress heuristic with an optional AI enhancement path.
package sentiment

import (
	"context"
	"log/slog"
	"math"
	"regexp"
	"strings"

	"github.com/moodnote-ai/moodnote/pkg/types"
)

// Enhancer is an optional text-generation collaborator that can replace the
// local analysis. Absence or failure is a normal condition, never an error
// surfaced to the caller.
type Enhancer interface {
	AnalyzeSentiment(ctx context.Context, text string) (*types.AnalysisResult, error)
}

var positiveWords = wordSet(
	"happy", "joy", "great", "wonderful", "excited", "good", "amazing",
	"fantastic", "love", "loved", "peaceful", "calm", "grateful", "thankful",
	"blessed", "hopeful", "optimistic", "content", "satisfied", "proud",
	"confident", "energetic", "motivated", "inspired", "relieved", "relaxed",
)

var negativeWords = wordSet(
	"sad", "depressed", "angry", "anxious", "worried", "stressed", "tired",
	"exhausted", "frustrated", "upset", "disappointed", "lonely", "scared",
	"afraid", "hurt", "pain", "suffering", "hopeless", "helpless", "overwhelmed",
	"nervous", "panic", "fear", "dread", "terrible", "awful", "horrible",
	"miserable", "unhappy", "down", "low", "empty", "numb",
)

// Stress indicators are kept independent of the negative lexicon; a token
// like "stressed" counts toward both. Intentional, inherited behavior.
var stressIndicators = wordSet(
	"stress", "stressed", "pressure", "overwhelmed", "burden",
	"deadline", "rush", "urgent", "worry", "worried", "anxious", "anxiety",
	"tense", "tension", "strain", "exhausted", "drained",
)

func wordSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

var nonWord = regexp.MustCompile(`[^\w\s]`)

// Tokenize lowercases the text, replaces every non-word character with a
// space and splits on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(nonWord.ReplaceAllString(strings.ToLower(text), " "))
}

type Analyzer struct {
	enhancer   Enhancer
	onFallback func()
}

// NewAnalyzer builds an Analyzer. enhancer may be nil, in which case only
// the local lexicon scoring runs.
func NewAnalyzer(enhancer Enhancer) *Analyzer {
	return &Analyzer{enhancer: enhancer}
}

// SetFallbackObserver registers fn to run whenever an enhancer attempt is
// discarded and local scoring takes over. Used to drive a metrics counter.
func (a *Analyzer) SetFallbackObserver(fn func()) {
	a.onFallback = fn
}

func (a *Analyzer) fallback() {
	if a.onFallback != nil {
		a.onFallback()
	}
}

// Analyze scores text against the three lexicons.
//
// The integer score is the positive/negative count difference over the token
// count, scaled by 100. It is bounded to [-100, 100] by construction (counts
// never exceed the token count) and deliberately not hard-clamped.
func (a *Analyzer) Analyze(text string) types.AnalysisResult {
	if strings.TrimSpace(text) == "" {
		return types.AnalysisResult{Sentiment: types.SENTIMENT_NEUTRAL}
	}

	words := Tokenize(text)

	var positiveCount, negativeCount, stressCount int
	for _, w := range words {
		if _, ok := positiveWords[w]; ok {
			positiveCount++
		}
		if _, ok := negativeWords[w]; ok {
			negativeCount++
		}
		if _, ok := stressIndicators[w]; ok {
			stressCount++
		}
	}

	total := math.Max(float64(len(words)), 1)
	ratio := float64(positiveCount-negativeCount) / total
	stressRatio := math.Min(float64(stressCount)/total*100, 100)

	sentiment := types.SENTIMENT_NEUTRAL
	// thresholds apply to the raw ratio, not the rounded score
	if ratio > 0.05 {
		sentiment = types.SENTIMENT_POSITIVE
	} else if ratio < -0.05 {
		sentiment = types.SENTIMENT_NEGATIVE
	}

	return types.AnalysisResult{
		Sentiment:   sentiment,
		Score:       int(math.Round(ratio * 100)),
		StressLevel: int(math.Round(stressRatio)),
	}
}

// AnalyzeMood produces the full tuple persisted on an entry. An explicit
// userMood always wins over both the AI enhancer and local inference; the
// numeric fields are still computed so mood and sentiment may disagree.
func (a *Analyzer) AnalyzeMood(ctx context.Context, text string, userMood types.MoodLabel) types.AnalysisResult {
	if a.enhancer != nil && strings.TrimSpace(text) != "" {
		if res, err := a.enhancer.AnalyzeSentiment(ctx, text); err != nil {
			slog.Warn("AI sentiment analysis failed, using local fallback", slog.String("error", err.Error()))
			a.fallback()
		} else if res != nil && res.Mood != "" {
			out := *res
			if out.Sentiment == "" {
				out.Sentiment = types.SENTIMENT_NEUTRAL
			}
			if userMood != "" {
				out.Mood = userMood
			}
			return out
		} else {
			// responded but unusable, same as a failure
			a.fallback()
		}
	}

	analysis := a.Analyze(text)

	if userMood != "" {
		analysis.Mood = userMood
		return analysis
	}

	analysis.Mood = types.MOOD_NEUTRAL
	switch analysis.Sentiment {
	case types.SENTIMENT_POSITIVE:
		if analysis.Score > 50 {
			analysis.Mood = types.MOOD_VERY_HAPPY
		} else {
			analysis.Mood = types.MOOD_HAPPY
		}
	case types.SENTIMENT_NEGATIVE:
		if analysis.Score < -50 {
			analysis.Mood = types.MOOD_VERY_SAD
		} else {
			analysis.Mood = types.MOOD_SAD
		}
	}

	return analysis
}
