package sentiment_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodnote-ai/moodnote/pkg/sentiment"
	"github.com/moodnote-ai/moodnote/pkg/types"
)

func TestAnalyze_EmptyAndWhitespace(t *testing.T) {
	a := sentiment.NewAnalyzer(nil)

	for _, text := range []string{"", "   ", "\n\t  \n"} {
		res := a.Analyze(text)
		assert.Equal(t, types.SENTIMENT_NEUTRAL, res.Sentiment)
		assert.Equal(t, 0, res.Score)
		assert.Equal(t, 0, res.StressLevel)
	}
}

func TestAnalyze_PositiveText(t *testing.T) {
	a := sentiment.NewAnalyzer(nil)

	// 2 positive / 5 tokens -> ratio 0.4 -> score 40
	res := a.Analyze("I am happy and grateful")
	assert.Equal(t, types.SENTIMENT_POSITIVE, res.Sentiment)
	assert.Equal(t, 40, res.Score)
	assert.Equal(t, 0, res.StressLevel)
}

func TestAnalyze_StressText(t *testing.T) {
	a := sentiment.NewAnalyzer(nil)

	// anxious, stressed, deadline all hit the stress lexicon
	res := a.Analyze("I feel anxious and stressed about the deadline")
	assert.Greater(t, res.StressLevel, 0)
	// anxious and stressed also hit the negative lexicon
	assert.Equal(t, types.SENTIMENT_NEGATIVE, res.Sentiment)
}

func TestAnalyze_PunctuationIsStripped(t *testing.T) {
	a := sentiment.NewAnalyzer(nil)

	res := a.Analyze("Happy!!! Really, truly happy...")
	assert.Equal(t, types.SENTIMENT_POSITIVE, res.Sentiment)
	assert.Equal(t, 40, res.Score) // 2 of 5 tokens
}

func TestAnalyze_NeutralWithinThreshold(t *testing.T) {
	a := sentiment.NewAnalyzer(nil)

	// 1 positive / 21 tokens -> ratio ~0.048, inside the ±0.05 dead zone
	text := "good one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen sixteen seventeen eighteen nineteen twenty"
	res := a.Analyze(text)
	assert.Equal(t, types.SENTIMENT_NEUTRAL, res.Sentiment)
	assert.Equal(t, 5, res.Score) // still scaled and rounded
}

func TestAnalyzeMood_UserMoodAlwaysWins(t *testing.T) {
	a := sentiment.NewAnalyzer(nil)

	res := a.AnalyzeMood(context.Background(), "terrible awful horrible miserable day", types.MOOD_HAPPY)
	assert.Equal(t, types.MOOD_HAPPY, res.Mood)
	// numeric fields still reflect the text
	assert.Equal(t, types.SENTIMENT_NEGATIVE, res.Sentiment)
	assert.Negative(t, res.Score)
}

func TestAnalyzeMood_Inference(t *testing.T) {
	a := sentiment.NewAnalyzer(nil)

	cases := []struct {
		text string
		want types.MoodLabel
	}{
		{"happy grateful", types.MOOD_VERY_HAPPY},         // score 100 > 50
		{"I am happy and grateful", types.MOOD_HAPPY},     // score 40
		{"sad lonely hopeless", types.MOOD_VERY_SAD},      // score -100 < -50
		{"I was sad about the news today", types.MOOD_SAD},
		{"went to the shop and bought bread", types.MOOD_NEUTRAL},
		{"", types.MOOD_NEUTRAL},
	}
	for _, c := range cases {
		res := a.AnalyzeMood(context.Background(), c.text, "")
		assert.Equal(t, c.want, res.Mood, "text: %q", c.text)
	}
}

type stubEnhancer struct {
	res *types.AnalysisResult
	err error
}

func (s *stubEnhancer) AnalyzeSentiment(_ context.Context, _ string) (*types.AnalysisResult, error) {
	return s.res, s.err
}

func TestAnalyzeMood_EnhancerReplacesLocal(t *testing.T) {
	enhancer := &stubEnhancer{res: &types.AnalysisResult{
		Sentiment:   types.SENTIMENT_NEGATIVE,
		Score:       -30,
		StressLevel: 80,
		Mood:        types.MOOD_SAD,
	}}
	a := sentiment.NewAnalyzer(enhancer)

	res := a.AnalyzeMood(context.Background(), "happy grateful", "")
	require.Equal(t, types.MOOD_SAD, res.Mood)
	assert.Equal(t, -30, res.Score)
	assert.Equal(t, 80, res.StressLevel)
}

func TestAnalyzeMood_UserMoodOverridesEnhancer(t *testing.T) {
	enhancer := &stubEnhancer{res: &types.AnalysisResult{
		Sentiment: types.SENTIMENT_NEGATIVE,
		Mood:      types.MOOD_VERY_SAD,
	}}
	a := sentiment.NewAnalyzer(enhancer)

	res := a.AnalyzeMood(context.Background(), "whatever", types.MOOD_HAPPY)
	assert.Equal(t, types.MOOD_HAPPY, res.Mood)
}

func TestAnalyzeMood_EnhancerFailureFallsBack(t *testing.T) {
	for _, enhancer := range []sentiment.Enhancer{
		&stubEnhancer{err: fmt.Errorf("model unavailable")},
		&stubEnhancer{res: nil},
		&stubEnhancer{res: &types.AnalysisResult{}}, // empty mood means unusable
	} {
		a := sentiment.NewAnalyzer(enhancer)
		res := a.AnalyzeMood(context.Background(), "I am happy and grateful", "")
		assert.Equal(t, types.MOOD_HAPPY, res.Mood)
		assert.Equal(t, 40, res.Score)
	}
}

func TestAnalyzeMood_FallbackObserver(t *testing.T) {
	var fallbacks int
	observe := func() { fallbacks++ }

	for _, enhancer := range []sentiment.Enhancer{
		&stubEnhancer{err: fmt.Errorf("model unavailable")},
		&stubEnhancer{res: nil},
		&stubEnhancer{res: &types.AnalysisResult{}},
	} {
		a := sentiment.NewAnalyzer(enhancer)
		a.SetFallbackObserver(observe)
		a.AnalyzeMood(context.Background(), "I am happy and grateful", "")
	}
	assert.Equal(t, 3, fallbacks)

	// no observation when the enhancer result is used
	fallbacks = 0
	a := sentiment.NewAnalyzer(&stubEnhancer{res: &types.AnalysisResult{Mood: types.MOOD_SAD}})
	a.SetFallbackObserver(observe)
	a.AnalyzeMood(context.Background(), "whatever", "")
	assert.Zero(t, fallbacks)

	// nor when no enhancer is configured at all
	local := sentiment.NewAnalyzer(nil)
	local.SetFallbackObserver(observe)
	local.AnalyzeMood(context.Background(), "I am happy and grateful", "")
	assert.Zero(t, fallbacks)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"hello", "world", "it_s", "fine"}, sentiment.Tokenize("Hello, WORLD! it_s fine."))
	assert.Empty(t, sentiment.Tokenize("!!! ... ---"))
}
