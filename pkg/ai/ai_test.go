package ai_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodnote-ai/moodnote/pkg/ai"
	"github.com/moodnote-ai/moodnote/pkg/types"
)

func TestParseAnalysisResult(t *testing.T) {
	raw := "Sure! Here is the analysis:\n```json\n{\"sentiment\":\"negative\",\"score\":-40,\"stressLevel\":70,\"mood\":\"sad\"}\n```"

	res, err := ai.ParseAnalysisResult(raw)
	require.NoError(t, err)
	assert.Equal(t, types.SENTIMENT_NEGATIVE, res.Sentiment)
	assert.Equal(t, -40, res.Score)
	assert.Equal(t, 70, res.StressLevel)
	assert.Equal(t, types.MOOD_SAD, res.Mood)
}

func TestParseAnalysisResult_Errors(t *testing.T) {
	cases := []string{
		"the entry sounds sad",                   // no JSON at all
		"{\"mood\": \"melancholic\"}",            // mood outside the enum
		"{\"sentiment\": \"negative\", broken",   // not valid JSON
	}
	for _, raw := range cases {
		_, err := ai.ParseAnalysisResult(raw)
		assert.Error(t, err, "raw: %q", raw)
	}
}

func TestAnalyzePromptTruncates(t *testing.T) {
	long := make([]rune, 5000)
	for i := range long {
		long[i] = 'a'
	}
	prompt := ai.AnalyzePrompt(string(long))
	assert.Less(t, len(prompt), 2000)
}

func TestAdvicePromptContext(t *testing.T) {
	withCtx := ai.AdvicePrompt("how do I sleep better", "Recent mood: sad, Stress level: 60%")
	assert.Contains(t, withCtx, "Recent mood: sad")

	without := ai.AdvicePrompt("how do I sleep better", "")
	assert.NotContains(t, without, "Context:")
}
