// Package ai defines the optional text-generation collaborator contract and
// the prompt/response plumbing shared by its drivers.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/moodnote-ai/moodnote/pkg/types"
)

// Driver is a text-generation backend. Both operations are best effort:
// callers must treat any error as "collaborator unavailable" and fall back,
// never retry.
type Driver interface {
	AnalyzeSentiment(ctx context.Context, text string) (*types.AnalysisResult, error)
	GetAdvice(ctx context.Context, question, contextLine string) (string, error)
}

const analyzePromptTemplate = `Analyze this mental health journal entry and return ONLY a valid JSON object with these exact fields:
{
    "sentiment": "positive" or "negative" or "neutral",
    "score": number between -100 and 100,
    "stressLevel": number between 0 and 100,
    "mood": "very-happy" or "happy" or "neutral" or "sad" or "very-sad"
}

Text: "%s"`

const advicePromptTemplate = `You are a supportive mental health advisor. Provide empathetic, practical, and helpful advice for this question or concern. Be encouraging, non-judgmental, and suggest actionable steps when appropriate. Keep your response under 300 words and focus on supportive guidance.

Question/Concern: "%s"
%s
Please provide helpful, supportive advice:`

// AnalyzePrompt renders the sentiment prompt, truncating the entry so one
// oversized entry cannot blow the model context.
func AnalyzePrompt(text string) string {
	return fmt.Sprintf(analyzePromptTemplate, truncate(text, 1000))
}

func AdvicePrompt(question, contextLine string) string {
	extra := ""
	if contextLine != "" {
		extra = fmt.Sprintf("Context: \"%s\"\n", contextLine)
	}
	return fmt.Sprintf(advicePromptTemplate, truncate(question, 500), extra)
}

var jsonBlock = regexp.MustCompile(`\{[\s\S]*\}`)

// ParseAnalysisResult extracts the first JSON object from raw model output.
// Models often wrap JSON in prose or code fences, so the match is lenient.
func ParseAnalysisResult(raw string) (*types.AnalysisResult, error) {
	match := jsonBlock.FindString(raw)
	if match == "" {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var res types.AnalysisResult
	if err := json.Unmarshal([]byte(match), &res); err != nil {
		return nil, fmt.Errorf("unmarshal model output: %w", err)
	}
	if !res.Mood.Valid() {
		return nil, fmt.Errorf("model returned invalid mood %q", res.Mood)
	}
	return &res, nil
}

func truncate(s string, max int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max])
}
