package v1

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/moodnote-ai/moodnote/app/core"
	"github.com/moodnote-ai/moodnote/pkg/errors"
	"github.com/moodnote-ai/moodnote/pkg/i18n"
	"github.com/moodnote-ai/moodnote/pkg/sentiment"
)

type AdviceLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAdviceLogic(ctx context.Context, core *core.Core) *AdviceLogic {
	return &AdviceLogic{
		ctx:  ctx,
		core: core,
	}
}

// fallbackAdvice is returned whenever the AI collaborator is unavailable or
// fails. Advice is best effort, never an error to the caller.
const fallbackAdvice = `Thank you for sharing.

While AI advice isn't available right now, here are some general supportive suggestions:

- Consider speaking with a mental health professional
- Reach out to trusted friends or family members
- Practice self-care activities that you enjoy
- Consider journaling your thoughts and feelings
- Remember that seeking help is a sign of strength

Note: For immediate support, please reach out to your local emergency resources.`

type AdviceResult struct {
	Advice           string `json:"advice"`
	DistressDetected bool   `json:"distress_detected"`
}

// GetAdvice answers a free-form question. A question carrying distress
// phrases short-circuits to the crisis flag without calling the AI, the
// caller is expected to surface emergency resources instead of advice.
func (l *AdviceLogic) GetAdvice(question string) (*AdviceResult, error) {
	if question == "" {
		return nil, errors.New("AdviceLogic.GetAdvice.check", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	if sentiment.DetectDistress(question) {
		l.core.Metrics().DistressDetectedInc("advice")
		return &AdviceResult{DistressDetected: true}, nil
	}

	contextLine := l.recentContext()

	if driver := l.core.Srv().AI(); driver != nil {
		timer := l.core.Metrics().AIRequestTimer("advice")
		advice, err := driver.GetAdvice(l.ctx, question, contextLine)
		timer.ObserveDuration()
		if err == nil && advice != "" {
			return &AdviceResult{Advice: advice}, nil
		}
		if err != nil {
			slog.Warn("AI advice failed, using fallback", slog.String("error", err.Error()))
		}
	}

	l.core.Metrics().AIFallbackInc("advice")
	return &AdviceResult{Advice: fallbackAdvice}, nil
}

// recentContext summarizes the latest entry so the advisor knows the current
// state. Empty when the journal is empty.
func (l *AdviceLogic) recentContext() string {
	recent, err := l.core.Store().JournalEntryStore().List(l.ctx, 3)
	if err != nil || len(recent) == 0 {
		return ""
	}
	return fmt.Sprintf("Recent mood: %s, Stress level: %d%%", recent[0].Mood, recent[0].StressLevel)
}
