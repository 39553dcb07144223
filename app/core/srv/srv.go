package srv

import (
	"github.com/moodnote-ai/moodnote/pkg/ai"
)

type Srv struct {
	ai ai.Driver
}

func SetupSrvs(opts ...ApplyFunc) *Srv {
	a := &Srv{}

	for _, opt := range opts {
		opt(a)
	}
	return a
}

type ApplyFunc func(*Srv)

// AI returns the configured driver, nil when no provider is configured.
// Callers must handle nil and fall back to local analysis.
func (s *Srv) AI() ai.Driver {
	return s.ai
}
