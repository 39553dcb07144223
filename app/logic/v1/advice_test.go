package v1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/moodnote-ai/moodnote/app/logic/v1"
)

func setupAdviceLogic() *v1.AdviceLogic {
	return v1.NewAdviceLogic(ctx, setupCore())
}

func Test_GetAdviceFallback(t *testing.T) {
	resetEntries(t)

	// no AI provider configured, the fixed fallback text comes back
	res, err := setupAdviceLogic().GetAdvice("how can I sleep better?")
	require.NoError(t, err)
	assert.False(t, res.DistressDetected)
	assert.Contains(t, res.Advice, "Thank you for sharing")
}

func Test_GetAdviceDistressGate(t *testing.T) {
	resetEntries(t)

	res, err := setupAdviceLogic().GetAdvice("everything feels hopeless")
	require.NoError(t, err)
	assert.True(t, res.DistressDetected)
	assert.Empty(t, res.Advice)
}

func Test_GetAdviceValidation(t *testing.T) {
	_, err := setupAdviceLogic().GetAdvice("")
	require.Error(t, err)
}
