package core

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupConfigFromEnv(t *testing.T) {
	addr := "localhost:11111"
	os.Setenv("MOODNOTE_SERVICE_ADDRESS", addr)
	os.Setenv("MOODNOTE_TREND_WINDOW_DAYS", "14")

	cfg := LoadBaseConfigFromENV()

	assert.Equal(t, addr, cfg.Addr)
	assert.Equal(t, 14, cfg.Journal.TrendWindow())
}

func TestJournalConfigDefaults(t *testing.T) {
	var j JournalConfig
	assert.Equal(t, 30, j.TrendWindow())
	assert.Equal(t, 7, j.MoodCurveWindow())
}
