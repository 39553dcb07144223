package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLang(t *testing.T) {
	l := NewLocalizer("zh-CN", "en")

	assert.NotEqual(t, ERROR_INTERNAL, l.Get("en", ERROR_INTERNAL))
	assert.NotEqual(t, ERROR_INTERNAL, l.Get("zh-CN", ERROR_INTERNAL))

	// unknown language falls back to the id
	assert.Equal(t, ERROR_INTERNAL, l.Get("fr", ERROR_INTERNAL))
	// unknown id falls back to the id
	assert.Equal(t, "error.unknown", l.Get("en", "error.unknown"))
}
