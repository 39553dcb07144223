package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moodnote-ai/moodnote/pkg/errors"
)

func TestTraceChain(t *testing.T) {
	err := errors.New("EntryLogic.CreateEntry.store", "error.internal", fmt.Errorf("boom"))
	err = errors.Trace("handler.CreateEntry", err)

	assert.Equal(t, http.StatusInternalServerError, err.GetCode())
	assert.Equal(t, "error.internal", err.Message())
	assert.Contains(t, err.Error(), "EntryLogic.CreateEntry.store->handler.CreateEntry")
}

func TestCodeOverride(t *testing.T) {
	err := errors.New("api.bind", "error.invalidargument", nil).Code(http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, err.GetCode())

	wrapped := errors.Wrap(err, "outer", "error.invalidargument")
	assert.Equal(t, http.StatusBadRequest, wrapped.GetCode())
}

func TestTracePlainError(t *testing.T) {
	err := errors.Trace("somewhere", fmt.Errorf("plain failure"))
	assert.Equal(t, "plain failure", err.Message())
	assert.ErrorContains(t, err, "plain failure")
}
