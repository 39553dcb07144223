package v1_test

import (
	"context"
	"sync"
	"testing"

	"github.com/moodnote-ai/moodnote/app/core"
)

var (
	ctx = context.Background()

	coreOnce sync.Once
	testCore *core.Core
)

func setupCore() *core.Core {
	coreOnce.Do(func() {
		testCore = core.MustSetupCore(core.CoreConfig{
			Store: core.StoreConfig{Driver: "memory"},
		})
	})
	return testCore
}

func resetEntries(t *testing.T) {
	t.Helper()
	if err := setupCore().Store().JournalEntryStore().Clear(ctx); err != nil {
		t.Fatal(err)
	}
}
