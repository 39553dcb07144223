package sqlstore

import (
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sqlx.Open does not dial, so fake replicas are fine here.
func testProvider(t *testing.T, replicaCount int) *SqlProvider {
	t.Helper()
	p := &SqlProvider{}
	for i := 0; i < replicaCount; i++ {
		db, err := sqlx.Open("postgres", "postgres://localhost/test?sslmode=disable")
		require.NoError(t, err)
		p.replicas = append(p.replicas, db)
	}
	return p
}

func TestGetReplicaRoundRobin(t *testing.T) {
	p := testProvider(t, 2)

	first := p.GetReplica()
	second := p.GetReplica()
	assert.NotSame(t, first, second)
	assert.Same(t, first, p.GetReplica())
}

func TestGetReplicaConcurrent(t *testing.T) {
	p := testProvider(t, 3)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.NotNil(t, p.GetReplica())
			}
		}()
	}
	wg.Wait()
}

func TestGetReplicaSingle(t *testing.T) {
	p := testProvider(t, 1)
	assert.Same(t, p.replicas[0], p.GetReplica())
	assert.Same(t, p.replicas[0], p.GetReplica())
}
