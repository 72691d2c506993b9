package membership

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollaboratorIndexCaseInsensitive(t *testing.T) {
	api := &fakeAPI{collaborators: map[string][]string{"org1": {"Alice", "BOB"}}}
	index := NewCollaboratorIndex(api.ListOutsideCollaborators, 0, 0)

	for _, username := range []string{"alice", "ALICE", "bob"} {
		ok, err := index.Contains(context.Background(), "org1", username)
		require.NoError(t, err)
		assert.True(t, ok, username)
	}

	ok, err := index.Contains(context.Background(), "org1", "carol")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 1, api.listCalls["org1"])
}

func TestCollaboratorIndexListsEachOrgOnce(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	list := func(_ context.Context, org string) ([]string, error) {
		calls.Add(1)
		<-release
		return []string{"alice"}, nil
	}
	index := NewCollaboratorIndex(list, 0, 0)

	var wg sync.WaitGroup
	results := make([]bool, 20)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := index.Contains(context.Background(), "org1", "alice")
			assert.NoError(t, err)
			results[i] = ok
		}()
	}
	close(release)
	wg.Wait()

	for _, ok := range results {
		assert.True(t, ok)
	}
	// Callers arriving after the shared listing returned hit the cache.
	assert.Equal(t, int32(1), calls.Load())
}

func TestCollaboratorIndexDoesNotCacheFailures(t *testing.T) {
	attempts := 0
	list := func(_ context.Context, org string) ([]string, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("HTTP 502")
		}
		return []string{"alice"}, nil
	}
	index := NewCollaboratorIndex(list, 0, 0)

	_, err := index.Contains(context.Background(), "org1", "alice")
	require.Error(t, err)

	ok, err := index.Contains(context.Background(), "org1", "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, attempts)
}
