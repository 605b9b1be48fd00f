package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/eth-easl/analyzer/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDB(t *testing.T) *SQLStore {
	t.Helper()
	s, err := NewSQLStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGet(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	rec := &common.AnalysisRecord{
		Algorithm:      "Linear Search",
		Items:          100,
		Steps:          25,
		StartTime:      1_700_000_000_000,
		EndTime:        1_700_000_000_250,
		TotalTimeMs:    250,
		TimeComplexity: "O(n)",
		GraphBase64:    "data:image/png;base64,AAAA",
		GraphPath:      "/tmp/graph.png",
	}

	id, err := s.Save(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)

	rec.ID = id
	assert.Equal(t, rec, got)
}

func TestIdsIncrease(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	first, err := s.Save(ctx, &common.AnalysisRecord{Algorithm: "Bubble Sort", Items: 10, Steps: 1, TimeComplexity: "O(n²)"})
	require.NoError(t, err)
	second, err := s.Save(ctx, &common.AnalysisRecord{Algorithm: "Nested Loops", Items: 10, Steps: 1, TimeComplexity: "O(n²)"})
	require.NoError(t, err)

	assert.Greater(t, second, first)

	got, err := s.Get(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "Nested Loops", got.Algorithm)
	assert.Empty(t, got.GraphBase64)
}

func TestGetMissing(t *testing.T) {
	s := tempDB(t)

	_, err := s.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConcurrentSaves(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	const writers = 64
	var (
		wg    sync.WaitGroup
		mutex sync.Mutex
		ids   = make(map[int64]bool)
		errs  []error
	)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			id, err := s.Save(ctx, &common.AnalysisRecord{
				Algorithm:      fmt.Sprintf("writer-%d", i),
				Items:          i + 1,
				Steps:          1,
				TimeComplexity: "O(n)",
			})

			mutex.Lock()
			defer mutex.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			ids[id] = true
		}(i)
	}
	wg.Wait()

	assert.Empty(t, errs)
	assert.Len(t, ids, writers)

	for id := range ids {
		got, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Contains(t, got.Algorithm, "writer-")
	}
}
