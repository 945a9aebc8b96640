package background

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covergen-utils/internal/config"
)

func TestInMemoryTaskStoreLifecycle(t *testing.T) {
	store := NewInMemoryTaskStore()
	ctx := context.Background()

	result := &TaskResult{
		ProcessID: "gen_test-1",
		Type:      TaskTypeGenerate,
		Status:    TaskStatusAccepted,
		CreatedAt: time.Now(),
	}

	require.NoError(t, store.Store(ctx, result))

	got, err := store.Get(ctx, "gen_test-1")
	require.NoError(t, err)
	assert.Equal(t, TaskStatusAccepted, got.Status)

	got.Status = TaskStatusSuccess
	require.NoError(t, store.Update(ctx, got))

	updated, err := store.Get(ctx, "gen_test-1")
	require.NoError(t, err)
	assert.Equal(t, TaskStatusSuccess, updated.Status)

	require.NoError(t, store.Delete(ctx, "gen_test-1"))
	_, err = store.Get(ctx, "gen_test-1")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestInMemoryTaskStoreMissingEntries(t *testing.T) {
	store := NewInMemoryTaskStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "gen_missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	err = store.Update(ctx, &TaskResult{ProcessID: "gen_missing"})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	err = store.Delete(ctx, "gen_missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestInMemoryTaskStoreCleanup(t *testing.T) {
	store := NewInMemoryTaskStore()
	ctx := context.Background()

	old := &TaskResult{
		ProcessID: "gen_old",
		Type:      TaskTypeGenerate,
		Status:    TaskStatusSuccess,
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}
	fresh := &TaskResult{
		ProcessID: "gen_fresh",
		Type:      TaskTypeGenerate,
		Status:    TaskStatusAccepted,
		CreatedAt: time.Now(),
	}

	require.NoError(t, store.Store(ctx, old))
	require.NoError(t, store.Store(ctx, fresh))

	require.NoError(t, store.Cleanup(ctx, 24*time.Hour))

	_, err := store.Get(ctx, "gen_old")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = store.Get(ctx, "gen_fresh")
	assert.NoError(t, err)
}

func TestInMemoryTaskStoreList(t *testing.T) {
	store := NewInMemoryTaskStore()
	ctx := context.Background()

	for _, id := range []string{"gen_a", "gen_b", "gen_c"} {
		require.NoError(t, store.Store(ctx, &TaskResult{
			ProcessID: id,
			Type:      TaskTypeGenerate,
			Status:    TaskStatusAccepted,
			CreatedAt: time.Now(),
		}))
	}

	results, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestValidateTaskManagerConfig(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	workers, queue, err := validateTaskManagerConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.Workers.PoolSize, workers)
	assert.Equal(t, cfg.Workers.QueueSize, queue)

	cfg.Workers.PoolSize = 0
	workers, _, err = validateTaskManagerConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxWorkers, workers)

	cfg.Workers.PoolSize = MaxWorkers + 1
	_, _, err = validateTaskManagerConfig(cfg)
	assert.Error(t, err)

	cfg.Workers.PoolSize = 10
	cfg.Workers.QueueSize = MaxQueueSize + 1
	_, _, err = validateTaskManagerConfig(cfg)
	assert.Error(t, err)
}

func TestTaskCompletionLogShape(t *testing.T) {
	processingTime := 250 * time.Millisecond
	result := &TaskResult{
		ProcessID:      "gen_log-1",
		Type:           TaskTypeGenerate,
		Status:         TaskStatusSuccess,
		ProcessingTime: &processingTime,
	}

	entry := CreateTaskCompletionLog(result)

	assert.Equal(t, "gen_log-1", entry.ProcessID)
	assert.Equal(t, "SUCCESS", entry.Status)
	assert.Equal(t, "generate", entry.Operation)
	assert.Equal(t, "250ms", entry.ProcessingTime)
}

func TestTaskCompletionLogFormatsSeconds(t *testing.T) {
	processingTime := 2500 * time.Millisecond
	entry := CreateTaskCompletionLog(&TaskResult{
		ProcessID:      "gen_log-3",
		Type:           TaskTypeGenerate,
		Status:         TaskStatusSuccess,
		ProcessingTime: &processingTime,
	})

	assert.Equal(t, "2.50s", entry.ProcessingTime)
}

func TestTaskCompletionLogNilProcessingTime(t *testing.T) {
	entry := CreateTaskCompletionLog(&TaskResult{
		ProcessID: "gen_log-2",
		Type:      TaskTypeGenerate,
		Status:    TaskStatusFailure,
		Error:     "boom",
	})

	assert.Equal(t, "0s", entry.ProcessingTime)
	assert.Equal(t, "boom", entry.Error)
}
