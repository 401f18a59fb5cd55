package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panseek/panseek/internal/core/domain"
)

func newTestTracker(store *fakeTransferStore, cfg domain.TrackerConfig) *TransferTracker {
	return NewTransferTracker(store, cfg)
}

func TestTracker_CreateAndLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newFakeTransferStore()
	tracker := newTestTracker(store, domain.TrackerConfig{TTL: time.Hour})

	id, err := tracker.Create(ctx, "dragon", "dragon")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	task, err := tracker.GetTransfer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.TransferPending, task.Status)
	assert.Equal(t, "dragon", task.DestPath)
	assert.False(t, task.StartedAt.IsZero())

	require.NoError(t, tracker.MarkTransferring(ctx, id))
	require.NoError(t, tracker.MarkCompleted(ctx, id))

	task, err = tracker.GetTransfer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.TransferCompleted, task.Status)
	assert.False(t, task.FinishedAt.IsZero())
	assert.Empty(t, task.Error)
}

func TestTracker_FailureRecordsError(t *testing.T) {
	ctx := context.Background()
	tracker := newTestTracker(newFakeTransferStore(), domain.TrackerConfig{})

	id, err := tracker.Create(ctx, "dragon", "dragon")
	require.NoError(t, err)
	require.NoError(t, tracker.MarkTransferring(ctx, id))
	require.NoError(t, tracker.MarkFailed(ctx, id, "quota exceeded"))

	task, err := tracker.GetTransfer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.TransferFailed, task.Status)
	assert.Equal(t, "quota exceeded", task.Error)
}

func TestTracker_RejectsRegression(t *testing.T) {
	ctx := context.Background()
	tracker := newTestTracker(newFakeTransferStore(), domain.TrackerConfig{})

	id, err := tracker.Create(ctx, "dragon", "dragon")
	require.NoError(t, err)

	// Pending may not jump straight to completed.
	err = tracker.MarkCompleted(ctx, id)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	require.NoError(t, tracker.MarkTransferring(ctx, id))
	require.NoError(t, tracker.MarkCompleted(ctx, id))

	// Terminal states never move again.
	assert.ErrorIs(t, tracker.MarkTransferring(ctx, id), domain.ErrInvalidTransition)
	assert.ErrorIs(t, tracker.MarkFailed(ctx, id, "late"), domain.ErrInvalidTransition)

	task, err := tracker.GetTransfer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.TransferCompleted, task.Status)
}

func TestTracker_SweepEvictsExpiredTerminalTasks(t *testing.T) {
	ctx := context.Background()
	store := newFakeTransferStore()
	tracker := newTestTracker(store, domain.TrackerConfig{TTL: time.Minute})

	now := time.Now()
	tracker.clock = func() time.Time { return now }

	doneID, err := tracker.Create(ctx, "old", "old")
	require.NoError(t, err)
	require.NoError(t, tracker.MarkTransferring(ctx, doneID))
	require.NoError(t, tracker.MarkCompleted(ctx, doneID))

	pendingID, err := tracker.Create(ctx, "live", "live")
	require.NoError(t, err)

	// Two minutes later the completed task is past TTL.
	tracker.clock = func() time.Time { return now.Add(2 * time.Minute) }
	tracker.Sweep(ctx)

	_, err = tracker.GetTransfer(ctx, doneID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Non-terminal tasks are never evicted.
	task, err := tracker.GetTransfer(ctx, pendingID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransferPending, task.Status)
}

func TestTracker_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newFakeTransferStore()
	tracker := newTestTracker(store, domain.TrackerConfig{})

	now := time.Now()
	tracker.clock = func() time.Time { return now }
	_, err := tracker.Create(ctx, "first", "first")
	require.NoError(t, err)

	tracker.clock = func() time.Time { return now.Add(time.Second) }
	_, err = tracker.Create(ctx, "second", "second")
	require.NoError(t, err)

	tasks, err := tracker.ListTransfers(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "second", tasks[0].Title)
	assert.Equal(t, "first", tasks[1].Title)
}
