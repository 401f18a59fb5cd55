package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panseek/panseek/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleTask(id string, status domain.TransferStatus) domain.TransferTask {
	task := domain.TransferTask{
		ID:        id,
		Status:    status,
		Title:     "Dragon S1",
		DestPath:  "/panseek/dragon-s1",
		StartedAt: time.Now().UTC().Truncate(time.Second),
	}
	if status.Terminal() {
		task.FinishedAt = task.StartedAt.Add(time.Minute)
	}
	return task
}

func TestStore_SaveGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task := sampleTask("t1", domain.TransferPending)
	require.NoError(t, store.Save(ctx, task))

	got, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, domain.TransferPending, got.Status)
	assert.Equal(t, task.Title, got.Title)
	assert.Equal(t, task.DestPath, got.DestPath)
	assert.True(t, got.FinishedAt.IsZero())
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_SaveUpsertsStatus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task := sampleTask("t1", domain.TransferPending)
	require.NoError(t, store.Save(ctx, task))

	task.Status = domain.TransferFailed
	task.FinishedAt = task.StartedAt.Add(time.Minute)
	task.Error = "link expired"
	require.NoError(t, store.Save(ctx, task))

	got, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, domain.TransferFailed, got.Status)
	assert.Equal(t, "link expired", got.Error)
	assert.False(t, got.FinishedAt.IsZero())

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_ListNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	for i, id := range []string{"old", "mid", "new"} {
		task := sampleTask(id, domain.TransferPending)
		task.StartedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.Save(ctx, task))
	}

	tasks, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "new", tasks[0].ID)
	assert.Equal(t, "mid", tasks[1].ID)
	assert.Equal(t, "old", tasks[2].ID)
}

func TestStore_EvictTerminal(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	stale := sampleTask("stale", domain.TransferCompleted)
	stale.StartedAt = now.Add(-3 * time.Hour)
	stale.FinishedAt = now.Add(-2 * time.Hour)
	require.NoError(t, store.Save(ctx, stale))

	fresh := sampleTask("fresh", domain.TransferCompleted)
	fresh.FinishedAt = now
	require.NoError(t, store.Save(ctx, fresh))

	running := sampleTask("running", domain.TransferRunning)
	running.StartedAt = now.Add(-3 * time.Hour)
	require.NoError(t, store.Save(ctx, running))

	removed, err := store.EvictTerminal(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = store.Get(ctx, "stale")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.Get(ctx, "fresh")
	assert.NoError(t, err)
	_, err = store.Get(ctx, "running")
	assert.NoError(t, err)
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, sampleTask("t1", domain.TransferCompleted)))
	require.NoError(t, store.Close())

	// Reopening runs migrations again; they must be idempotent and
	// the journal intact.
	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, domain.TransferCompleted, got.Status)
}

func TestStore_CountEmpty(t *testing.T) {
	store := newTestStore(t)

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
