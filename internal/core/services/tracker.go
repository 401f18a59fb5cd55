package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/panseek/panseek/internal/core/domain"
	"github.com/panseek/panseek/internal/core/ports/driven"
	"github.com/panseek/panseek/internal/core/ports/driving"
	"github.com/panseek/panseek/internal/logger"
)

// Ensure TransferTracker implements the interface.
var _ driving.TransferMonitor = (*TransferTracker)(nil)

// TransferTracker records the status of in-flight background
// materialization tasks. It enforces the monotone lifecycle
// pending -> transferring -> completed|failed on top of a plain
// TransferStore, and evicts terminal tasks after a TTL so the
// registry stays bounded across the process lifetime.
type TransferTracker struct {
	store driven.TransferStore
	cfg   domain.TrackerConfig
	clock func() time.Time

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewTransferTracker creates a tracker over store.
func NewTransferTracker(store driven.TransferStore, cfg domain.TrackerConfig) *TransferTracker {
	return &TransferTracker{
		store: store,
		cfg:   cfg,
		clock: time.Now,
	}
}

// Create registers a new pending task and returns its ID.
func (t *TransferTracker) Create(ctx context.Context, title, destPath string) (string, error) {
	task := domain.TransferTask{
		ID:        uuid.New().String(),
		Status:    domain.TransferPending,
		Title:     title,
		DestPath:  destPath,
		StartedAt: t.clock(),
	}
	if err := t.store.Save(ctx, task); err != nil {
		return "", fmt.Errorf("save task: %w", err)
	}
	logger.Debug("Tracker: created task %s for %q", task.ID, destPath)

	// Registry cap: when exceeded, shed terminal tasks immediately
	// rather than waiting for the TTL sweep.
	if t.cfg.MaxEntries > 0 {
		if n, err := t.store.Count(ctx); err == nil && n > t.cfg.MaxEntries {
			if _, err := t.store.EvictTerminal(ctx, t.clock()); err != nil {
				logger.Warn("Tracker: cap eviction failed: %v", err)
			}
		}
	}

	return task.ID, nil
}

// MarkTransferring moves a task from pending to transferring.
func (t *TransferTracker) MarkTransferring(ctx context.Context, id string) error {
	return t.transition(ctx, id, domain.TransferRunning, "")
}

// MarkCompleted moves a task to the completed terminal state.
func (t *TransferTracker) MarkCompleted(ctx context.Context, id string) error {
	return t.transition(ctx, id, domain.TransferCompleted, "")
}

// MarkFailed moves a task to the failed terminal state, recording the
// failure message. This is the only place a detached transfer failure
// is ever observed.
func (t *TransferTracker) MarkFailed(ctx context.Context, id string, cause string) error {
	return t.transition(ctx, id, domain.TransferFailed, cause)
}

// transition applies one status change under the monotone lifecycle.
func (t *TransferTracker) transition(ctx context.Context, id string, next domain.TransferStatus, cause string) error {
	// Serialise transitions so two racing updates cannot both read
	// the same prior status.
	t.mu.Lock()
	defer t.mu.Unlock()

	task, err := t.store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get task %s: %w", id, err)
	}
	if !task.Status.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, task.Status, next)
	}

	task.Status = next
	task.Error = cause
	if next.Terminal() {
		task.FinishedAt = t.clock()
	}
	if err := t.store.Save(ctx, *task); err != nil {
		return fmt.Errorf("save task %s: %w", id, err)
	}
	logger.Debug("Tracker: task %s -> %s", id, next)
	return nil
}

// ListTransfers returns tracked tasks, newest first.
func (t *TransferTracker) ListTransfers(ctx context.Context) ([]domain.TransferTask, error) {
	return t.store.List(ctx)
}

// GetTransfer returns one task by ID.
func (t *TransferTracker) GetTransfer(ctx context.Context, id string) (*domain.TransferTask, error) {
	return t.store.Get(ctx, id)
}

// Start runs the eviction loop until Stop is called. Terminal tasks
// older than the configured TTL are removed on every sweep.
func (t *TransferTracker) Start(ctx context.Context) {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.stopCh = make(chan struct{})
	stopCh := t.stopCh
	t.mu.Unlock()

	interval := t.cfg.TTL / 4
	if interval <= 0 {
		interval = time.Minute
	}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-stopCh:
				return
			case <-ticker.C:
				t.Sweep(ctx)
			}
		}
	}()
}

// Stop halts the eviction loop and waits for it to exit.
func (t *TransferTracker) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	close(t.stopCh)
	t.mu.Unlock()
	t.wg.Wait()
}

// Sweep evicts terminal tasks that finished before now-TTL. Exposed
// for tests and for one-shot CLI use.
func (t *TransferTracker) Sweep(ctx context.Context) {
	if t.cfg.TTL <= 0 {
		return
	}
	cutoff := t.clock().Add(-t.cfg.TTL)
	n, err := t.store.EvictTerminal(ctx, cutoff)
	if err != nil {
		logger.Warn("Tracker: eviction failed: %v", err)
		return
	}
	if n > 0 {
		logger.Debug("Tracker: evicted %d terminal tasks", n)
	}
}
