package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/panseek/panseek/internal/core/domain"
	"github.com/panseek/panseek/internal/core/ports/driven"
)

// Ensure TransferStore implements the interface.
var _ driven.TransferStore = (*TransferStore)(nil)

// TransferStore is an in-memory implementation of driven.TransferStore.
type TransferStore struct {
	mu    sync.RWMutex
	tasks map[string]domain.TransferTask
}

// NewTransferStore creates a new in-memory transfer store.
func NewTransferStore() *TransferStore {
	return &TransferStore{
		tasks: make(map[string]domain.TransferTask),
	}
}

// Save stores or replaces a task by ID.
func (s *TransferStore) Save(_ context.Context, task domain.TransferTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = task
	return nil
}

// Get retrieves a task by ID.
func (s *TransferStore) Get(_ context.Context, id string) (*domain.TransferTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &task, nil
}

// List returns all tasks ordered by StartedAt descending.
func (s *TransferStore) List(_ context.Context) ([]domain.TransferTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.TransferTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		result = append(result, task)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartedAt.After(result[j].StartedAt)
	})
	return result, nil
}

// EvictTerminal removes completed and failed tasks that finished
// before cutoff.
func (s *TransferStore) EvictTerminal(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, task := range s.tasks {
		if task.Status.Terminal() && task.FinishedAt.Before(cutoff) {
			delete(s.tasks, id)
			removed++
		}
	}
	return removed, nil
}

// Count returns the number of stored tasks.
func (s *TransferStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks), nil
}
