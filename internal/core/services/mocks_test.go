package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/panseek/panseek/internal/core/domain"
	"github.com/panseek/panseek/internal/core/ports/driven"
)

// fakeGateway is a canned SearchGateway.
type fakeGateway struct {
	mu          sync.Mutex
	reply       *domain.SearchReply
	err         error
	calls       int
	lastKeyword string
}

func (f *fakeGateway) Search(_ context.Context, keyword string) (*domain.SearchReply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastKeyword = keyword
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeSessionStore is a map-backed SessionStore.
type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.SearchSession
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]domain.SearchSession)}
}

func (s *fakeSessionStore) Put(_ context.Context, session domain.SearchSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.OwnerID] = session
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, ownerID string) (*domain.SearchSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[ownerID]
	if !ok {
		return nil, domain.ErrNoSession
	}
	return &session, nil
}

func (s *fakeSessionStore) SetPage(_ context.Context, ownerID string, page int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[ownerID]
	if !ok {
		return domain.ErrNoSession
	}
	session.Page = page
	s.sessions[ownerID] = session
	return nil
}

func (s *fakeSessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// fakeTransferStore is a map-backed TransferStore.
type fakeTransferStore struct {
	mu    sync.Mutex
	tasks map[string]domain.TransferTask
}

func newFakeTransferStore() *fakeTransferStore {
	return &fakeTransferStore{tasks: make(map[string]domain.TransferTask)}
}

func (s *fakeTransferStore) Save(_ context.Context, task domain.TransferTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = task
	return nil
}

func (s *fakeTransferStore) Get(_ context.Context, id string) (*domain.TransferTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &task, nil
}

func (s *fakeTransferStore) List(_ context.Context) ([]domain.TransferTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.TransferTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		out = append(out, task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

func (s *fakeTransferStore) EvictTerminal(_ context.Context, cutoff time.Time) (int, error) {
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

func (s *fakeTransferStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks), nil
}

// fakeLinkGen is a canned LinkGenerator.
type fakeLinkGen struct {
	mu       sync.Mutex
	artifact *driven.ShareArtifact
	err      error
	lastPath string
}

func (f *fakeLinkGen) ShareByPath(_ context.Context, destPath string) (*driven.ShareArtifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPath = destPath
	if f.err != nil {
		return nil, f.err
	}
	return f.artifact, nil
}

// fakeTransfer is a canned TransferService that records calls.
type fakeTransfer struct {
	mu       sync.Mutex
	err      error
	calls    int
	lastLink string
	lastPath string
}

func (f *fakeTransfer) Transfer(_ context.Context, rawLink, destPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastLink = rawLink
	f.lastPath = destPath
	return f.err
}

func (f *fakeTransfer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// interface guards for the fakes
var (
	_ driven.SearchGateway   = (*fakeGateway)(nil)
	_ driven.SessionStore    = (*fakeSessionStore)(nil)
	_ driven.TransferStore   = (*fakeTransferStore)(nil)
	_ driven.LinkGenerator   = (*fakeLinkGen)(nil)
	_ driven.TransferService = (*fakeTransfer)(nil)
)
