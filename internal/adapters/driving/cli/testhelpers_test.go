package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/panseek/panseek/internal/core/domain"
	"github.com/panseek/panseek/internal/core/ports/driving"
)

// stubSearchService is a canned driving.SearchService.
type stubSearchService struct {
	results []domain.ResultItem
	err     error
	keyword string
}

func (s *stubSearchService) Search(_ context.Context, keyword string) ([]domain.ResultItem, error) {
	s.keyword = keyword
	return s.results, s.err
}

// stubHandler is a no-op driving.MessageHandler. Its presence makes
// initServices skip real wiring.
type stubHandler struct{}

func (stubHandler) HandleMessage(context.Context, string, string, driving.ReplySink) error {
	return nil
}

// stubMonitor is a canned driving.TransferMonitor.
type stubMonitor struct {
	tasks []domain.TransferTask
	err   error
}

func (s *stubMonitor) ListTransfers(context.Context) ([]domain.TransferTask, error) {
	return s.tasks, s.err
}

func (s *stubMonitor) GetTransfer(_ context.Context, id string) (*domain.TransferTask, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return &s.tasks[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// setupTestServices injects stubs in place of the wired services and
// restores the previous wiring on cleanup.
func setupTestServices(t *testing.T, search *stubSearchService, monitor *stubMonitor) {
	t.Helper()

	prevHandler := messageHandler
	prevSearch := searchService
	prevMonitor := transferMonitor
	t.Cleanup(func() {
		messageHandler = prevHandler
		searchService = prevSearch
		transferMonitor = prevMonitor
	})

	messageHandler = stubHandler{}
	if search != nil {
		searchService = search
	} else {
		searchService = nil
	}
	if monitor != nil {
		transferMonitor = monitor
	} else {
		transferMonitor = nil
	}
}

// executeCommand runs the root command with args and captures output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag values persist across executions; reset the ones the
	// tests touch.
	searchLimit = 0
	searchJSON = false
	transfersJSON = false

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}
