package services

import (
	"context"
	"fmt"
	"time"

	"github.com/panseek/panseek/internal/core/domain"
	"github.com/panseek/panseek/internal/core/ports/driven"
	"github.com/panseek/panseek/internal/core/ports/driving"
	"github.com/panseek/panseek/internal/logger"
)

// Ensure Resolver implements the interface.
var _ driving.ResolveService = (*Resolver)(nil)

// backendResolver is the per-kind resolution capability.
type backendResolver func(ctx context.Context, item domain.ResultItem) (*domain.Resolution, error)

// Resolver turns a selected result item into an immediately usable
// link. Resolution behaviour is selected by a per-kind capability
// table: baidu shares resolve synchronously to their search-time
// link, quark shares get a provisional share-by-path link plus a
// detached transfer that materializes the content afterwards.
type Resolver struct {
	linkGen         driven.LinkGenerator
	transfer        driven.TransferService
	tracker         *TransferTracker
	transferTimeout time.Duration

	table map[domain.BackendKind]backendResolver
}

// NewResolver creates a resolver over the conversion collaborators.
func NewResolver(
	linkGen driven.LinkGenerator,
	transfer driven.TransferService,
	tracker *TransferTracker,
	cfg domain.ConverterConfig,
) *Resolver {
	r := &Resolver{
		linkGen:         linkGen,
		transfer:        transfer,
		tracker:         tracker,
		transferTimeout: cfg.TransferTimeout,
	}
	r.table = map[domain.BackendKind]backendResolver{
		domain.BackendQuark: r.resolveQuark,
		domain.BackendBaidu: r.resolveBaidu,
	}
	return r
}

// Resolve produces the immediate resolution for item. For quark items
// the caller must invoke Resolution.Start once its reply has been
// sent; the detached transfer is never awaited by the caller.
func (r *Resolver) Resolve(ctx context.Context, item domain.ResultItem) (*domain.Resolution, error) {
	resolve, ok := r.table[item.Backend]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedBackend, item.Backend)
	}
	return resolve(ctx, item)
}

// resolveBaidu returns the search-time share link unchanged. Baidu
// links are directly usable together with their access code.
func (r *Resolver) resolveBaidu(_ context.Context, item domain.ResultItem) (*domain.Resolution, error) {
	return &domain.Resolution{
		Link:       item.RawLink,
		AccessCode: item.AccessCode,
	}, nil
}

// resolveQuark performs the asynchronous two-phase resolution:
// generate a provisional link over a deterministic destination path
// now, transfer the original share into that path in the background.
func (r *Resolver) resolveQuark(ctx context.Context, item domain.ResultItem) (*domain.Resolution, error) {
	dest := SlugFromTitle(item.Title)
	logger.Debug("Resolver: destination path %q for %q", dest, item.Title)

	artifact, err := r.linkGen.ShareByPath(ctx, dest)
	if err != nil {
		// No provisional link means no resolution and no task.
		return nil, fmt.Errorf("share by path %q: %w", dest, err)
	}

	taskID, err := r.tracker.Create(ctx, item.Title, dest)
	if err != nil {
		return nil, fmt.Errorf("track transfer: %w", err)
	}

	rawLink := item.RawLink
	start := func() {
		go r.runTransfer(taskID, rawLink, dest)
	}

	return &domain.Resolution{
		Link:        artifact.Link,
		AccessCode:  artifact.AccessCode,
		Provisional: true,
		TaskID:      taskID,
		Start:       start,
	}, nil
}

// runTransfer executes one detached transfer to completion. It runs
// on its own context: the inbound handler that triggered it has long
// returned, and nothing cancels a transfer once started beyond its
// own call timeout. Failures end up on the task record only.
func (r *Resolver) runTransfer(taskID, rawLink, dest string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.transferTimeout)
	defer cancel()

	if err := r.tracker.MarkTransferring(context.Background(), taskID); err != nil {
		logger.Warn("Resolver: task %s: %v", taskID, err)
		return
	}

	if err := r.transfer.Transfer(ctx, rawLink, dest); err != nil {
		logger.Warn("Resolver: transfer %s failed: %v", taskID, err)
		if merr := r.tracker.MarkFailed(context.Background(), taskID, err.Error()); merr != nil {
			logger.Warn("Resolver: task %s: %v", taskID, merr)
		}
		return
	}

	if err := r.tracker.MarkCompleted(context.Background(), taskID); err != nil {
		logger.Warn("Resolver: task %s: %v", taskID, err)
	}
}
