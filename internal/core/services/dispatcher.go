package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/panseek/panseek/internal/core/domain"
	"github.com/panseek/panseek/internal/core/ports/driven"
	"github.com/panseek/panseek/internal/core/ports/driving"
	"github.com/panseek/panseek/internal/logger"
)

// Ensure Dispatcher implements the interfaces.
var (
	_ driving.MessageHandler = (*Dispatcher)(nil)
	_ driving.SearchService  = (*Dispatcher)(nil)
)

// Dispatcher is the top-level entry point for inbound texts. It
// classifies each message through the trigger table and orchestrates
// the gateway, the grouping and pagination engines, the session store
// and the resolver. Every path terminates in a user-visible reply or
// a silent no-op; no path is fatal.
type Dispatcher struct {
	gateway  driven.SearchGateway
	sessions driven.SessionStore
	resolver driving.ResolveService

	// mu guards the reloadable parts: trigger table and page size.
	mu       sync.RWMutex
	table    *TriggerTable
	triggers domain.TriggerConfig
	pageSize int
}

// NewDispatcher creates a dispatcher wired to its collaborators.
func NewDispatcher(
	gateway driven.SearchGateway,
	sessions driven.SessionStore,
	resolver driving.ResolveService,
	cfg domain.Config,
) *Dispatcher {
	return &Dispatcher{
		gateway:  gateway,
		sessions: sessions,
		resolver: resolver,
		table:    NewTriggerTable(cfg.Triggers),
		triggers: cfg.Triggers,
		pageSize: cfg.Session.PageSize,
	}
}

// UpdateConfig swaps in new trigger literals and page size. Existing
// sessions keep the page size they were created with.
func (d *Dispatcher) UpdateConfig(cfg domain.Config) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.table = NewTriggerTable(cfg.Triggers)
	d.triggers = cfg.Triggers
	d.pageSize = cfg.Session.PageSize
	logger.Info("Dispatcher: trigger configuration reloaded")
}

// HandleMessage routes one inbound text for one user.
func (d *Dispatcher) HandleMessage(ctx context.Context, ownerID, text string, reply driving.ReplySink) error {
	d.mu.RLock()
	table := d.table
	d.mu.RUnlock()

	cmd := table.Parse(text)
	switch cmd.Kind {
	case CommandSearch:
		return d.handleSearch(ctx, ownerID, cmd.Keyword, reply)
	case CommandSelect:
		return d.handleSelect(ctx, ownerID, cmd.Index, reply)
	case CommandNextPage:
		return d.handlePage(ctx, ownerID, 1, reply)
	case CommandPrevPage:
		return d.handlePage(ctx, ownerID, -1, reply)
	default:
		// Not ours. The host's keyword-reply fallback may answer.
		return nil
	}
}

// handleSearch runs a search and replaces the user's session.
func (d *Dispatcher) handleSearch(ctx context.Context, ownerID, keyword string, reply driving.ReplySink) error {
	d.mu.RLock()
	searchPrefix := d.triggers.SearchPrefix
	pageSize := d.pageSize
	d.mu.RUnlock()

	if keyword == "" {
		reply(fmt.Sprintf("Please type a keyword after %q.", searchPrefix))
		return nil
	}

	logger.Section("Search")
	logger.Debug("Owner %s keyword %q", ownerID, keyword)
	reply("Searching, hang tight...")

	resp, err := d.gateway.Search(ctx, keyword)
	if err != nil {
		logger.Warn("Search failed: %v", err)
		reply("Search failed, please try again later.")
		return nil
	}

	grouped := Group(resp.Quark, resp.Baidu)
	if len(grouped) == 0 {
		reply(fmt.Sprintf("No results for %q.", keyword))
		return nil
	}

	session := domain.NewSearchSession(ownerID, grouped, pageSize)
	if err := d.sessions.Put(ctx, session); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	view, err := Page(grouped, 1, session.PageSize)
	if err != nil {
		return fmt.Errorf("page results: %w", err)
	}
	d.mu.RLock()
	trig := d.triggers
	d.mu.RUnlock()
	reply(renderListing(keyword, view, trig))
	return nil
}

// handleSelect resolves a numbered pick from the current page.
func (d *Dispatcher) handleSelect(ctx context.Context, ownerID string, typed int, reply driving.ReplySink) error {
	session, err := d.sessions.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			reply("Nothing to select yet. Start with a search.")
			return nil
		}
		return fmt.Errorf("get session: %w", err)
	}

	global, err := ResolveIndex(session.Results, session.Page, session.PageSize, typed)
	if err != nil {
		view, perr := Page(session.Results, session.Page, session.PageSize)
		if perr != nil {
			return fmt.Errorf("page results: %w", perr)
		}
		reply(fmt.Sprintf("That number isn't on this page. Pick between 1 and %d.", len(view.Items)))
		return nil
	}

	item := session.Results[global-1]
	logger.Debug("Owner %s selected %d (%q, %s)", ownerID, global, item.Title, item.Backend)

	resolution, err := d.resolver.Resolve(ctx, item)
	if err != nil {
		logger.Warn("Resolution failed: %v", err)
		reply(fmt.Sprintf("Could not prepare a link for %q, please try again later.", item.Title))
		return nil
	}

	reply(renderResolution(item, resolution))

	// The reply has been handed to the sink; only now may the
	// detached transfer start.
	if resolution.Start != nil {
		resolution.Start()
	}
	return nil
}

// handlePage moves the page cursor by delta and re-renders.
func (d *Dispatcher) handlePage(ctx context.Context, ownerID string, delta int, reply driving.ReplySink) error {
	session, err := d.sessions.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			reply("No results to page through. Start with a search.")
			return nil
		}
		return fmt.Errorf("get session: %w", err)
	}

	totalPages := TotalPages(len(session.Results), session.PageSize)
	newPage := session.Page + delta
	switch {
	case newPage < 1:
		reply("Already on the first page.")
		return nil
	case newPage > totalPages:
		reply("Already on the last page.")
		return nil
	}

	if err := d.sessions.SetPage(ctx, ownerID, newPage); err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			// Session vanished between read and write; treat as the
			// empty state rather than an error.
			reply("No results to page through. Start with a search.")
			return nil
		}
		return fmt.Errorf("set page: %w", err)
	}

	view, err := Page(session.Results, newPage, session.PageSize)
	if err != nil {
		return fmt.Errorf("page results: %w", err)
	}
	d.mu.RLock()
	trig := d.triggers
	d.mu.RUnlock()
	reply(renderListing("", view, trig))
	return nil
}

// Search implements driving.SearchService for non-conversational
// actors: one grouped search, no session side effects.
func (d *Dispatcher) Search(ctx context.Context, keyword string) ([]domain.ResultItem, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, domain.ErrEmptyKeyword
	}
	resp, err := d.gateway.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return Group(resp.Quark, resp.Baidu), nil
}
