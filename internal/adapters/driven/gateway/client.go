// Package gateway implements the search gateway driven port over the
// aggregated netdisk search HTTP API.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/panseek/panseek/internal/core/domain"
	"github.com/panseek/panseek/internal/core/ports/driven"
	"github.com/panseek/panseek/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchGateway = (*Client)(nil)

// searchItem is one result in the gateway response body.
type searchItem struct {
	Note     string `json:"note"`
	URL      string `json:"url"`
	Password string `json:"password"`
	Datetime string `json:"datetime"`
	Source   string `json:"source"`
}

// searchResponse is the gateway response body. A missing
// merged_by_type is a normal "no results" outcome, not an error.
type searchResponse struct {
	Total        int                     `json:"total"`
	MergedByType map[string][]searchItem `json:"merged_by_type"`
}

// Client calls the aggregated search service. Calls are rate limited
// client-side with a token bucket so a chatty room cannot hammer the
// gateway, and bounded by the configured timeout. Failed calls are
// never retried.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a gateway client from configuration.
func NewClient(cfg domain.GatewayConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2.0
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Search looks up keyword across all sources, filtered to the quark
// and baidu kinds.
func (c *Client) Search(ctx context.Context, keyword string) (*domain.SearchReply, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGatewayUnavailable, err)
	}

	q := url.Values{}
	q.Set("kw", keyword)
	q.Set("src", "all")
	q.Set("cloud_types", "quark,baidu")
	endpoint := c.baseURL + "/api/search?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", domain.ErrGatewayUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrGatewayUnavailable, resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrGatewayUnavailable, err)
	}

	reply := &domain.SearchReply{
		Quark: toItems(body.MergedByType["quark"], domain.BackendQuark),
		Baidu: toItems(body.MergedByType["baidu"], domain.BackendBaidu),
		Total: body.Total,
	}
	logger.Debug("Gateway: %d quark, %d baidu (total %d)", len(reply.Quark), len(reply.Baidu), reply.Total)
	return reply, nil
}

// toItems maps gateway items to domain items, stamping the kind.
func toItems(items []searchItem, kind domain.BackendKind) []domain.ResultItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]domain.ResultItem, 0, len(items))
	for _, it := range items {
		out = append(out, domain.ResultItem{
			Title:       it.Note,
			RawLink:     it.URL,
			Backend:     kind,
			AccessCode:  it.Password,
			PublishedAt: it.Datetime,
			Source:      it.Source,
		})
	}
	return out
}
