// Package converter implements the link-generation and transfer
// driven ports over the quark conversion microservice.
package converter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/panseek/panseek/internal/core/domain"
	"github.com/panseek/panseek/internal/core/ports/driven"
	"github.com/panseek/panseek/internal/logger"
)

// Ensure Client implements the interfaces.
var (
	_ driven.LinkGenerator   = (*Client)(nil)
	_ driven.TransferService = (*Client)(nil)
)

// shareRequest is the share-by-path request body.
type shareRequest struct {
	Path string `json:"path"`
}

// shareResponse is the share-by-path response body.
type shareResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Password string `json:"password"`
	Message  string `json:"message"`
}

// transferRequest is the transfer-and-share request body.
type transferRequest struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// transferResponse is the transfer-and-share response body.
type transferResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Client calls the conversion service. Share calls are short and sit
// on the user-facing path; transfer calls are slow and only ever run
// detached, so the two use separately bounded HTTP clients.
type Client struct {
	baseURL  string
	share    *http.Client
	transfer *http.Client
}

// NewClient creates a converter client from configuration.
func NewClient(cfg domain.ConverterConfig) *Client {
	shareTimeout := cfg.ShareTimeout
	if shareTimeout <= 0 {
		shareTimeout = 30 * time.Second
	}
	transferTimeout := cfg.TransferTimeout
	if transferTimeout <= 0 {
		transferTimeout = 300 * time.Second
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		share:    &http.Client{Timeout: shareTimeout},
		transfer: &http.Client{Timeout: transferTimeout},
	}
}

// ShareByPath asks the conversion service for a share link over
// destPath before any content exists there.
func (c *Client) ShareByPath(ctx context.Context, destPath string) (*driven.ShareArtifact, error) {
	var resp shareResponse
	if err := c.post(ctx, c.share, "/share", shareRequest{Path: destPath}, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLinkGeneration, err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s", domain.ErrLinkGeneration, resp.Message)
	}
	logger.Debug("Converter: share link ready for %q", destPath)
	return &driven.ShareArtifact{Link: resp.URL, AccessCode: resp.Password}, nil
}

// Transfer materializes rawLink into destPath. The caller owns the
// context; user-facing paths never await this call.
func (c *Client) Transfer(ctx context.Context, rawLink, destPath string) error {
	var resp transferResponse
	if err := c.post(ctx, c.transfer, "/transfer", transferRequest{URL: rawLink, Path: destPath}, &resp); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransfer, err)
	}
	if !resp.Success {
		return fmt.Errorf("%w: %s", domain.ErrTransfer, resp.Message)
	}
	logger.Debug("Converter: transfer into %q done", destPath)
	return nil
}

// post sends one JSON request and decodes the JSON response.
func (c *Client) post(ctx context.Context, client *http.Client, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
