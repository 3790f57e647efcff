// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package contentstore writes recipe documents to the hosted content
// store through its mutation endpoint.
package contentstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/recipe-importer/internal/httputil"
	"github.com/pdiddy/recipe-importer/pkg/types"
)

// Defaults for the content store connection.
const (
	DefaultDataset    = "production"
	DefaultAPIVersion = "2024-01-01"
	DefaultTimeout    = 30 * time.Second
	DefaultUserAgent  = "recipe-importer"
)

// ErrMissingToken is returned when no write token is configured.
var ErrMissingToken = errors.New("content store write token is required (set secret content-store-token or SANITY_API_WRITE_TOKEN)")

// ErrMissingProject is returned when neither a project ID nor a base URL
// is configured.
var ErrMissingProject = errors.New("content store project ID is required")

// maxErrorBody bounds how much of an error response is kept in messages.
const maxErrorBody = 512

// Client posts createOrReplace mutations. It implements sink.Sink.
type Client struct {
	cfg  types.ContentStoreConfig
	http *http.Client
	now  func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithClock replaces time.Now for dateModified stamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient validates cfg and returns a client.
func NewClient(cfg types.ContentStoreConfig, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.Token) == "" {
		return nil, ErrMissingToken
	}
	if cfg.ProjectID == "" && cfg.BaseURL == "" {
		return nil, ErrMissingProject
	}
	if cfg.Dataset == "" {
		cfg.Dataset = DefaultDataset
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MutateURL returns the endpoint mutations are posted to.
func (c *Client) MutateURL() string {
	base := strings.TrimRight(c.cfg.BaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.api.sanity.io", c.cfg.ProjectID)
	}
	return fmt.Sprintf("%s/v%s/data/mutate/%s", base, c.cfg.APIVersion, c.cfg.Dataset)
}

type mutation struct {
	CreateOrReplace Document `json:"createOrReplace"`
}

type mutateRequest struct {
	Mutations []mutation `json:"mutations"`
}

type mutateResponse struct {
	TransactionID string `json:"transactionId"`
	Results       []struct {
		ID        string `json:"id"`
		Operation string `json:"operation"`
	} `json:"results"`
}

// Put sends one batch as a single mutation request. The batch succeeds or
// fails as a whole.
func (c *Client) Put(ctx context.Context, batch []types.NormalizedRecipe) error {
	if len(batch) == 0 {
		return nil
	}

	now := c.now()
	body := mutateRequest{Mutations: make([]mutation, 0, len(batch))}
	for _, r := range batch {
		body.Mutations = append(body.Mutations, mutation{CreateOrReplace: Transform(r, now)})
	}
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling mutations: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.MutateURL(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.cfg.MaxRetries)
	if err != nil {
		return fmt.Errorf("content store request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("content store returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var mr mutateResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing content store response: %w", err)
	}
	return nil
}
