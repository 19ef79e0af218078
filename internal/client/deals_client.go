// Package client talks to the Gamyam persistence service over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gamyam/internal/models"
	"gamyam/internal/pipeline"
)

// ErrNotFound is returned when the server reports 404 for an id.
var ErrNotFound = errors.New("not found")

var _ pipeline.RemoteAPI = (*DealsClient)(nil)

type errorResponse struct {
	Error string `json:"error"`
}

// DealsClient is an HTTP client for the deals API. Requests carry no
// timeout or retry policy of their own; pass a context to bound them.
type DealsClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewDealsClient(baseURL string) *DealsClient {
	return &DealsClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
	}
}

// ListDeals fetches the full collection. Date fields arrive as RFC3339
// strings and are parsed into time.Time here, at the wire boundary.
func (c *DealsClient) ListDeals(ctx context.Context) ([]models.Deal, error) {
	var deals []models.Deal
	if err := c.do(ctx, http.MethodGet, "/deals/", nil, &deals); err != nil {
		return nil, err
	}
	return deals, nil
}

// CreateDeal posts a deal without an id and returns the stored copy, with
// the server-generated id and timestamps.
func (c *DealsClient) CreateDeal(ctx context.Context, deal models.Deal) (*models.Deal, error) {
	deal.ID = ""
	var created models.Deal
	if err := c.do(ctx, http.MethodPost, "/deals/", deal, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDeal sends a full replacement for the deal's id.
func (c *DealsClient) UpdateDeal(ctx context.Context, deal models.Deal) (*models.Deal, error) {
	var updated models.Deal
	if err := c.do(ctx, http.MethodPut, "/deals/"+deal.ID, deal, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *DealsClient) DeleteDeal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/deals/"+id, nil, nil)
}

func (c *DealsClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("deals api unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("deals api: %s", apiErr.Error)
		}
		return fmt.Errorf("deals api: unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
