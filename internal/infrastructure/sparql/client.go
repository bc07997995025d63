// Package sparql provides the metadata-store adapters, speaking the SPARQL
// 1.1 protocol over HTTP against a triple store such as Blazegraph.
package sparql

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/baraldiruffer/heritage/internal/domain/ports"
)

// defaultTimeout bounds a single endpoint round trip.
const defaultTimeout = 30 * time.Second

// Client issues SELECT and UPDATE requests against one SPARQL endpoint.
type Client struct {
	endpoint string
	hc       *http.Client
}

// NewClient creates a client for the given endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		hc:       &http.Client{Timeout: defaultTimeout},
	}
}

// Endpoint returns the endpoint URL.
func (c *Client) Endpoint() string { return c.endpoint }

// selectResponse is the SPARQL 1.1 JSON results encoding: rows are variable
// bindings, each cell present with a value or absent entirely.
type selectResponse struct {
	Results struct {
		Bindings []map[string]struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		} `json:"bindings"`
	} `json:"results"`
}

// Select runs a SELECT query and normalizes its bindings into a table:
// one row per match, one column per bound variable, absent bindings absent.
func (c *Client) Select(ctx context.Context, query string) (ports.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building query request: %w", err)
	}
	q := req.URL.Query()
	q.Set("query", query)
	q.Set("format", "json")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/sparql-results+json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}

	var decoded selectResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding query results: %w", err)
	}

	table := make(ports.Table, 0, len(decoded.Results.Bindings))
	for _, binding := range decoded.Results.Bindings {
		row := make(ports.Row, len(binding))
		for name, cell := range binding {
			row[name] = cell.Value
		}
		table = append(table, row)
	}
	return table, nil
}

// Update posts a SPARQL UPDATE request to the endpoint.
func (c *Client) Update(ctx context.Context, update string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(update))
	if err != nil {
		return fmt.Errorf("building update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/sparql-update")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("posting update: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
