// Package coda is a minimal client for the Coda tabular REST API: a single
// authenticated rows listing with column names resolved and rich values.
package coda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrTokenMissing means no API token was configured; the fetch is blocked
// until one is provided.
var ErrTokenMissing = errors.New("coda API token is not configured")

// Row is one raw table row: an identifier plus a column-name -> value map.
// Values may be scalars, rich-text objects or sequences of either.
type Row struct {
	ID     string         `json:"id"`
	Values map[string]any `json:"values"`
}

type rowsResponse struct {
	Items []Row `json:"items"`
}

// Client fetches rows from one table of one document.
type Client struct {
	baseURL string
	token   string
	docID   string
	tableID string
	http    *http.Client
}

func NewClient(baseURL, token, docID, tableID string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		docID:   docID,
		tableID: tableID,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// ListRows fetches every row of the configured table. Column names are
// resolved and values requested in rich format, which is what the row
// normalizer expects. Non-2xx responses fail with the status in the message.
func (c *Client) ListRows(ctx context.Context) ([]Row, error) {
	if strings.TrimSpace(c.token) == "" {
		return nil, ErrTokenMissing
	}

	endpoint := fmt.Sprintf("%s/docs/%s/tables/%s/rows?useColumnNames=true&valueFormat=rich",
		c.baseURL, url.PathEscape(c.docID), url.PathEscape(c.tableID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build rows request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rows: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch data: %d", resp.StatusCode)
	}

	var parsed rowsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode rows response: %w", err)
	}
	return parsed.Items, nil
}
