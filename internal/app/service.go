// Package app wires the fetch, transform and render stages behind the HTTP
// surface. It owns the in-memory snapshot of fetched items.
package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"prioboard/internal/coda"
	"prioboard/internal/config"
	"prioboard/internal/item"
)

// RowLister is the slice of the Coda client the service needs.
type RowLister interface {
	ListRows(ctx context.Context) ([]coda.Row, error)
}

// Service holds the current item snapshot. A refresh replaces the snapshot
// wholesale; concurrent refreshes race and the last write wins, which is
// acceptable because every refresh fetches the same table.
type Service struct {
	cfg    config.Config
	client RowLister

	mu        sync.RWMutex
	items     []item.Item
	fetchErr  string
	fetchedAt time.Time
}

func New(cfg config.Config, client RowLister) *Service {
	s := &Service{cfg: cfg, client: client}
	if !cfg.Configured() {
		s.fetchErr = "Coda API credentials are not configured"
	}
	return s
}

// Snapshot returns the current items with the last fetch state. The slice is
// shared; callers must not mutate it.
func (s *Service) Snapshot() (items []item.Item, fetchErr string, fetchedAt time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items, s.fetchErr, s.fetchedAt
}

// Refresh fetches the table and replaces the snapshot. On failure the
// previous snapshot is kept untouched and the error is recorded for display.
func (s *Service) Refresh(ctx context.Context) error {
	rows, err := s.client.ListRows(ctx)
	if err != nil {
		s.mu.Lock()
		s.fetchErr = err.Error()
		s.mu.Unlock()
		status, code, message, _ := mapError(err)
		if code == "SERVER_ERROR" {
			return domainError(http.StatusBadGateway, "FETCH_FAILED", fmt.Sprintf("fetch failed: %v", err), nil)
		}
		return domainError(status, code, message, nil)
	}

	items := make([]item.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, item.FromRow(row.ID, row.Values))
	}

	s.mu.Lock()
	s.items = items
	s.fetchErr = ""
	s.fetchedAt = time.Now()
	s.mu.Unlock()
	return nil
}
