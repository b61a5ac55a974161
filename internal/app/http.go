package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"prioboard/internal/board"
	"prioboard/internal/export"
	"prioboard/internal/render"
)

// PDFExporter produces the multi-page snapshot document.
type PDFExporter interface {
	Export(ctx context.Context) ([]byte, error)
}

type HTTPServer struct {
	service  *Service
	exporter PDFExporter
}

func NewHTTPServer(service *Service, exporter PDFExporter) *HTTPServer {
	return &HTTPServer{service: service, exporter: exporter}
}

// Handler wraps the main handler with logging middleware
func (s *HTTPServer) Handler() http.Handler {
	return s.withMiddleware(http.HandlerFunc(s.handle))
}

func (s *HTTPServer) handle(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if path == "/" && r.Method == http.MethodGet {
		s.handleDashboard(w, r)
		return
	}

	if path == "/api/health" && r.Method == http.MethodGet {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	if path == "/api/refresh" && r.Method == http.MethodPost {
		if err := s.service.Refresh(r.Context()); err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		// Browser form posts go back to the dashboard; API callers get JSON.
		if r.Header.Get("Accept") != "application/json" && r.Header.Get("Content-Type") != "application/json" {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	if path == "/api/items" && r.Method == http.MethodGet {
		items, fetchErr, fetchedAt := s.service.Snapshot()
		payload := map[string]any{
			"count": len(items),
			"ok":    fetchErr == "",
		}
		if fetchErr != "" {
			payload["error"] = fetchErr
		}
		if !fetchedAt.IsZero() {
			payload["fetchedAt"] = fetchedAt.UTC().Format(time.RFC3339)
		}
		writeJSON(w, http.StatusOK, payload)
		return
	}

	if path == "/export.pdf" && r.Method == http.MethodGet {
		s.handleExport(w, r)
		return
	}

	writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
}

func (s *HTTPServer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	if tab == "" {
		tab = "summary"
	}
	view, ok := board.Lookup(tab)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("unknown tab %q", tab), nil)
		return
	}
	exportMode := r.URL.Query().Get("export") == "1"

	items, fetchErr, _ := s.service.Snapshot()
	page := render.BuildPage(view, items, fetchErr, exportMode)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.Render(w, page); err != nil {
		log.Printf("render %s: %v", tab, err)
	}
}

func (s *HTTPServer) handleExport(w http.ResponseWriter, r *http.Request) {
	pdf, err := s.exporter.Export(r.Context())
	if err != nil {
		log.Printf("export failed: %v", err)
		status, code, message, details := mapError(err)
		if code == "SERVER_ERROR" {
			status, code, message = http.StatusServiceUnavailable, "EXPORT_FAILED", "PDF export failed"
		}
		writeError(w, status, code, message, details)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *HTTPServer) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = randomRequestID()
		}
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		started := time.Now()
		writer := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		writer.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(writer, r)

		log.Printf(`{"request_id":"%s","method":"%s","path":"%s","status":%d,"duration_ms":%d}`,
			requestID,
			r.Method,
			r.URL.Path,
			writer.status,
			time.Since(started).Milliseconds(),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	response := map[string]any{
		"code":  code,
		"error": message,
	}
	if details != nil {
		response["details"] = details
	}
	writeJSON(w, status, response)
}

type requestIDKey struct{}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func randomRequestID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
