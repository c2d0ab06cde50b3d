package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vigil-sh/vigil/internal/api/presenter"
	"github.com/vigil-sh/vigil/internal/correlation"
)

func TestRecoverMiddleware_PresentsError(t *testing.T) {
	handler := CorrelationIDMiddleware(RecoverMiddleware(http.HandlerFunc(
		func(http.ResponseWriter, *http.Request) {
			panic("boom")
		})))

	req := httptest.NewRequest(http.MethodGet, "/v1/decide", nil)
	req.Header.Set(CorrelationIDHeader, "req-456")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var errResp presenter.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("panic response is not presented JSON: %v", err)
	}
	if errResp.Error != "internal server error" {
		t.Errorf("error = %q, want %q", errResp.Error, "internal server error")
	}
	if errResp.CorrelationID != "req-456" {
		t.Errorf("correlation_id = %q, want req-456", errResp.CorrelationID)
	}
}

func TestCorrelationIDMiddleware_GeneratesWhenMissing(t *testing.T) {
	var fromCtx string
	handler := CorrelationIDMiddleware(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			fromCtx = correlation.FromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	header := rec.Header().Get(CorrelationIDHeader)
	if header == "" {
		t.Fatal("no correlation ID assigned to the response")
	}
	if fromCtx != header {
		t.Errorf("context ID %q != response header ID %q", fromCtx, header)
	}
}

func TestResponseRecorder(t *testing.T) {
	handler := LoggingMiddleware(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("short and stout"))
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/decide", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
	if rec.Body.String() != "short and stout" {
		t.Errorf("body = %q, want pass-through", rec.Body.String())
	}
}
