package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/middleware"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		limit      time.Duration
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantHeader string
	}{
		{
			name:  "form submit within deadline",
			limit: time.Second,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Location", "/api/v1/projects/p1")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":"p1"}`))
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":"p1"}`,
			wantHeader: "/api/v1/projects/p1",
		},
		{
			name:  "implicit 200",
			limit: time.Second,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"columns":[]}`))
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"columns":[]}`,
		},
		{
			name:  "no body",
			limit: time.Second,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:  "blocked handler",
			limit: 30 * time.Millisecond,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Location", "/api/v1/projects/p1")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("partial"))
				<-r.Context().Done()
			},
			wantStatus: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			middleware.Timeout(tt.limit)(tt.handler).
				ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/projects", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusGatewayTimeout {
				if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
					t.Errorf("Content-Type = %q, want application/problem+json", ct)
				}
				if strings.Contains(rec.Body.String(), "partial") || rec.Header().Get("Location") != "" {
					t.Errorf("timed-out response leaked buffered output: %q", rec.Body.String())
				}
				return
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if rec.Header().Get("Location") != tt.wantHeader {
				t.Errorf("Location = %q, want %q", rec.Header().Get("Location"), tt.wantHeader)
			}
		})
	}
}

func TestTimeout_HandlerSeesDeadline(t *testing.T) {
	t.Parallel()

	var remaining time.Duration
	handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		if dl, ok := r.Context().Deadline(); ok {
			remaining = time.Until(dl)
		}
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/board", http.NoBody))

	if remaining <= 0 || remaining > time.Second {
		t.Errorf("remaining = %v, want a deadline within the next second", remaining)
	}
}

func TestTimeout_LateWritesFail(t *testing.T) {
	t.Parallel()

	writeErr := make(chan error, 1)
	handler := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		time.Sleep(10 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		writeErr <- err
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/board", http.NoBody))

	select {
	case err := <-writeErr:
		if err != http.ErrHandlerTimeout {
			t.Errorf("late Write() error = %v, want http.ErrHandlerTimeout", err)
		}
	case <-time.After(time.Second):
		t.Fatal("handler never attempted its late write")
	}
	if strings.Contains(rec.Body.String(), "too late") {
		t.Error("late write reached the client")
	}
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	t.Parallel()

	handler := middleware.Recovery(discardLogger())(
		middleware.Timeout(5 * time.Second)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("listener exploded")
		})),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/projects", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/problem+json") {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}
