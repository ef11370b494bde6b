package webhook

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/project-board/internal/domain"
)

func problemResponse(status int, body string) *http.Response {
	header := http.Header{}
	if strings.HasPrefix(body, "{") {
		header.Set("Content-Type", "application/problem+json")
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusGone, domain.ErrNotFound},
		{http.StatusBadRequest, domain.ErrValidation},
		{http.StatusUnprocessableEntity, domain.ErrValidation},
		{http.StatusRequestEntityTooLarge, domain.ErrValidation},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusUnauthorized, domain.ErrForbidden},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusTooManyRequests, domain.ErrUnavailable},
		{http.StatusInternalServerError, domain.ErrUnavailable},
		{http.StatusServiceUnavailable, domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			got := TranslateHTTPError(problemResponse(tt.status, ""))
			if !errors.Is(got, tt.wantErr) {
				t.Errorf("TranslateHTTPError(%d) = %v, want errors.Is %v", tt.status, got, tt.wantErr)
			}
		})
	}
}

func TestTranslateHTTPError_Detail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantSubstr string
	}{
		{
			name:       "detail wins",
			status:     http.StatusServiceUnavailable,
			body:       `{"title":"Unavailable","detail":"mirror is draining"}`,
			wantSubstr: "mirror is draining",
		},
		{
			name:       "title when no detail",
			status:     http.StatusConflict,
			body:       `{"title":"Stale snapshot"}`,
			wantSubstr: "Stale snapshot",
		},
		{
			name:       "status text for plain body",
			status:     http.StatusNotFound,
			body:       "nope",
			wantSubstr: "Not Found",
		},
		{
			name:       "status text for broken json",
			status:     http.StatusConflict,
			body:       `{"detail":`,
			wantSubstr: "Conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TranslateHTTPError(problemResponse(tt.status, tt.body))
			if !strings.Contains(got.Error(), tt.wantSubstr) {
				t.Errorf("error = %q, want substring %q", got.Error(), tt.wantSubstr)
			}
		})
	}
}

func TestTranslateHTTPError_FieldErrors(t *testing.T) {
	t.Parallel()

	body := `{
		"title": "Unprocessable Entity",
		"errors": [
			{"field": "body.projects", "message": "must not be empty"},
			{"field": "count", "message": "does not match projects"}
		]
	}`

	got := TranslateHTTPError(problemResponse(http.StatusUnprocessableEntity, body))

	var verr *domain.ValidationError
	if !errors.As(got, &verr) {
		t.Fatalf("TranslateHTTPError() = %T, want *domain.ValidationError", got)
	}
	if verr.Fields["projects"] != "must not be empty" {
		t.Errorf("Fields[projects] = %q, want %q", verr.Fields["projects"], "must not be empty")
	}
	if verr.Fields["count"] != "does not match projects" {
		t.Errorf("Fields[count] = %q, want %q", verr.Fields["count"], "does not match projects")
	}
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	got := TranslateHTTPError(&http.Response{StatusCode: http.StatusTeapot, Header: http.Header{}})
	if !strings.Contains(got.Error(), "unexpected status 418") {
		t.Errorf("error = %q, want unexpected status", got.Error())
	}
	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrValidation, domain.ErrUnavailable} {
		if errors.Is(got, sentinel) {
			t.Errorf("error unexpectedly wraps %v", sentinel)
		}
	}
}
