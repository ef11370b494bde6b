package middleware

import (
	"bytes"
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-board/internal/adapters/http/dto"
)

// Timeout bounds a request to d. The handler writes into a buffer on its own
// goroutine with a deadline on its context; if it has not returned by the
// deadline the buffer is dropped and a 504 problem is written instead.
// Handler panics are re-raised on the serving goroutine for Recovery.
// Event streams must not be wrapped.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			br := &bufferedResponse{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(br, r.WithContext(ctx))
				close(done)
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				br.commit(w)
			case <-ctx.Done():
				br.abandon()
				dto.WriteStatusResponse(w, r, http.StatusGatewayTimeout,
					"request did not complete within "+d.String())
			}
		})
	}
}

// bufferedResponse holds a handler's response until Timeout decides whether
// it reaches the client. Once abandoned, further writes fail with
// http.ErrHandlerTimeout.
type bufferedResponse struct {
	mu        sync.Mutex
	header    http.Header
	body      bytes.Buffer
	status    int // zero until the handler writes a header or body
	abandoned bool
}

func (br *bufferedResponse) Header() http.Header { return br.header }

func (br *bufferedResponse) WriteHeader(code int) {
	br.mu.Lock()
	defer br.mu.Unlock()
	if br.status == 0 {
		br.status = code
	}
}

func (br *bufferedResponse) Write(b []byte) (int, error) {
	br.mu.Lock()
	defer br.mu.Unlock()
	if br.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if br.status == 0 {
		br.status = http.StatusOK
	}
	return br.body.Write(b)
}

func (br *bufferedResponse) abandon() {
	br.mu.Lock()
	defer br.mu.Unlock()
	br.abandoned = true
}

// commit copies the finished response to w.
func (br *bufferedResponse) commit(w http.ResponseWriter) {
	br.mu.Lock()
	defer br.mu.Unlock()

	maps.Copy(w.Header(), br.header)
	if br.status != 0 {
		w.WriteHeader(br.status)
	}
	if br.body.Len() > 0 {
		_, _ = w.Write(br.body.Bytes())
	}
}
