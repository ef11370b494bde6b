package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/project-board/internal/platform/httpclient"
)

// requester POSTs JSON bodies through an instrumented client and turns
// rejections into domain errors.
type requester struct {
	logger *slog.Logger
}

// post sends body to the client's endpoint. Any 2xx status is success.
func (r *requester) post(ctx context.Context, client *httpclient.Client, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling webhook body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, client.Endpoint(), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request for %s: %w", client.Name(), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(ctx, req)
	if err != nil {
		// Retries exhausted on a retryable status leave both set.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			return TranslateHTTPError(resp)
		}
		r.logger.ErrorContext(ctx, "webhook delivery failed",
			slog.String("target", client.Name()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("POST %s: %w", client.Name(), err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		r.logger.ErrorContext(ctx, "webhook rejected snapshot",
			slog.String("target", client.Name()),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}
	return nil
}

func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
