// Package webhook mirrors board snapshots to external HTTP endpoints.
//
// A Mirror subscribes to the board store. Each notification is queued
// without blocking the store (the newest snapshot replaces the oldest when
// the queue is full) and a background worker POSTs it to every configured
// endpoint concurrently. Delivery goes through the instrumented
// httpclient.Client, one per endpoint, so every target has its own circuit
// breaker, retry policy and rate limit. Rejections are translated into
// domain errors.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-board/internal/app/fanout"
	"github.com/jsamuelsen11/project-board/internal/domain/project"
	"github.com/jsamuelsen11/project-board/internal/platform/config"
	"github.com/jsamuelsen11/project-board/internal/platform/httpclient"
	"github.com/jsamuelsen11/project-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/project-board/internal/ports"
)

var (
	_ ports.SnapshotPublisher = (*Mirror)(nil)
	_ ports.HealthChecker     = (*Mirror)(nil)
)

// Mirror publishes board snapshots to a fixed set of webhook endpoints.
type Mirror struct {
	targets        []*httpclient.Client
	req            requester
	maxConcurrency int
	now            func() time.Time
	logger         *slog.Logger

	queue chan []project.Project
	// qmu makes the drop-oldest-then-push in Enqueue atomic.
	qmu sync.Mutex

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

// New creates a Mirror with one instrumented client per URL in cfg.
// If metrics is nil, client metrics are skipped.
func New(cfg config.WebhookConfig, clientCfg *config.ClientConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Mirror {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	targets := make([]*httpclient.Client, len(cfg.URLs))
	for i, u := range cfg.URLs {
		targets[i] = httpclient.New(clientCfg, fmt.Sprintf("webhook-%d", i), u, metrics, logger)
	}

	return &Mirror{
		targets:        targets,
		req:            requester{logger: logger},
		maxConcurrency: cfg.MaxConcurrency,
		now:            time.Now,
		logger:         logger,
		queue:          make(chan []project.Project, max(cfg.QueueSize, 1)),
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}
}

// Publish delivers one snapshot to every target and waits for the results.
// Failures from individual targets are joined into the returned error.
func (m *Mirror) Publish(ctx context.Context, snapshot []project.Project) error {
	event := toSnapshotEvent(snapshot, m.now())

	results := fanout.Run(ctx, m.maxConcurrency, m.targets, func(ctx context.Context, c *httpclient.Client) (struct{}, error) {
		return struct{}{}, m.req.post(ctx, c, event)
	})

	if err := fanout.Errors(results); err != nil {
		m.logger.WarnContext(ctx, "snapshot mirrored with failures",
			slog.Int("targets", len(m.targets)),
			slog.Int("failed", fanout.Failed(results)),
			slog.Int("projects", event.Count),
		)
		return fmt.Errorf("publishing snapshot: %w", err)
	}

	m.logger.DebugContext(ctx, "snapshot mirrored",
		slog.Int("targets", len(m.targets)),
		slog.Int("projects", event.Count),
	)
	return nil
}

// Enqueue queues a snapshot for background delivery and never blocks. When
// the queue is full the oldest pending snapshot is discarded. Its signature
// matches board.Listener so it can be subscribed to the store directly.
func (m *Mirror) Enqueue(snapshot []project.Project) {
	m.qmu.Lock()
	defer m.qmu.Unlock()

	select {
	case m.queue <- snapshot:
		return
	default:
	}

	select {
	case <-m.queue:
		m.logger.Debug("superseded pending snapshot")
	default:
	}

	select {
	case m.queue <- snapshot:
	default:
	}
}

// Pending reports how many snapshots are waiting for delivery.
func (m *Mirror) Pending() int {
	return len(m.queue)
}

// Start launches the delivery worker. It returns immediately; calling it
// more than once has no further effect.
func (m *Mirror) Start(ctx context.Context) {
	m.startOnce.Do(func() {
		go m.run(ctx)
	})
}

// Stop signals the worker to deliver what is already queued and exit, and
// waits for it until ctx is done.
func (m *Mirror) Stop(ctx context.Context) error {
	m.stopOnce.Do(func() { close(m.stop) })

	// A mirror that was never started has no worker to wait for.
	m.startOnce.Do(func() { close(m.done) })

	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("stopping webhook mirror: %w", ctx.Err())
	}
}

func (m *Mirror) run(ctx context.Context) {
	defer close(m.done)

	for {
		select {
		case snapshot := <-m.queue:
			m.deliver(ctx, snapshot)
		case <-m.stop:
			for {
				select {
				case snapshot := <-m.queue:
					m.deliver(ctx, snapshot)
				default:
					return
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

func (m *Mirror) deliver(ctx context.Context, snapshot []project.Project) {
	if err := m.Publish(ctx, snapshot); err != nil {
		m.logger.ErrorContext(ctx, "webhook delivery failed", slog.Any("error", err))
	}
}

// Name identifies the mirror in readiness reports.
func (m *Mirror) Name() string {
	return "board-webhook"
}

// HealthCheck reports the circuit breaker state of every target; no
// request is made. Any open or half-open breaker is reported.
func (m *Mirror) HealthCheck(ctx context.Context) error {
	errs := make([]error, 0, len(m.targets))
	for _, c := range m.targets {
		errs = append(errs, c.HealthCheck(ctx))
	}
	return errors.Join(errs...)
}
