// Package eraser implements right-to-be-forgotten processing. Every module
// and backend is attempted exactly once, individual failures never abort
// the walk, and the terminal status tells the true story: failed when a
// critical component (a system of record or key destruction) still holds
// the user, partial when only non-critical leftovers remain, success when
// everything went.
package eraser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"custodian/internal/lifecycle/config"
	"custodian/internal/lifecycle/metrics"
	"custodian/internal/lifecycle/models"
	"custodian/internal/lifecycle/ports"
	"custodian/internal/lifecycle/registry"
	id "custodian/pkg/domain"
	dErrors "custodian/pkg/domain-errors"
	audit "custodian/pkg/platform/audit"
	"custodian/pkg/platform/privacy"
)

type Eraser struct {
	registry       *registry.Registry
	adapters       []ports.BackendAdapter
	keys           ports.KeyDestroyer
	config         *config.Config
	auditPublisher ports.AuditPublisher
	logger         *slog.Logger
	metrics        *metrics.Metrics
	tracer         trace.Tracer
}

type Option func(*Eraser)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Eraser) { e.logger = logger }
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(e *Eraser) { e.auditPublisher = publisher }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Eraser) { e.metrics = m }
}

func WithConfig(cfg *config.Config) Option {
	return func(e *Eraser) { e.config = cfg }
}

// New constructs an Eraser. The adapter slice order is the deletion order;
// callers wire systems of record first so they are attempted before key
// destruction and before derived stores' cleanup matters.
func New(reg *registry.Registry, adapters []ports.BackendAdapter, keys ports.KeyDestroyer, opts ...Option) (*Eraser, error) {
	if reg == nil {
		return nil, fmt.Errorf("module registry is required")
	}
	if keys == nil {
		return nil, fmt.Errorf("key destroyer is required")
	}
	for i, a := range adapters {
		if a == nil {
			return nil, fmt.Errorf("adapter at index %d is nil", i)
		}
	}

	e := &Eraser{
		registry: reg,
		adapters: adapters,
		keys:     keys,
		config:   config.DefaultConfig(),
		tracer:   otel.Tracer("custodian/lifecycle/eraser"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Delete erases one user everywhere, in fixed order: modules, then backends
// in wiring order, then key destruction. Every step is idempotent, so
// re-invoking the same erasure is safe and yields the same or a better
// status. Cancellation mid-sequence performs no rollback.
func (e *Eraser) Delete(ctx context.Context, userID id.UserID) (*models.ErasureReport, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "user ID is required")
	}

	ctx, span := e.tracer.Start(ctx, "lifecycle.erasure")
	defer span.End()
	start := time.Now()
	defer e.metrics.ObserveOperation("erasure", start)

	hashed := privacy.HashID(userID.String())
	var components []models.ComponentOutcome
	critical := []string{}

	for _, module := range e.registry.Modules() {
		outcome := e.eraseStep(ctx, module.Name(), hashed, func() error {
			return module.Erase(ctx, userID)
		}, models.ComponentDeleted)
		components = append(components, outcome)
	}

	for _, adapter := range e.adapters {
		outcome := e.eraseStep(ctx, adapter.Name(), hashed, func() error {
			return adapter.Delete(ctx, userID)
		}, models.ComponentDeleted)
		components = append(components, outcome)
		if outcome.Failed() && e.config.IsCritical(adapter.Name()) {
			critical = append(critical, adapter.Name())
		}
	}

	// Key destruction runs last, after the systems of record were attempted:
	// once keys are gone, any ciphertext a failed backend still holds is
	// unreadable anyway.
	keysOutcome := e.eraseStep(ctx, ports.ComponentKeyDestruction, hashed, func() error {
		return e.keys.DestroyKeys(ctx, userID)
	}, models.ComponentDestroyed)
	components = append(components, keysOutcome)
	if keysOutcome.Failed() && e.config.IsCritical(ports.ComponentKeyDestruction) {
		critical = append(critical, ports.ComponentKeyDestruction)
	}

	report := &models.ErasureReport{
		ReportID:            ulid.Make().String(),
		UserID:              userID.String(),
		CompletedAt:         time.Now().UTC(),
		Components:          components,
		OverallStatus:       models.DeriveOverallStatus(components, critical),
		CriticalFailures:    critical,
		SucceededComponents: succeededNames(components),
	}

	if e.metrics != nil {
		e.metrics.Erasures.WithLabelValues(string(report.OverallStatus)).Inc()
	}
	ports.LogAudit(ctx, e.logger, e.auditPublisher, audit.EventDataErased, hashed,
		"report_id", report.ReportID,
		"status", string(report.OverallStatus),
		"critical_failures", len(critical),
	)

	return report, nil
}

// eraseStep runs one deletion target, converting an error into a recorded
// outcome instead of propagating it.
func (e *Eraser) eraseStep(ctx context.Context, name, hashed string, fn func() error, okStatus models.ComponentStatus) models.ComponentOutcome {
	if err := fn(); err != nil {
		e.metrics.IncComponentFailure(name, "erasure")
		if e.logger != nil {
			e.logger.WarnContext(ctx, "erasure step failed",
				"component", name,
				"subject_hash", hashed,
				"error", err,
			)
		}
		return models.ComponentOutcome{Name: name, Status: models.ComponentError, Detail: err.Error()}
	}
	return models.ComponentOutcome{Name: name, Status: okStatus}
}

func succeededNames(components []models.ComponentOutcome) []string {
	names := []string{}
	for _, c := range components {
		if !c.Failed() {
			names = append(names, c.Name)
		}
	}
	return names
}
