// Package exporter assembles right-of-access packages. One source failing
// never aborts the rest: the package reports exactly which sources are
// missing, and Complete is true iff none are.
package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"custodian/internal/lifecycle/metrics"
	"custodian/internal/lifecycle/models"
	"custodian/internal/lifecycle/ports"
	"custodian/internal/lifecycle/registry"
	id "custodian/pkg/domain"
	dErrors "custodian/pkg/domain-errors"
	audit "custodian/pkg/platform/audit"
	"custodian/pkg/platform/privacy"
)

type Exporter struct {
	registry       *registry.Registry
	adapters       []ports.BackendAdapter
	auditPublisher ports.AuditPublisher
	logger         *slog.Logger
	metrics        *metrics.Metrics
	tracer         trace.Tracer
}

type Option func(*Exporter)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) { e.logger = logger }
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(e *Exporter) { e.auditPublisher = publisher }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Exporter) { e.metrics = m }
}

// New constructs an Exporter. Adapters absent in a deployment are passed as
// a shorter slice, never as nil entries.
func New(reg *registry.Registry, adapters []ports.BackendAdapter, opts ...Option) (*Exporter, error) {
	if reg == nil {
		return nil, fmt.Errorf("module registry is required")
	}
	for i, a := range adapters {
		if a == nil {
			return nil, fmt.Errorf("adapter at index %d is nil", i)
		}
	}

	e := &Exporter{
		registry: reg,
		adapters: adapters,
		tracer:   otel.Tracer("custodian/lifecycle/exporter"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Export walks every module, then every configured adapter, and assembles
// one completeness-annotated package.
//
// Guarantee: never returns an error for an ordinary source failure; those
// are recorded in FailedSources. The error return is reserved for
// invariant violations such as a nil user id.
func (e *Exporter) Export(ctx context.Context, userID id.UserID) (*models.ExportPackage, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "user ID is required")
	}

	ctx, span := e.tracer.Start(ctx, "lifecycle.export")
	defer span.End()
	start := time.Now()
	defer e.metrics.ObserveOperation("export", start)

	hashed := privacy.HashID(userID.String())
	sources := make(map[string]models.ExportRecord)
	failed := []string{}

	for _, module := range e.registry.Modules() {
		payload, err := module.Export(ctx, userID)
		if err != nil {
			failed = append(failed, module.Name())
			e.metrics.IncComponentFailure(module.Name(), "export")
			if e.logger != nil {
				e.logger.WarnContext(ctx, "module export failed",
					"module", module.Name(),
					"subject_hash", hashed,
					"error", err,
				)
			}
			continue
		}
		sources[module.Name()] = models.ExportRecord{
			SourceName: module.Name(),
			ExportedAt: time.Now().UTC(),
			Payload:    payload,
		}
	}

	for _, adapter := range e.adapters {
		payload, err := adapter.Export(ctx, userID)
		if err != nil {
			failed = append(failed, adapter.Name())
			e.metrics.IncComponentFailure(adapter.Name(), "export")
			if e.logger != nil {
				e.logger.WarnContext(ctx, "backend export failed",
					"backend", adapter.Name(),
					"subject_hash", hashed,
					"error", err,
				)
			}
			continue
		}
		if payload == nil {
			// The backend holds nothing for this user. Not a failure.
			continue
		}
		sources[adapter.Name()] = models.ExportRecord{
			SourceName: adapter.Name(),
			ExportedAt: time.Now().UTC(),
			Payload:    payload,
		}
	}

	pkg := &models.ExportPackage{
		PackageID:     ulid.Make().String(),
		UserIDHash:    privacy.HashIDFull(userID.String()),
		ExportedAt:    time.Now().UTC(),
		TotalRecords:  len(sources),
		Complete:      len(failed) == 0,
		FailedSources: failed,
		Sources:       sources,
	}

	if e.metrics != nil {
		e.metrics.Exports.WithLabelValues(strconv.FormatBool(pkg.Complete)).Inc()
	}
	ports.LogAudit(ctx, e.logger, e.auditPublisher, audit.EventDataExported, hashed,
		"package_id", pkg.PackageID,
		"complete", pkg.Complete,
		"failed_sources", len(failed),
	)

	return pkg, nil
}
