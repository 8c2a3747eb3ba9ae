// Package restricter implements restriction of processing: a reversible
// freeze that flips a flag and never destroys data. It walks the same
// module-then-relational-store path as erasure but deliberately skips the
// cache, graph, vector, and memory backends and key destruction: anything
// it touched would have to be restorable byte-for-byte on unfreeze.
package restricter

import (
	"context"
	"fmt"
	"log/slog"
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
	"custodian/pkg/platform/sentinel"
)

type Restricter struct {
	registry       *registry.Registry
	record         ports.Restrictor
	recordName     string
	auditPublisher ports.AuditPublisher
	logger         *slog.Logger
	metrics        *metrics.Metrics
	tracer         trace.Tracer
}

type Option func(*Restricter)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Restricter) { r.logger = logger }
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(r *Restricter) { r.auditPublisher = publisher }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Restricter) { r.metrics = m }
}

// New constructs a Restricter over the registry and the system of record.
// The record adapter is where the restriction flag lives; a deployment
// without one cannot honor restriction requests at all, so its absence is
// a configuration error, not a recordable failure.
func New(reg *registry.Registry, record ports.Restrictor, recordName string, opts ...Option) (*Restricter, error) {
	if reg == nil {
		return nil, fmt.Errorf("module registry is required")
	}
	if record == nil {
		return nil, fmt.Errorf("restriction-capable system of record: %w", sentinel.ErrNotConfigured)
	}
	if recordName == "" {
		recordName = ports.ComponentRelationalStore
	}

	r := &Restricter{
		registry:   reg,
		record:     record,
		recordName: recordName,
		tracer:     otel.Tracer("custodian/lifecycle/restricter"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Freeze marks the user's data as restricted from active processing.
// Invariant: data returned by export is byte-identical before a freeze and
// after a subsequent unfreeze.
func (r *Restricter) Freeze(ctx context.Context, userID id.UserID) (*models.RestrictionReport, error) {
	return r.apply(ctx, userID, "freeze", models.RestrictionRestricted)
}

// Unfreeze reverses Freeze, returning the user's data to active processing.
func (r *Restricter) Unfreeze(ctx context.Context, userID id.UserID) (*models.RestrictionReport, error) {
	return r.apply(ctx, userID, "unfreeze", models.RestrictionActive)
}

func (r *Restricter) apply(ctx context.Context, userID id.UserID, operation string, target models.ProcessingRestriction) (*models.RestrictionReport, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "user ID is required")
	}

	ctx, span := r.tracer.Start(ctx, "lifecycle.restriction."+operation)
	defer span.End()
	start := time.Now()
	defer r.metrics.ObserveOperation("restriction_"+operation, start)

	hashed := privacy.HashID(userID.String())
	okStatus := models.ComponentRestricted
	if target == models.RestrictionActive {
		okStatus = models.ComponentActive
	}

	var components []models.ComponentOutcome
	failed := []string{}
	critical := []string{}

	for _, module := range r.registry.Modules() {
		err := r.flipModule(ctx, module, userID, target)
		components = append(components, r.outcome(ctx, module.Name(), hashed, operation, okStatus, err))
		if err != nil {
			failed = append(failed, module.Name())
		}
	}

	var recordErr error
	if target == models.RestrictionRestricted {
		recordErr = r.record.Restrict(ctx, userID)
	} else {
		recordErr = r.record.Unrestrict(ctx, userID)
	}
	components = append(components, r.outcome(ctx, r.recordName, hashed, operation, okStatus, recordErr))
	if recordErr != nil {
		failed = append(failed, r.recordName)
		// The flag lives in the system of record; if it did not flip, the
		// restriction is not in effect no matter what the modules did.
		critical = append(critical, r.recordName)
	}

	report := &models.RestrictionReport{
		ReportID:      ulid.Make().String(),
		UserID:        userID.String(),
		CompletedAt:   time.Now().UTC(),
		State:         target,
		Components:    components,
		OverallStatus: models.DeriveOverallStatus(components, critical),
		FailedTargets: failed,
	}

	if r.metrics != nil {
		r.metrics.Restrictions.WithLabelValues(operation, string(report.OverallStatus)).Inc()
	}
	action := audit.EventProcessingRestricted
	if target == models.RestrictionActive {
		action = audit.EventProcessingUnrestricted
	}
	ports.LogAudit(ctx, r.logger, r.auditPublisher, action, hashed,
		"report_id", report.ReportID,
		"status", string(report.OverallStatus),
	)

	return report, nil
}

func (r *Restricter) flipModule(ctx context.Context, module ports.DataModule, userID id.UserID, target models.ProcessingRestriction) error {
	if target == models.RestrictionRestricted {
		return module.Restrict(ctx, userID)
	}
	return module.Unrestrict(ctx, userID)
}

func (r *Restricter) outcome(ctx context.Context, name, hashed, operation string, okStatus models.ComponentStatus, err error) models.ComponentOutcome {
	if err != nil {
		r.metrics.IncComponentFailure(name, "restriction_"+operation)
		if r.logger != nil {
			r.logger.WarnContext(ctx, "restriction step failed",
				"component", name,
				"operation", operation,
				"subject_hash", hashed,
				"error", err,
			)
		}
		return models.ComponentOutcome{Name: name, Status: models.ComponentError, Detail: err.Error()}
	}
	return models.ComponentOutcome{Name: name, Status: okStatus}
}
