package eraser

import (
	"context"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"custodian/internal/lifecycle/models"
	"custodian/internal/lifecycle/ports"
	id "custodian/pkg/domain"
	dErrors "custodian/pkg/domain-errors"
	audit "custodian/pkg/platform/audit"
	"custodian/pkg/platform/privacy"
)

// bulkFailures accumulates per-user failures across phases. Batch phases
// run on one goroutine; per-id phases fan out, so writes are locked.
type bulkFailures struct {
	mu          sync.Mutex
	critical    map[string][]string
	nonCritical map[string][]string
}

func newBulkFailures() *bulkFailures {
	return &bulkFailures{
		critical:    make(map[string][]string),
		nonCritical: make(map[string][]string),
	}
}

func (f *bulkFailures) record(userID id.UserID, component string, isCritical bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := userID.String()
	if isCritical {
		f.critical[key] = append(f.critical[key], component)
		return
	}
	f.nonCritical[key] = append(f.nonCritical[key], component)
}

// BulkDelete erases N users with backend-specific batching: adapters that
// can delete a batch in one round trip (the relational store's single
// transaction, the cache's scan plus multi-key delete) get one call for all
// ids; everything else loops per id. One user's failure never contaminates
// another user's per-user status, but the aggregate reflects the worst case.
//
// An empty input returns a trivially successful empty result without
// touching any backend.
func (e *Eraser) BulkDelete(ctx context.Context, userIDs []id.UserID) (*models.BulkErasureResult, error) {
	for _, userID := range userIDs {
		if userID.IsNil() {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "user IDs must be non-nil")
		}
	}

	if len(userIDs) == 0 {
		return &models.BulkErasureResult{
			RunID:         ulid.Make().String(),
			UserCount:     0,
			CompletedAt:   time.Now().UTC(),
			PerUser:       map[string]models.UserErasureSummary{},
			OverallStatus: models.StatusSuccess,
			FailedUserIDs: []string{},
		}, nil
	}

	ctx, span := e.tracer.Start(ctx, "lifecycle.bulk_erasure")
	defer span.End()
	start := time.Now()
	defer e.metrics.ObserveOperation("bulk_erasure", start)

	failures := newBulkFailures()

	// Phase 1: modules have no batch API; loop every id through every
	// module, recording failures per user without blocking other users.
	for _, module := range e.registry.Modules() {
		for _, userID := range userIDs {
			if err := module.Erase(ctx, userID); err != nil {
				failures.record(userID, module.Name(), false)
				e.metrics.IncComponentFailure(module.Name(), "bulk_erasure")
				if e.logger != nil {
					e.logger.WarnContext(ctx, "bulk module erase failed",
						"module", module.Name(),
						"subject_hash", privacy.HashID(userID.String()),
						"error", err,
					)
				}
			}
		}
	}

	// Phases 2..n: backends in wiring order, so the systems of record are
	// attempted before key destruction.
	for _, adapter := range e.adapters {
		isCritical := e.config.IsCritical(adapter.Name())
		if batch, ok := adapter.(ports.BatchDeleter); ok {
			if err := batch.DeleteBatch(ctx, userIDs); err != nil {
				// One round trip covered every id; its failure is every
				// user's failure.
				for _, userID := range userIDs {
					failures.record(userID, adapter.Name(), isCritical)
				}
				e.metrics.IncComponentFailure(adapter.Name(), "bulk_erasure")
				if e.logger != nil {
					e.logger.WarnContext(ctx, "bulk backend batch delete failed",
						"backend", adapter.Name(),
						"user_count", len(userIDs),
						"error", err,
					)
				}
			}
			continue
		}
		e.bulkPerID(ctx, userIDs, adapter.Name(), isCritical, failures, adapter.Delete)
	}

	// Final phase: per-id key destruction, deliberately after data deletion.
	e.bulkPerID(ctx, userIDs, ports.ComponentKeyDestruction,
		e.config.IsCritical(ports.ComponentKeyDestruction), failures, e.keys.DestroyKeys)

	perUser := make(map[string]models.UserErasureSummary, len(userIDs))
	failedIDs := []string{}
	for _, userID := range userIDs {
		key := userID.String()
		summary := models.UserErasureSummary{
			Status:              models.StatusSuccess,
			CriticalFailures:    emptyIfNil(failures.critical[key]),
			NonCriticalFailures: emptyIfNil(failures.nonCritical[key]),
		}
		switch {
		case len(summary.CriticalFailures) > 0:
			summary.Status = models.StatusFailed
			failedIDs = append(failedIDs, key)
		case len(summary.NonCriticalFailures) > 0:
			summary.Status = models.StatusPartial
		}
		perUser[key] = summary
	}

	result := &models.BulkErasureResult{
		RunID:         ulid.Make().String(),
		UserCount:     len(userIDs),
		CompletedAt:   time.Now().UTC(),
		PerUser:       perUser,
		OverallStatus: models.DeriveBulkStatus(perUser),
		FailedUserIDs: failedIDs,
	}

	if e.metrics != nil {
		e.metrics.BulkErasures.WithLabelValues(string(result.OverallStatus)).Inc()
		e.metrics.BulkUsers.Add(float64(len(userIDs)))
	}
	ports.LogAudit(ctx, e.logger, e.auditPublisher, audit.EventBulkErasureCompleted, "",
		"run_id", result.RunID,
		"user_count", result.UserCount,
		"status", string(result.OverallStatus),
		"failed_users", len(failedIDs),
	)

	return result, nil
}

// bulkPerID fans one non-batchable step out across users. Calls are scoped
// by user id, so concurrent invocations for different users are safe; the
// group never returns an error because failures are recorded, not raised.
func (e *Eraser) bulkPerID(
	ctx context.Context,
	userIDs []id.UserID,
	component string,
	isCritical bool,
	failures *bulkFailures,
	fn func(ctx context.Context, userID id.UserID) error,
) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.BulkConcurrency)
	for _, userID := range userIDs {
		g.Go(func() error {
			if err := fn(gctx, userID); err != nil {
				failures.record(userID, component, isCritical)
				e.metrics.IncComponentFailure(component, "bulk_erasure")
				if e.logger != nil {
					e.logger.WarnContext(gctx, "bulk backend delete failed",
						"component", component,
						"subject_hash", privacy.HashID(userID.String()),
						"error", err,
					)
				}
			}
			return nil
		})
	}
	_ = g.Wait()
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
