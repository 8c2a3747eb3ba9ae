// Package ports defines shared interfaces for the lifecycle module.
// Interfaces are placed here when consumed by multiple orchestrators to
// avoid duplication.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"log/slog"

	id "custodian/pkg/domain"
	"custodian/internal/platform/middleware"
	audit "custodian/pkg/platform/audit"
)

// Canonical component names. Backends register under these names; the
// criticality configuration and reports refer to them.
const (
	ComponentRelationalStore = "relational_store"
	ComponentCache           = "cache"
	ComponentGraphStore      = "graph_store"
	ComponentVectorStore     = "vector_store"
	ComponentMemoryStore     = "memory_store"
	ComponentKeyDestruction  = "key_destruction"
)

// DataModule is the capability contract every feature module exposes. The
// orchestrators iterate the registry blind to each module's internal storage.
// All four operations must be idempotent and independently callable.
type DataModule interface {
	// Name uniquely identifies the module within the registry.
	Name() string

	// Export returns the module's slice of the user's data as JSON.
	Export(ctx context.Context, userID id.UserID) (json.RawMessage, error)

	// Erase permanently removes the module's data for the user.
	Erase(ctx context.Context, userID id.UserID) error

	// Restrict flags the module's data as not to be actively processed.
	Restrict(ctx context.Context, userID id.UserID) error

	// Unrestrict reverses Restrict.
	Unrestrict(ctx context.Context, userID id.UserID) error
}

// BackendAdapter is the shared contract for the per-backend adapters.
// Adding a backend means adding one adapter and one registration, not
// editing orchestrator control flow.
type BackendAdapter interface {
	// Name returns the canonical component name.
	Name() string

	// Export returns the backend's data for the user, or (nil, nil) when the
	// backend holds nothing for them. Absence is not a failure.
	Export(ctx context.Context, userID id.UserID) (json.RawMessage, error)

	// Delete removes the backend's data for the user. Must be idempotent.
	Delete(ctx context.Context, userID id.UserID) error
}

// BatchDeleter is an optional capability of a BackendAdapter: deleting N
// users in one round trip. The bulk orchestrator type-asserts for it and
// falls back to per-id loops when absent.
type BatchDeleter interface {
	DeleteBatch(ctx context.Context, userIDs []id.UserID) error
}

// Restrictor is an optional capability of a BackendAdapter: flipping the
// reversible processing-restriction flag. Only systems of record implement
// it; restriction never touches caches or derived stores.
type Restrictor interface {
	Restrict(ctx context.Context, userID id.UserID) error
	Unrestrict(ctx context.Context, userID id.UserID) error
}

// KeyDestroyer is the crypto-shredding primitive. DestroyKeys makes all
// ciphertext for the user permanently unrecoverable, independent of whether
// raw bytes were erased elsewhere. Safe to call multiple times.
type KeyDestroyer interface {
	DestroyKeys(ctx context.Context, userID id.UserID) error
}

// AuditPublisher emits audit events for compliance-relevant operations.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// LogAudit is a shared helper for the lifecycle orchestrators. It logs to
// the structured logger and emits to the audit publisher when available.
// Audit emission is fail-open: the report returned to the caller is the
// legal artifact, the trail is corroboration.
func LogAudit(ctx context.Context, logger *slog.Logger, publisher AuditPublisher, action audit.AuditEvent, subjectHash string, attrs ...any) {
	requestID := middleware.GetRequestID(ctx)
	if requestID != "" {
		attrs = append(attrs, "request_id", requestID)
	}

	args := append(attrs, "event", string(action), "subject_hash", subjectHash, "log_type", "audit")
	if logger != nil {
		logger.InfoContext(ctx, string(action), args...)
	}

	if publisher == nil {
		return
	}
	event := audit.Event{
		Action:      string(action),
		SubjectHash: subjectHash,
		RequestID:   requestID,
		ActorID:     middleware.GetActorID(ctx),
	}
	if err := publisher.Emit(ctx, event); err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to emit audit event", "event", string(action), "error", err)
	}
}
