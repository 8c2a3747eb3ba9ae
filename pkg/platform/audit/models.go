package audit

import "time"

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies, storage backends, and routing.
type EventCategory string

const (
	// CategoryCompliance covers events with legal/regulatory significance.
	// These require tamper-proof storage and long retention (e.g., 7 years).
	// Examples: exports, erasures, restriction changes.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers events useful for debugging and operational
	// visibility. These can be sampled with shorter retention.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from the lifecycle orchestrators to capture key actions.
// Keep it transport-agnostic so stores and sinks can fan out.
//
// SubjectHash is a SHA3-256 hash of the data subject's identifier. The raw
// identifier must never enter the audit trail: for erasure events especially,
// the trail outlives the user record it describes.
type Event struct {
	Category    EventCategory
	Timestamp   time.Time
	SubjectHash string
	Action      string
	Status      string
	Detail      string
	RequestID   string
	ActorID     string
}

// AuditEvent names the actions the lifecycle service emits.
type AuditEvent string

const (
	EventDataExported           AuditEvent = "user_data_exported"
	EventDataErased             AuditEvent = "user_data_erased"
	EventProcessingRestricted   AuditEvent = "processing_restricted"
	EventProcessingUnrestricted AuditEvent = "processing_unrestricted"
	EventBulkErasureCompleted   AuditEvent = "bulk_erasure_completed"
	EventRetentionSweepRun      AuditEvent = "retention_sweep_run"
)

// eventCategories is the source of truth for routing events to categories.
var eventCategories = map[AuditEvent]EventCategory{
	EventDataExported:           CategoryCompliance,
	EventDataErased:             CategoryCompliance,
	EventProcessingRestricted:   CategoryCompliance,
	EventProcessingUnrestricted: CategoryCompliance,
	EventBulkErasureCompleted:   CategoryCompliance,
	EventRetentionSweepRun:      CategoryOperations,
}

// Category returns the category for an event action, defaulting to
// operations for unknown actions.
func (e AuditEvent) Category() EventCategory {
	if c, ok := eventCategories[e]; ok {
		return c
	}
	return CategoryOperations
}
