// Package models defines the report artifacts produced by the data-lifecycle
// orchestrators. Reports are returned to the compliance API boundary, never
// logged; log lines carry only hashed identifiers.
package models

import (
	"encoding/json"
	"time"
)

// OverallStatus is the three-valued terminal status of a lifecycle operation.
//
// The distinction between failed and partial is the core contract of this
// subsystem: failed means a system of record (or key destruction) still holds
// the user, partial means only non-critical leftovers remain as a cleanup
// backlog. It is a contract violation to report success with a non-empty
// failure list.
type OverallStatus string

const (
	StatusSuccess OverallStatus = "success"
	StatusPartial OverallStatus = "partial"
	StatusFailed  OverallStatus = "failed"
)

// ComponentStatus is the outcome of one module or backend step.
type ComponentStatus string

const (
	ComponentDeleted    ComponentStatus = "deleted"
	ComponentDestroyed  ComponentStatus = "destroyed"
	ComponentRestricted ComponentStatus = "restricted"
	ComponentActive     ComponentStatus = "active"
	ComponentError      ComponentStatus = "error"
)

// ProcessingRestriction is the reversible freeze flag on a user's data.
// Restriction must never destroy data; it only marks it as not to be
// actively processed.
type ProcessingRestriction string

const (
	RestrictionActive     ProcessingRestriction = "active"
	RestrictionRestricted ProcessingRestriction = "restricted"
)

// ComponentOutcome records what happened to a single named target.
type ComponentOutcome struct {
	Name   string          `json:"name"`
	Status ComponentStatus `json:"status"`
	Detail string          `json:"detail,omitempty"`
}

// Failed reports whether this component's step errored.
func (o ComponentOutcome) Failed() bool {
	return o.Status == ComponentError
}

// ExportRecord is one source's contribution to an export. Immutable and
// transient; never persisted by the orchestrator.
type ExportRecord struct {
	SourceName string          `json:"source_name"`
	ExportedAt time.Time       `json:"exported_at"`
	Payload    json.RawMessage `json:"payload"`
}

// ExportPackage is the completeness-annotated artifact of a right-of-access
// request.
//
// Invariant: Complete is true iff FailedSources is empty. A reviewer must be
// able to see exactly which sources are missing.
type ExportPackage struct {
	PackageID     string                  `json:"package_id"`
	UserIDHash    string                  `json:"user_id_hash"`
	ExportedAt    time.Time               `json:"exported_at"`
	TotalRecords  int                     `json:"total_record_count"`
	Complete      bool                    `json:"complete"`
	FailedSources []string                `json:"failed_sources"`
	Sources       map[string]ExportRecord `json:"sources"`
}

// ErasureReport is the artifact of a right-to-be-forgotten request.
//
// Invariant: OverallStatus == StatusFailed iff CriticalFailures is non-empty,
// regardless of how many non-critical components also failed. StatusSuccess
// iff every component succeeded; StatusPartial otherwise.
type ErasureReport struct {
	ReportID            string             `json:"report_id"`
	UserID              string             `json:"user_id"`
	CompletedAt         time.Time          `json:"completed_at"`
	Components          []ComponentOutcome `json:"components"`
	OverallStatus       OverallStatus      `json:"overall_status"`
	CriticalFailures    []string           `json:"critical_failures"`
	SucceededComponents []string           `json:"succeeded_components"`
}

// RestrictionReport is the artifact of a freeze or unfreeze request. It is
// structurally an erasure report whose components end restricted or active
// instead of deleted.
type RestrictionReport struct {
	ReportID      string                `json:"report_id"`
	UserID        string                `json:"user_id"`
	CompletedAt   time.Time             `json:"completed_at"`
	State         ProcessingRestriction `json:"state"`
	Components    []ComponentOutcome    `json:"components"`
	OverallStatus OverallStatus         `json:"overall_status"`
	FailedTargets []string              `json:"failed_targets"`
}

// UserErasureSummary is one user's slice of a bulk erasure run.
type UserErasureSummary struct {
	Status              OverallStatus `json:"status"`
	CriticalFailures    []string      `json:"critical_failures"`
	NonCriticalFailures []string      `json:"non_critical_failures"`
}

// BulkErasureResult aggregates per-user outcomes of a bulk campaign.
//
// Invariant: OverallStatus is StatusFailed if any user failed, else
// StatusPartial if any user is partial, else StatusSuccess. One user's
// failure never contaminates another user's per-user status.
type BulkErasureResult struct {
	RunID         string                        `json:"run_id"`
	UserCount     int                           `json:"user_count"`
	CompletedAt   time.Time                     `json:"completed_at"`
	PerUser       map[string]UserErasureSummary `json:"per_user"`
	OverallStatus OverallStatus                 `json:"overall_status"`
	FailedUserIDs []string                      `json:"failed_user_ids"`
}

// DeriveOverallStatus computes the three-valued status from component
// outcomes and the names of failed critical components.
func DeriveOverallStatus(components []ComponentOutcome, criticalFailures []string) OverallStatus {
	if len(criticalFailures) > 0 {
		return StatusFailed
	}
	for _, c := range components {
		if c.Failed() {
			return StatusPartial
		}
	}
	return StatusSuccess
}

// DeriveBulkStatus folds per-user statuses into the aggregate, reflecting the
// worst case.
func DeriveBulkStatus(perUser map[string]UserErasureSummary) OverallStatus {
	status := StatusSuccess
	for _, summary := range perUser {
		switch summary.Status {
		case StatusFailed:
			return StatusFailed
		case StatusPartial:
			status = StatusPartial
		}
	}
	return status
}
