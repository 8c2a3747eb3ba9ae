// Package retention maps data classifications to retention windows and
// decides when records have aged out. The evaluator is pure; callers supply
// the reference time.
//
// Precondition: createdAt and now must be in the same timezone (the service
// normalizes everything to UTC at the edges).
package retention

import (
	"time"

	id "custodian/pkg/domain"
	dErrors "custodian/pkg/domain-errors"
)

// Indefinite is the sentinel window for data kept as long as the account
// exists. Only PUBLIC and INTERNAL tiers may carry it.
const Indefinite = -1

const hoursPerDay = 24

// Policy maps every classification tier to a retention window in days.
// Configured once at construction, read-only thereafter.
//
// A window of zero days means the data is not retained once the account is
// active: it is expired the moment it is written.
type Policy struct {
	windows map[id.DataClassification]int
}

// NewPolicy validates and freezes a retention configuration.
//
// Errors: CodeInvalidInput when a tier is missing, a window is below the
// sentinel, or SPECIAL_CATEGORY/FINANCIAL carry an indefinite window.
func NewPolicy(windows map[id.DataClassification]int) (*Policy, error) {
	frozen := make(map[id.DataClassification]int, len(windows))
	for _, c := range id.Classifications() {
		days, ok := windows[c]
		if !ok {
			return nil, dErrors.Newf(dErrors.CodeInvalidInput, "retention window missing for %s", c)
		}
		if days < Indefinite {
			return nil, dErrors.Newf(dErrors.CodeInvalidInput, "retention window for %s must be >= %d", c, Indefinite)
		}
		if days == Indefinite && !c.AllowsIndefiniteRetention() {
			return nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s must never carry indefinite retention", c)
		}
		frozen[c] = days
	}
	for c := range windows {
		if !c.IsValid() {
			return nil, dErrors.Newf(dErrors.CodeInvalidInput, "unknown classification %q", c.String())
		}
	}
	return &Policy{windows: frozen}, nil
}

// DefaultPolicy is the baseline deployment configuration: public and
// internal data kept indefinitely, sensitive tiers bounded.
func DefaultPolicy() *Policy {
	p, err := NewPolicy(map[id.DataClassification]int{
		id.ClassificationPublic:          Indefinite,
		id.ClassificationInternal:        Indefinite,
		id.ClassificationSensitive:       365,
		id.ClassificationSpecialCategory: 90,
		id.ClassificationFinancial:       2555, // statutory 7 years
	})
	if err != nil {
		// DefaultPolicy is a literal; a constructor error here is a bug.
		panic(err)
	}
	return p
}

// Window returns the configured window in days for a tier.
func (p *Policy) Window(c id.DataClassification) (int, bool) {
	days, ok := p.windows[c]
	return days, ok
}

// IsExpired reports whether a record created at createdAt has aged out of
// its tier's window as of now.
//
// Indefinite windows never expire. Zero-day windows are always expired,
// including records created at now. Positive windows expire once the age
// strictly exceeds the window.
func (p *Policy) IsExpired(c id.DataClassification, createdAt, now time.Time) bool {
	days, ok := p.windows[c]
	if !ok {
		// Constructor guarantees every valid tier is present; an unknown
		// tier here means the caller skipped ParseDataClassification.
		// Fail safe: unknown data is not silently kept forever.
		return true
	}
	switch {
	case days == Indefinite:
		return false
	case days == 0:
		return true
	default:
		return now.Sub(createdAt) > time.Duration(days)*hoursPerDay*time.Hour
	}
}
