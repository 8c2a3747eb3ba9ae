package domain

import dErrors "custodian/pkg/domain-errors"

// DataClassification is the sensitivity tier carried by every stored field.
// It drives retention windows and, outside this service, encryption strength.
//
// Usage: construct via ParseDataClassification at trust boundaries to enforce
// the allowlist; direct casting bypasses validation.
type DataClassification string

// Supported classification tiers, ordered from least to most sensitive.
const (
	ClassificationPublic          DataClassification = "public"
	ClassificationInternal        DataClassification = "internal"
	ClassificationSensitive       DataClassification = "sensitive"
	ClassificationSpecialCategory DataClassification = "special_category"
	ClassificationFinancial       DataClassification = "financial"
)

// validClassifications is the single source of truth for valid tiers.
var validClassifications = map[DataClassification]bool{
	ClassificationPublic:          true,
	ClassificationInternal:        true,
	ClassificationSensitive:       true,
	ClassificationSpecialCategory: true,
	ClassificationFinancial:       true,
}

// Classifications returns all supported tiers. The slice is a copy; callers
// may mutate it freely.
func Classifications() []DataClassification {
	return []DataClassification{
		ClassificationPublic,
		ClassificationInternal,
		ClassificationSensitive,
		ClassificationSpecialCategory,
		ClassificationFinancial,
	}
}

// ParseDataClassification constructs a DataClassification from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseDataClassification(s string) (DataClassification, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "classification cannot be empty")
	}
	c := DataClassification(s)
	if !c.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid classification")
	}
	return c, nil
}

// IsValid checks if the classification is one of the supported enum values.
func (c DataClassification) IsValid() bool {
	return validClassifications[c]
}

// AllowsIndefiniteRetention reports whether this tier may legally be kept
// forever. Only PUBLIC and INTERNAL qualify; SPECIAL_CATEGORY and FINANCIAL
// must always carry a bounded window.
func (c DataClassification) AllowsIndefiniteRetention() bool {
	return c == ClassificationPublic || c == ClassificationInternal
}

// String returns the string representation of the classification.
func (c DataClassification) String() string {
	return string(c)
}
