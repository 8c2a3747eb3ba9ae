package domain

import (
	"github.com/google/uuid"

	dErrors "custodian/pkg/domain-errors"
)

// UserID is a typed UUID identifying a data subject.
// Invariant: a UserID is either nil or a valid, non-nil UUID.
//
// Usage: construct via ParseUserID at trust boundaries; direct casting
// bypasses validation.
type UserID uuid.UUID

// ParseUserID constructs a UserID from external input.
//
// Errors: returns CodeInvalidInput when the value is empty, not a UUID, or
// the nil UUID; no other errors are expected.
func ParseUserID(s string) (UserID, error) {
	if s == "" {
		return UserID(uuid.Nil), dErrors.New(dErrors.CodeInvalidInput, "user ID cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return UserID(uuid.Nil), dErrors.New(dErrors.CodeInvalidInput, "user ID must be a valid UUID")
	}
	if u == uuid.Nil {
		return UserID(uuid.Nil), dErrors.New(dErrors.CodeInvalidInput, "user ID cannot be the nil UUID")
	}
	return UserID(u), nil
}

// NewUserID generates a fresh random UserID.
func NewUserID() UserID {
	return UserID(uuid.New())
}

// IsNil reports whether the ID is the zero UUID.
func (id UserID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

// String returns the canonical UUID string form.
func (id UserID) String() string {
	return uuid.UUID(id).String()
}
