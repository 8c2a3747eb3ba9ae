package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Adapters and registries return
// these (optionally wrapped) so orchestrators can translate them into domain
// errors or recorded component outcomes.
//
// These represent factual states about resources, not validation failures:
// - ErrAlreadyRegistered: a module with the same name is already registered
// - ErrNotConfigured: the deployment claims a capability that has no handle
// - ErrUnavailable: backend temporarily unreachable or failing fast
//
// For validation errors (bad input, missing fields), use pkg/domain-errors.
var (
	ErrAlreadyRegistered = errors.New("already registered")
	ErrNotConfigured     = errors.New("not configured")
	ErrUnavailable       = errors.New("unavailable")
)
