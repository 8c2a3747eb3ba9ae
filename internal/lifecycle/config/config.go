// Package config carries lifecycle-specific tuning. Criticality is
// deliberately configuration rather than a structural constant: a deployment
// that treats the vector store as a system of record can promote it here
// without touching orchestrator code.
package config

import "custodian/internal/lifecycle/ports"

// Config tunes the lifecycle orchestrators.
type Config struct {
	// Critical names the components whose deletion failure forces the whole
	// erasure to be reported as failed rather than partial.
	Critical map[string]bool

	// BulkConcurrency bounds the fan-out across users in the per-id phases
	// of a bulk erasure.
	BulkConcurrency int
}

// DefaultConfig marks the systems of record and key destruction as critical:
// the relational store and cache answer "does this user still exist", and
// key destruction makes remaining ciphertext unreadable. Losing any of the
// three means the user cannot honestly be reported as deleted.
func DefaultConfig() *Config {
	return &Config{
		Critical: map[string]bool{
			ports.ComponentRelationalStore: true,
			ports.ComponentCache:           true,
			ports.ComponentKeyDestruction:  true,
		},
		BulkConcurrency: 8,
	}
}

// IsCritical reports whether a component's failure is terminal for the
// erasure status. Modules are never critical; only backends appear here.
func (c *Config) IsCritical(name string) bool {
	return c.Critical[name]
}
