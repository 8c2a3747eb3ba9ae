package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveOverallStatus(t *testing.T) {
	ok := ComponentOutcome{Name: "cache", Status: ComponentDeleted}
	bad := ComponentOutcome{Name: "graph_store", Status: ComponentError, Detail: "timeout"}

	tests := []struct {
		name             string
		components       []ComponentOutcome
		criticalFailures []string
		want             OverallStatus
	}{
		{
			name:       "all succeeded",
			components: []ComponentOutcome{ok, ok},
			want:       StatusSuccess,
		},
		{
			name:       "non-critical failure",
			components: []ComponentOutcome{ok, bad},
			want:       StatusPartial,
		},
		{
			name:             "critical failure",
			components:       []ComponentOutcome{ok, bad},
			criticalFailures: []string{"relational_store"},
			want:             StatusFailed,
		},
		{
			name:             "critical failure outranks partial",
			components:       []ComponentOutcome{bad, bad},
			criticalFailures: []string{"key_destruction"},
			want:             StatusFailed,
		},
		{
			name: "no components",
			want: StatusSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveOverallStatus(tt.components, tt.criticalFailures))
		})
	}
}

func TestDeriveBulkStatus(t *testing.T) {
	tests := []struct {
		name    string
		perUser map[string]UserErasureSummary
		want    OverallStatus
	}{
		{
			name: "empty run",
			want: StatusSuccess,
		},
		{
			name: "all success",
			perUser: map[string]UserErasureSummary{
				"a": {Status: StatusSuccess},
				"b": {Status: StatusSuccess},
			},
			want: StatusSuccess,
		},
		{
			name: "one partial",
			perUser: map[string]UserErasureSummary{
				"a": {Status: StatusSuccess},
				"b": {Status: StatusPartial},
			},
			want: StatusPartial,
		},
		{
			name: "one failed outranks partial",
			perUser: map[string]UserErasureSummary{
				"a": {Status: StatusPartial},
				"b": {Status: StatusFailed},
			},
			want: StatusFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveBulkStatus(tt.perUser))
		})
	}
}

func TestComponentOutcomeFailed(t *testing.T) {
	assert.True(t, ComponentOutcome{Status: ComponentError}.Failed())
	assert.False(t, ComponentOutcome{Status: ComponentDeleted}.Failed())
	assert.False(t, ComponentOutcome{Status: ComponentDestroyed}.Failed())
	assert.False(t, ComponentOutcome{Status: ComponentRestricted}.Failed())
}
