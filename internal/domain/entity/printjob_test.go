package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from JobStatus
		to   JobStatus
		want bool
	}{
		{"pending to processing", JobStatusPending, JobStatusProcessing, true},
		{"pending to completed", JobStatusPending, JobStatusCompleted, true},
		{"processing to completed", JobStatusProcessing, JobStatusCompleted, true},
		{"processing to pending", JobStatusProcessing, JobStatusPending, false},
		{"completed to processing", JobStatusCompleted, JobStatusProcessing, false},
		{"completed to pending", JobStatusCompleted, JobStatusPending, false},
		{"no self transition", JobStatusProcessing, JobStatusProcessing, false},
		{"unknown source", JobStatus("CANCELLED"), JobStatusCompleted, false},
		{"unknown target", JobStatusPending, JobStatus("CANCELLED"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestJobStatus_IsValid(t *testing.T) {
	assert.True(t, JobStatusPending.IsValid())
	assert.True(t, JobStatusProcessing.IsValid())
	assert.True(t, JobStatusCompleted.IsValid())
	assert.False(t, JobStatus("CANCELLED").IsValid())
	assert.False(t, JobStatus("").IsValid())
}

func TestPricingConfig_PricePerPage(t *testing.T) {
	rule := &PricingConfig{SingleSided: 1.5, DoubleSided: 2.5}

	assert.InDelta(t, 1.5, rule.PricePerPage(PrintSideSingle), 0.0001)
	assert.InDelta(t, 2.5, rule.PricePerPage(PrintSideDouble), 0.0001)
}
