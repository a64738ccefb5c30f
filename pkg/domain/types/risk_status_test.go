package types_test

import (
	"testing"

	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestParseRiskStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.RiskStatus
		wantErr bool
	}{
		{
			name:    "identified",
			input:   "identified",
			want:    types.RiskStatusIdentified,
			wantErr: false,
		},
		{
			name:    "mitigating",
			input:   "mitigating",
			want:    types.RiskStatusMitigating,
			wantErr: false,
		},
		{
			name:    "resolved",
			input:   "resolved",
			want:    types.RiskStatusResolved,
			wantErr: false,
		},
		{
			name:    "accepted",
			input:   "accepted",
			want:    types.RiskStatusAccepted,
			wantErr: false,
		},
		{
			name:    "unknown status",
			input:   "in_progress",
			want:    "",
			wantErr: true,
		},
		{
			name:    "wrong case",
			input:   "Resolved",
			want:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseRiskStatus(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
				gt.B(t, goerrHasValidationTag(err)).True()
			} else {
				gt.NoError(t, err)
				gt.V(t, got).Equal(tt.want)
			}
		})
	}
}

func TestAllRiskStatuses(t *testing.T) {
	statuses := types.AllRiskStatuses()
	gt.A(t, statuses).Length(4)

	for _, status := range statuses {
		gt.B(t, status.IsValid()).
			Describef("Status %s should be valid", status).
			True()
	}
}

func TestPriorityForWeight(t *testing.T) {
	gt.V(t, types.PriorityForWeight(3)).Equal(types.PriorityHigh)
	gt.V(t, types.PriorityForWeight(4)).Equal(types.PriorityHigh)
	gt.V(t, types.PriorityForWeight(2)).Equal(types.PriorityMedium)
	gt.V(t, types.PriorityForWeight(1)).Equal(types.PriorityLow)
	gt.V(t, types.PriorityForWeight(0)).Equal(types.PriorityLow)
}
