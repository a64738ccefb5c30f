package types_test

import (
	"testing"

	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestParseBusinessType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.BusinessType
		wantErr bool
	}{
		{
			name:    "exact value",
			input:   "retail",
			want:    types.BusinessTypeRetail,
			wantErr: false,
		},
		{
			name:    "mixed case with space",
			input:   "Professional Services",
			want:    types.BusinessTypeProfessionalServices,
			wantErr: false,
		},
		{
			name:    "uppercase",
			input:   "HEALTHCARE",
			want:    types.BusinessTypeHealthcare,
			wantErr: false,
		},
		{
			name:    "surrounding whitespace",
			input:   "  technology ",
			want:    types.BusinessTypeTechnology,
			wantErr: false,
		},
		{
			name:    "unknown type",
			input:   "hospitality",
			want:    "",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			want:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseBusinessType(tt.input)
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

func TestAllBusinessTypes(t *testing.T) {
	businessTypes := types.AllBusinessTypes()
	gt.A(t, businessTypes).Length(6)

	for _, bt := range businessTypes {
		gt.B(t, bt.IsValid()).
			Describef("Business type %s should be valid", bt).
			True()
	}

	typeMap := make(map[types.BusinessType]bool)
	for _, bt := range businessTypes {
		typeMap[bt] = true
	}

	gt.B(t, typeMap[types.BusinessTypeGeneral]).True()
	gt.B(t, typeMap[types.BusinessTypeManufacturing]).True()
}

func TestBusinessType_IsValid(t *testing.T) {
	gt.B(t, types.BusinessTypeRetail.IsValid()).True()
	gt.B(t, types.BusinessType("Retail").IsValid()).False()
	gt.B(t, types.BusinessType("").IsValid()).False()
}
