package validation

import (
	"strings"
	"testing"

	"career-compass/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidateAreaSelection(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		areas     []string
		wantCodes []domain.ErrorCode
	}{
		{name: "valid", areas: []string{"engineering", "civil-services"}},
		{name: "unknown but well formed", areas: []string{"astronomy"}},
		{name: "empty", areas: nil, wantCodes: []domain.ErrorCode{domain.CodeMissingField}},
		{name: "bad format", areas: []string{"Engineering", "../x"}, wantCodes: []domain.ErrorCode{domain.CodeInvalidFormat, domain.CodeInvalidFormat}},
		{name: "duplicate", areas: []string{"law", "law"}, wantCodes: []domain.ErrorCode{domain.CodeInvalidFormat}},
		{name: "too many", areas: strings.Split("a,b,c,d,e,f,g,h,i,j,k", ","), wantCodes: []domain.ErrorCode{domain.CodeOutOfRange}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateAreaSelection(tt.areas)
			var codes []domain.ErrorCode
			for _, e := range errs {
				codes = append(codes, e.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestValidateNarrationText(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateNarrationText("Hello"))
	assert.Empty(t, v.ValidateNarrationText(""))

	errs := v.ValidateNarrationText(strings.Repeat("अ", MaxNarrationTextLength+1))
	if assert.Len(t, errs, 1) {
		assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)
	}
}
