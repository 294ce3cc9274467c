package validation

import (
	"regexp"
	"strings"

	"career-compass/internal/domain"
)

const (
	MaxNarrationTextLength = 5000
	maxSelectedAreas       = 10
)

var areaIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAreaSelection checks the shape of an area selection. Well-formed
// ids that match no area are allowed; they simply contribute nothing.
func (v *Validator) ValidateAreaSelection(selectedAreas []string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(selectedAreas) == 0 {
		return append(errors, domain.NewMissingFieldError("selectedAreas"))
	}
	if len(selectedAreas) > maxSelectedAreas {
		errors = append(errors, domain.NewOutOfRangeError("selectedAreas", len(selectedAreas), 1, maxSelectedAreas))
	}

	seen := make(map[string]bool, len(selectedAreas))
	for _, id := range selectedAreas {
		if !areaIDPattern.MatchString(id) {
			errors = append(errors, domain.NewInvalidFormatError("selectedAreas", id))
			continue
		}
		if seen[id] {
			errors = append(errors, domain.ValidationError{
				Field:   "selectedAreas",
				Code:    domain.CodeInvalidFormat,
				Message: "selectedAreas must not contain duplicates",
				Value:   id,
			})
		}
		seen[id] = true
	}

	return errors
}

// ValidateNarrationText bounds the text a client may ask to narrate. An
// empty text is reported by the narration service itself.
func (v *Validator) ValidateNarrationText(text string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if n := len([]rune(strings.TrimSpace(text))); n > MaxNarrationTextLength {
		errors = append(errors, domain.NewOutOfRangeError("text", n, 1, MaxNarrationTextLength))
	}
	return errors
}
