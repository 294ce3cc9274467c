package domain

import (
	"strings"
	"time"
)

const (
	AnonymousName     = "Anonymous"
	MinFeedbackLength = 5
	MaxFeedbackLength = 2000
	MinFeedbackRating = 1
	MaxFeedbackRating = 5
)

// Feedback is a durable record of one feedback submission.
type Feedback struct {
	ID        string
	Name      string
	Message   string
	Rating    int // 0 when not given
	CreatedAt time.Time
}

// NewFeedback normalises raw input into a record ready for validation.
func NewFeedback(id, name, message string, rating int) *Feedback {
	name = strings.TrimSpace(name)
	if name == "" {
		name = AnonymousName
	}
	return &Feedback{
		ID:        id,
		Name:      name,
		Message:   strings.TrimSpace(message),
		Rating:    rating,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks message length and rating range.
func (f *Feedback) Validate() error {
	var errs ValidationErrors
	if f.Message == "" {
		errs = append(errs, NewMissingFieldError("message"))
	} else if n := len([]rune(f.Message)); n < MinFeedbackLength || n > MaxFeedbackLength {
		errs = append(errs, NewOutOfRangeError("message", n, MinFeedbackLength, MaxFeedbackLength))
	}
	if f.Rating != 0 && (f.Rating < MinFeedbackRating || f.Rating > MaxFeedbackRating) {
		errs = append(errs, NewOutOfRangeError("rating", f.Rating, MinFeedbackRating, MaxFeedbackRating))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
