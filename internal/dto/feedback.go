package dto

import "time"

// FeedbackRequest is the feedback form body.
// @Description Feedback submission
type FeedbackRequest struct {
	Name    string  `json:"name"`
	Message *string `json:"message"`
	Rating  *int    `json:"rating"`
}

type FeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const FeedbackThanksMessage = "Thank you for your feedback!"

type FeedbackCountResponse struct {
	FeedbackCount int `json:"feedbackCount"`
}

// FeedbackEntry is one stored submission as shown to admins.
type FeedbackEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Rating    int       `json:"rating,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type FeedbackListResponse struct {
	Feedback []FeedbackEntry `json:"feedback"`
}
