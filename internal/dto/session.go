package dto

import "career-compass/internal/domain"

// SaveSessionResponse acknowledges a stored session.
// @Description Result of saving a session
type SaveSessionResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

const SessionSavedMessage = "Session saved successfully"

type SessionsResponse struct {
	Sessions []*domain.Session `json:"sessions"`
}

type SessionResponse struct {
	Session *domain.Session `json:"session"`
}
