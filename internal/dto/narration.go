package dto

import "career-compass/internal/domain"

// AudioResponse describes how a client should narrate text.
// @Description Narration descriptor
type AudioResponse struct {
	Success      bool    `json:"success"`
	Text         string  `json:"text"`
	Lang         string  `json:"lang"`
	LanguageName string  `json:"languageName"`
	VoiceCode    string  `json:"voiceCode"`
	AudioURL     *string `json:"audioUrl"`
	Message      string  `json:"message"`
}

type LanguagesResponse struct {
	Languages []domain.Language `json:"languages"`
	Default   string            `json:"default"`
}
