package service

import (
	"strings"

	"career-compass/internal/domain"
	"career-compass/internal/dto"
)

const narrationMessage = "Synthesize audio on the client using the given voice code"

// NarrationService describes how clients should speak text aloud. Audio is
// produced by the client speech engine, so no audio URL is returned.
type NarrationService interface {
	Languages() []domain.Language
	Describe(text, lang string) (*dto.AudioResponse, error)
}

type narrationService struct{}

func NewNarrationService() NarrationService {
	return &narrationService{}
}

func (s *narrationService) Languages() []domain.Language {
	return domain.Languages
}

func (s *narrationService) Describe(text, lang string) (*dto.AudioResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewInvalidInputError("Text parameter is required")
	}
	if lang == "" {
		lang = domain.DefaultLanguage
	}
	language, ok := domain.LookupLanguage(lang)
	if !ok {
		return nil, domain.NewUnsupportedLanguageError(lang, domain.LanguageCodes())
	}

	return &dto.AudioResponse{
		Success:      true,
		Text:         text,
		Lang:         language.Code,
		LanguageName: language.EnglishName,
		VoiceCode:    language.VoiceCode,
		AudioURL:     nil,
		Message:      narrationMessage,
	}, nil
}
