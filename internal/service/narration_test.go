package service

import (
	"testing"

	"career-compass/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrationService_Describe(t *testing.T) {
	svc := NewNarrationService()
	assert.Len(t, svc.Languages(), 8)

	res, err := svc.Describe("Welcome", "")
	require.NoError(t, err)
	assert.Equal(t, "en", res.Lang)
	assert.Equal(t, "en-IN", res.VoiceCode)
	assert.Nil(t, res.AudioURL)
	assert.True(t, res.Success)

	res, err = svc.Describe("नमस्ते", "hi")
	require.NoError(t, err)
	assert.Equal(t, "Hindi", res.LanguageName)
	assert.Equal(t, "hi-IN", res.VoiceCode)

	_, err = svc.Describe("   ", "en")
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.CodeInvalidInput))

	_, err = svc.Describe("Hello", "fr")
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.CodeUnsupportedLanguage))
	assert.Contains(t, err.Error(), "en, hi, ta, te, kn, ml, mr, bn")
}
