package domain

// Language is a narration language supported by the client speech engine.
type Language struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
	VoiceCode   string `json:"voiceCode"`
}

const DefaultLanguage = "en"

// Languages lists supported narration languages in display order.
var Languages = []Language{
	{Code: "en", Name: "English", EnglishName: "English", VoiceCode: "en-IN"},
	{Code: "hi", Name: "हिंदी", EnglishName: "Hindi", VoiceCode: "hi-IN"},
	{Code: "ta", Name: "தமிழ்", EnglishName: "Tamil", VoiceCode: "ta-IN"},
	{Code: "te", Name: "తెలుగు", EnglishName: "Telugu", VoiceCode: "te-IN"},
	{Code: "kn", Name: "ಕನ್ನಡ", EnglishName: "Kannada", VoiceCode: "kn-IN"},
	{Code: "ml", Name: "മലയാളം", EnglishName: "Malayalam", VoiceCode: "ml-IN"},
	{Code: "mr", Name: "मराठी", EnglishName: "Marathi", VoiceCode: "mr-IN"},
	{Code: "bn", Name: "বাংলা", EnglishName: "Bengali", VoiceCode: "bn-IN"},
}

// LookupLanguage finds a language by its code.
func LookupLanguage(code string) (Language, bool) {
	for _, l := range Languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// LanguageCodes returns the supported codes in display order.
func LanguageCodes() []string {
	codes := make([]string, 0, len(Languages))
	for _, l := range Languages {
		codes = append(codes, l.Code)
	}
	return codes
}
