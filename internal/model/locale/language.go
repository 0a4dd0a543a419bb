package locale

import "strings"

// Language identifies one of the two supported content languages.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// Supported lists every language the resource table must cover.
var Supported = []Language{English, Hindi}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	switch l {
	case English, Hindi:
		return true
	default:
		return false
	}
}

// Resolve maps free-form input onto a supported language.
// Anything unrecognised falls back to English.
func Resolve(raw string) Language {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "hi", "hi-in", "hindi", "हिंदी", "हिन्दी":
		return Hindi
	default:
		return English
	}
}

// ResolveOr is Resolve with a caller-chosen language for blank input.
func ResolveOr(raw string, fallback Language) Language {
	if strings.TrimSpace(raw) == "" {
		return fallback.OrEnglish()
	}
	return Resolve(raw)
}

// OrEnglish returns l when supported, otherwise English.
func (l Language) OrEnglish() Language {
	if l.Valid() {
		return l
	}
	return English
}

// VoiceTag returns the BCP 47 tag used for speech recognition and synthesis.
func (l Language) VoiceTag() string {
	if l.OrEnglish() == Hindi {
		return "hi-IN"
	}
	return "en-US"
}
