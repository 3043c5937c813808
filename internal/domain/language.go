package domain

import "strings"

// LanguageTrack is one of the languages a problem can carry starter code and
// reference solutions for.
type LanguageTrack string

const (
	LanguageJavaScript LanguageTrack = "JAVASCRIPT"
	LanguagePython     LanguageTrack = "PYTHON"
	LanguageJava       LanguageTrack = "JAVA"
	LanguageCpp        LanguageTrack = "CPP"
	LanguageGo         LanguageTrack = "GO"
)

// LanguageCode is the remote judge's numeric language identifier.
type LanguageCode int

// NormalizeLanguageTrack upper-cases and trims a user supplied language name.
func NormalizeLanguageTrack(name string) LanguageTrack {
	return LanguageTrack(strings.ToUpper(strings.TrimSpace(name)))
}
