package judge

import (
	"sort"

	"gitlab.com/dsa-judge.net/internal/domain"
)

// judge0Languages pins each track to one Judge0 CE language id.
var judge0Languages = map[domain.LanguageTrack]domain.LanguageCode{
	domain.LanguageJavaScript: 63, // Node.js 12.14.0
	domain.LanguagePython:     71, // Python 3.8.1
	domain.LanguageJava:       62, // OpenJDK 13.0.1
	domain.LanguageCpp:        54, // GCC 9.2.0
	domain.LanguageGo:         60, // Go 1.13.5
}

// ResolveLanguage maps a language name to its judge code, ignoring case.
func ResolveLanguage(name string) (domain.LanguageCode, error) {
	code, ok := judge0Languages[domain.NormalizeLanguageTrack(name)]
	if !ok {
		return 0, &domain.ConfigurationError{Language: name}
	}
	return code, nil
}

// SupportedLanguages lists the known tracks in a stable order.
func SupportedLanguages() []domain.LanguageTrack {
	tracks := make([]domain.LanguageTrack, 0, len(judge0Languages))
	for track := range judge0Languages {
		tracks = append(tracks, track)
	}
	sort.Slice(tracks, func(i, j int) bool { return tracks[i] < tracks[j] })
	return tracks
}
