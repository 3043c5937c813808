package judge

import (
	"errors"
	"testing"

	"gitlab.com/dsa-judge.net/internal/domain"
	"gitlab.com/dsa-judge.net/internal/static/errs"
)

func TestResolveLanguage(t *testing.T) {
	tests := map[string]domain.LanguageCode{
		"JAVASCRIPT": 63,
		"python":     71,
		" Java ":     62,
		"cpp":        54,
		"Go":         60,
	}
	for name, want := range tests {
		got, err := ResolveLanguage(name)
		if err != nil {
			t.Fatalf("ResolveLanguage(%q) returned error: %v", name, err)
		}
		if got != want {
			t.Fatalf("ResolveLanguage(%q) = %d, want %d", name, got, want)
		}
	}
}

func TestResolveUnknownLanguage(t *testing.T) {
	_, err := ResolveLanguage("COBOL")

	var cfgErr *domain.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want ConfigurationError", err)
	}
	if !errors.Is(err, errs.ErrUnsupportedLanguage) {
		t.Fatalf("err = %v, want wrapping ErrUnsupportedLanguage", err)
	}
}

func TestSupportedLanguagesIsSorted(t *testing.T) {
	langs := SupportedLanguages()
	if len(langs) != 5 {
		t.Fatalf("len = %d, want 5", len(langs))
	}
	for i := 1; i < len(langs); i++ {
		if langs[i-1] >= langs[i] {
			t.Fatalf("languages not sorted: %v", langs)
		}
	}
}
