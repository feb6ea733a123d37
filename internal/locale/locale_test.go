package locale

import "testing"

func TestForFallsBackToDefault(t *testing.T) {
	def := For(DefaultCode)

	for _, code := range []string{"", "fr", "xx", "EN"} {
		got := For(code)
		if got != def {
			t.Errorf("For(%q) = %+v, want default strings", code, got)
		}
	}
}

func TestForKnownLanguages(t *testing.T) {
	for _, lang := range Supported() {
		s := For(lang.Code)
		if s.Greeting == "" || s.Closing == "" || s.NoResults == "" {
			t.Errorf("incomplete strings for %q: %+v", lang.Code, s)
		}
		if !Known(lang.Code) {
			t.Errorf("Known(%q) = false for supported language", lang.Code)
		}
	}
}

func TestSupportedDefaultFirst(t *testing.T) {
	langs := Supported()
	if len(langs) < 2 {
		t.Fatalf("expected at least two languages, got %d", len(langs))
	}
	if langs[0].Code != DefaultCode {
		t.Errorf("first supported language = %q, want %q", langs[0].Code, DefaultCode)
	}
}
