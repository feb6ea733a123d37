// Package locale holds the localized UI strings used when composing and
// presenting gallery emails.
package locale

// Strings is the set of fixed phrases for one display language.
type Strings struct {
	Greeting  string
	Closing   string
	NoResults string
	Loading   string
	CopyHint  string
}

// Language pairs a selectable language code with its selector label.
type Language struct {
	Code  string
	Label string
}

// DefaultCode is used whenever a language code is missing or unrecognized.
const DefaultCode = "en"

var table = map[string]Strings{
	"en": {
		Greeting:  "Hello,",
		Closing:   "Best regards,",
		NoResults: "No templates match your search.",
		Loading:   "Translating templates...",
		CopyHint:  "Copy email",
	},
	"de": {
		Greeting:  "Hallo,",
		Closing:   "Mit freundlichen Grüßen,",
		NoResults: "Keine Vorlagen gefunden.",
		Loading:   "Vorlagen werden übersetzt...",
		CopyHint:  "E-Mail kopieren",
	},
}

// For returns the strings for a language code, falling back to the default
// language when the code is not in the table.
func For(code string) Strings {
	if s, ok := table[code]; ok {
		return s
	}
	return table[DefaultCode]
}

// Supported returns the selectable languages in a stable order, default first.
func Supported() []Language {
	return []Language{
		{Code: "en", Label: "English"},
		{Code: "de", Label: "Deutsch"},
	}
}

// Known reports whether a code has an entry in the table.
func Known(code string) bool {
	_, ok := table[code]
	return ok
}
