// Package render turns gallery state into view models and the Datastar HTML
// that presents them. View models carry only presentation-ready strings so
// the markup layer stays free of filtering or translation logic.
package render

import "strings"

// escaper rewrites the five markup-significant characters in one pass, so an
// already-produced entity is never escaped twice.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape makes untrusted text safe to embed as element content or attribute
// text. Total: any string in, escaped string out.
func Escape(s string) string {
	return escaper.Replace(s)
}
