package render

import (
	"strings"

	"github.com/mailgallery/mailgallery/internal/locale"
)

// Signature is the placeholder the user replaces after pasting.
const Signature = "[Your Name]"

// EmailText assembles the fixed-format plain-text email written to the
// clipboard:
//
//	Subject: <subject>
//
//	<greeting>
//
//	<body>
//
//	<closing>
//	[Your Name]
func EmailText(subject, body, language string) string {
	loc := locale.For(language)

	var b strings.Builder
	b.WriteString("Subject: ")
	b.WriteString(subject)
	b.WriteString("\n\n")
	b.WriteString(loc.Greeting)
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(loc.Closing)
	b.WriteString("\n")
	b.WriteString(Signature)
	return b.String()
}
