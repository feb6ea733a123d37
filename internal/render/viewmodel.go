package render

import (
	"github.com/mailgallery/mailgallery/internal/gallery"
	"github.com/mailgallery/mailgallery/internal/locale"
)

// PreviewLimit is the preview cut length in characters (runes).
const PreviewLimit = 140

// Ellipsis marks a truncated preview.
const Ellipsis = "…"

// CardView is the presentation model for one preview card.
type CardView struct {
	Index    int
	Subject  string
	Category string
	Preview  string
	// CopyText is the full clipboard payload for this card's copy control.
	CopyText string
}

// ModalView is the presentation model for the detail overlay.
type ModalView struct {
	Index    int
	Subject  string
	Category string
	Body     string
	Greeting string
	Closing  string
	CopyText string
	HasPrev  bool
	HasNext  bool
}

// Cards builds the card view models for the displayed list. Text fields are
// raw; the markup layer escapes on output.
func Cards(displayed []gallery.Template, language string) []CardView {
	cards := make([]CardView, 0, len(displayed))
	for i, t := range displayed {
		cards = append(cards, CardView{
			Index:    i,
			Subject:  t.Subject,
			Category: t.CategoryOrDefault(),
			Preview:  TruncatePreview(t.Body),
			CopyText: EmailText(t.Subject, t.Body, language),
		})
	}
	return cards
}

// Modal builds the detail view for the displayed template at index i.
func Modal(displayed []gallery.Template, i int, language string) (ModalView, bool) {
	if i < 0 || i >= len(displayed) {
		return ModalView{}, false
	}
	t := displayed[i]
	loc := locale.For(language)
	return ModalView{
		Index:    i,
		Subject:  t.Subject,
		Category: t.CategoryOrDefault(),
		Body:     t.Body,
		Greeting: loc.Greeting,
		Closing:  loc.Closing,
		CopyText: EmailText(t.Subject, t.Body, language),
		HasPrev:  i > 0,
		HasNext:  i < len(displayed)-1,
	}, true
}

// TruncatePreview cuts a body to the preview limit, appending the ellipsis
// marker only when something was cut. The cut counts characters, not words.
func TruncatePreview(body string) string {
	runes := []rune(body)
	if len(runes) <= PreviewLimit {
		return body
	}
	return string(runes[:PreviewLimit]) + Ellipsis
}
