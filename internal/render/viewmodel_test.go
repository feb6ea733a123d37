package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mailgallery/mailgallery/internal/gallery"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`<b>"bold" & 'loud'</b>`, "&lt;b&gt;&quot;bold&quot; &amp; &#39;loud&#39;&lt;/b&gt;"},
		// An ampersand that already looks like an entity is still escaped
		// exactly once.
		{"&amp;", "&amp;amp;"},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncatePreview(t *testing.T) {
	short := strings.Repeat("a", PreviewLimit)
	if got := TruncatePreview(short); got != short {
		t.Errorf("body at the limit was altered: %q", got)
	}

	long := strings.Repeat("x", 200)
	got := TruncatePreview(long)
	if !strings.HasSuffix(got, Ellipsis) {
		t.Error("truncated preview missing ellipsis marker")
	}
	if n := utf8.RuneCountInString(got); n != PreviewLimit+1 {
		t.Errorf("truncated preview is %d runes, want %d", n, PreviewLimit+1)
	}

	// Multi-byte text truncates by character count, not bytes.
	umlauts := strings.Repeat("ü", 150)
	got = TruncatePreview(umlauts)
	if n := utf8.RuneCountInString(got); n != PreviewLimit+1 {
		t.Errorf("multi-byte preview is %d runes, want %d", n, PreviewLimit+1)
	}
}

func TestEmailTextFormat(t *testing.T) {
	got := EmailText("Intro", "full body here", "en")
	want := "Subject: Intro\n\nHello,\n\nfull body here\n\nBest regards,\n[Your Name]"
	if got != want {
		t.Errorf("EmailText = %q, want %q", got, want)
	}

	got = EmailText("Intro", "voller Text", "de")
	if !strings.Contains(got, "Hallo,") || !strings.Contains(got, "Mit freundlichen Grüßen,") {
		t.Errorf("German email missing localized greeting/closing: %q", got)
	}

	// Unrecognized language falls back to the default phrases.
	if EmailText("s", "b", "zz") != EmailText("s", "b", "en") {
		t.Error("unknown language did not fall back to default phrases")
	}
}

func TestCardsScenarioLongBody(t *testing.T) {
	displayed := []gallery.Template{
		{Subject: "Intro", Body: strings.Repeat("x", 200), Category: "Sales"},
	}

	cards := Cards(displayed, "en")
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}

	card := cards[0]
	if n := utf8.RuneCountInString(card.Preview); n != 141 {
		t.Errorf("preview length = %d runes, want 141", n)
	}
	if !strings.Contains(card.CopyText, strings.Repeat("x", 200)) {
		t.Error("copy text does not carry the full 200-char body")
	}
	if card.Category != "Sales" {
		t.Errorf("category = %q", card.Category)
	}
}

func TestCardsDefaultCategory(t *testing.T) {
	cards := Cards([]gallery.Template{{Subject: "s", Body: "b"}}, "en")
	if cards[0].Category != gallery.CategoryDefault {
		t.Errorf("category = %q, want %q", cards[0].Category, gallery.CategoryDefault)
	}
}

func TestModalViewBounds(t *testing.T) {
	displayed := []gallery.Template{
		{Subject: "a", Body: "body a"},
		{Subject: "b", Body: "body b"},
		{Subject: "c", Body: "body c"},
	}

	if _, ok := Modal(displayed, 3, "en"); ok {
		t.Error("Modal accepted an out-of-range index")
	}

	first, ok := Modal(displayed, 0, "en")
	if !ok || first.HasPrev || !first.HasNext {
		t.Errorf("first modal view = %+v", first)
	}

	last, _ := Modal(displayed, 2, "en")
	if !last.HasPrev || last.HasNext {
		t.Errorf("last modal view = %+v", last)
	}

	if last.Body != "body c" {
		t.Errorf("modal shows %q, want the full body", last.Body)
	}
}
