package preview

import (
	"strings"
	"testing"
)

func TestEmailRendersHTML(t *testing.T) {
	r := NewRenderer()

	html, err := r.Email("Welcome aboard", "Hello,", "Glad to have you.", "Best regards,")
	if err != nil {
		t.Fatalf("Email: %v", err)
	}
	if html == "" {
		t.Fatal("Email returned empty HTML")
	}
	if !strings.Contains(html, "<!doctype html>") {
		t.Error("generated HTML missing DOCTYPE")
	}
	if !strings.Contains(html, "Welcome aboard") {
		t.Error("generated HTML missing subject text")
	}
}

func TestEmailEscapesMarkup(t *testing.T) {
	doc := buildMJML(`<script>"x"</script>`, "Hi & hello,", "a < b", "Bye,")

	if strings.Contains(doc, "<script>") {
		t.Error("markup leaked into MJML document unescaped")
	}
	if !strings.Contains(doc, "&lt;script&gt;") {
		t.Error("expected escaped script tag in MJML document")
	}
	if !strings.Contains(doc, "Hi &amp; hello,") {
		t.Error("ampersand not escaped")
	}
}

func TestEmailBodyNewlinesBecomeBreaks(t *testing.T) {
	doc := buildMJML("s", "g", "line one\nline two", "c")
	if !strings.Contains(doc, "line one<br />line two") {
		t.Error("newline not converted to break")
	}
}

func TestEmailCache(t *testing.T) {
	r := NewRenderer(WithCache(true))

	if _, err := r.Email("s", "g", "b", "c"); err != nil {
		t.Fatal(err)
	}
	if r.CacheSize() != 1 {
		t.Errorf("cache size = %d, want 1", r.CacheSize())
	}

	// Same input renders from cache, not a second entry.
	if _, err := r.Email("s", "g", "b", "c"); err != nil {
		t.Fatal(err)
	}
	if r.CacheSize() != 1 {
		t.Errorf("cache size = %d after repeat render, want 1", r.CacheSize())
	}
}
