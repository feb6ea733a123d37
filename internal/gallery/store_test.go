package gallery

import (
	"reflect"
	"strings"
	"testing"
)

func testDataset() []Template {
	return []Template{
		{Subject: "Welcome aboard", Body: "Glad to have you with us.", Category: "Onboarding"},
		{Subject: "Invoice attached", Body: "Please find your invoice attached.", Category: "Billing"},
		{Subject: "Quick follow-up", Body: "Just checking in on our last call.", Category: "Sales"},
		{Subject: "Service update", Body: "We have updated our terms."},
	}
}

func TestCategoriesOrderAndDefaults(t *testing.T) {
	s := NewStore(testDataset())

	got := s.Categories()
	want := []string{"All", "Onboarding", "Billing", "Sales", "General"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestFilterByCategory(t *testing.T) {
	s := NewStore(testDataset())

	got := s.Filter("Sales", "")
	if len(got) != 1 || got[0].Subject != "Quick follow-up" {
		t.Errorf("Filter(Sales) = %v, want the single Sales template", got)
	}

	if got := s.Filter("General", ""); len(got) != 1 || got[0].Subject != "Service update" {
		t.Errorf("Filter(General) = %v, want the uncategorized template", got)
	}

	if got := s.Filter("All", ""); len(got) != 4 {
		t.Errorf("Filter(All) returned %d templates, want 4", len(got))
	}
}

func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	s := NewStore(testDataset())

	if got := s.Filter("All", "INVOICE"); len(got) != 1 || got[0].Category != "Billing" {
		t.Errorf("search INVOICE = %v, want the Billing template", got)
	}

	// Query may match the category text as well.
	if got := s.Filter("All", "onboard"); len(got) != 1 {
		t.Errorf("search onboard matched %d templates, want 1", len(got))
	}

	if got := s.Filter("All", "no such text"); len(got) != 0 {
		t.Errorf("search with no matches returned %d templates", len(got))
	}
}

func TestSearchFieldBoundary(t *testing.T) {
	s := NewStore([]Template{
		{Subject: "Alpha", Body: "Beta", Category: "Sales"},
	})

	// Fields are joined with a space, so a query running from the end of the
	// subject into the start of the body never matches.
	if got := s.Filter("All", "alphabeta"); len(got) != 0 {
		t.Errorf("query across field boundary matched %d templates, want 0", len(got))
	}
	if got := s.Filter("All", "alpha beta"); len(got) != 1 {
		t.Errorf("space-separated fields did not match, got %d", len(got))
	}

	if got := s.Match("All", "alphabeta"); len(got) != 0 {
		t.Errorf("Match across field boundary returned %d entries, want 0", len(got))
	}
}

func TestFilterPreservesOrderAndIsSubset(t *testing.T) {
	s := NewStore(testDataset())

	got := s.Filter("All", "e")
	var lastIdx = -1
	for _, tpl := range got {
		idx := -1
		for i, src := range s.Source() {
			if src == tpl {
				idx = i
				break
			}
		}
		if idx < 0 {
			t.Fatalf("displayed template %v not in source set", tpl)
		}
		if idx <= lastIdx {
			t.Fatalf("displayed order violates source order at %v", tpl)
		}
		lastIdx = idx
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	data := testDataset()
	s := NewStore(data)

	s.Filter("Sales", "call")
	s.Filter("All", "")

	if !reflect.DeepEqual(s.Source(), testDataset()) {
		t.Error("source dataset changed after filtering")
	}
}

func TestSetTranslatedRequiresSameCardinality(t *testing.T) {
	s := NewStore(testDataset())

	if err := s.SetTranslated("de", testDataset()[:2]); err == nil {
		t.Error("SetTranslated accepted a short list")
	}

	translated := testDataset()
	for i := range translated {
		translated[i].Subject = strings.ToUpper(translated[i].Subject)
	}
	if err := s.SetTranslated("de", translated); err != nil {
		t.Fatalf("SetTranslated: %v", err)
	}
	if s.Language() != "de" {
		t.Errorf("Language() = %q, want de", s.Language())
	}

	got := s.Filter("All", "")
	if got[0].Subject != "WELCOME ABOARD" {
		t.Errorf("filter did not pick up translated set: %v", got[0])
	}
	// Category is never translated.
	if got[0].Category != "Onboarding" {
		t.Errorf("category changed during translation: %q", got[0].Category)
	}
}

func TestCountLabel(t *testing.T) {
	s := NewStore(testDataset())

	s.Filter("Sales", "")
	if got := s.CountLabel(); got != "1 / 4" {
		t.Errorf("CountLabel() = %q, want %q", got, "1 / 4")
	}

	s.Filter("All", "")
	if got := s.CountLabel(); got != "4 / 4" {
		t.Errorf("CountLabel() = %q, want %q", got, "4 / 4")
	}
}

func TestTwoCategoriesScenario(t *testing.T) {
	s := NewStore([]Template{
		{Subject: "Pitch", Body: "b1", Category: "Sales"},
		{Subject: "Ticket", Body: "b2", Category: "Support"},
	})

	got := s.Filter("Support", "")
	if len(got) != 1 || got[0].Subject != "Ticket" {
		t.Errorf("Filter(Support) = %v, want only the Support template", got)
	}
}

func TestMatchDoesNotTouchDisplayed(t *testing.T) {
	s := NewStore(testDataset())
	s.Filter("Sales", "")

	got := s.Match("Billing", "")
	if len(got) != 1 || got[0].Index != 1 || got[0].Template.Subject != "Invoice attached" {
		t.Errorf("Match(Billing) = %v, want the Billing entry at index 1", got)
	}

	// The UI's displayed view stays on the Sales filter.
	if d := s.Displayed(); len(d) != 1 || d[0].Subject != "Quick follow-up" {
		t.Errorf("Displayed() = %v, Match must not rebuild it", d)
	}
}

func TestMatchStableIndices(t *testing.T) {
	s := NewStore(testDataset())

	got := s.Match("All", "e")
	for _, e := range got {
		src, ok := s.TranslatedAt(e.Index)
		if !ok || src != e.Template {
			t.Errorf("entry %d does not round-trip through TranslatedAt", e.Index)
		}
	}
}

func TestTranslatedAtBounds(t *testing.T) {
	s := NewStore(testDataset())

	if _, ok := s.TranslatedAt(-1); ok {
		t.Error("TranslatedAt(-1) reported ok")
	}
	if _, ok := s.TranslatedAt(4); ok {
		t.Error("TranslatedAt(len) reported ok")
	}
}

func TestAtBounds(t *testing.T) {
	s := NewStore(testDataset())
	s.Filter("All", "")

	if _, ok := s.At(-1); ok {
		t.Error("At(-1) reported ok")
	}
	if _, ok := s.At(4); ok {
		t.Error("At(len) reported ok")
	}
	if tpl, ok := s.At(0); !ok || tpl.Subject != "Welcome aboard" {
		t.Errorf("At(0) = %v, %v", tpl, ok)
	}
}
