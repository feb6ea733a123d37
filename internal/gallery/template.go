// Package gallery holds the template gallery state: the immutable source
// dataset, the per-language translated set, the filtered displayed view, and
// the modal selection. All mutation goes through App so the UI and API layers
// never share ambient state.
package gallery

// Template is one reusable email: subject, body, and an optional category.
// Source records are immutable once loaded.
type Template struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Category string `json:"category,omitempty"`
}

// CategoryAll is the synthetic filter entry matching every template.
const CategoryAll = "All"

// CategoryDefault is assigned to records whose source lacks a category.
const CategoryDefault = "General"

// CategoryOrDefault returns the record's category, defaulting uncategorized
// records.
func (t Template) CategoryOrDefault() string {
	if t.Category == "" {
		return CategoryDefault
	}
	return t.Category
}
