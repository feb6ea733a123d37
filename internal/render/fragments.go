package render

import (
	"encoding/json"
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	data "maragu.dev/gomponents-datastar"

	"github.com/mailgallery/mailgallery/internal/locale"
)

// String renders a node to HTML for SSE element patching.
func String(n g.Node) string {
	var b strings.Builder
	_ = n.Render(&b)
	return b.String()
}

// CountFragment is the live "<shown> / <total>" readout.
func CountFragment(label string) string {
	return String(h.Span(h.ID("count"), h.Class("count"), g.Text(label)))
}

// CardsFragment renders the preview card grid, or the localized empty state
// when nothing matched.
func CardsFragment(cards []CardView, loc locale.Strings) string {
	if len(cards) == 0 {
		return String(h.Div(h.ID("gallery-list"), h.Class("card-grid"),
			data.Show("!$loading"),
			h.Div(h.Class("empty"), g.Text(loc.NoResults)),
		))
	}

	nodes := make([]g.Node, 0, len(cards))
	for _, c := range cards {
		nodes = append(nodes, cardNode(c, loc))
	}

	return String(h.Div(h.ID("gallery-list"), h.Class("card-grid"),
		data.Show("!$loading"),
		g.Group(nodes),
	))
}

func cardNode(c CardView, loc locale.Strings) g.Node {
	idx := fmt.Sprint(c.Index)

	return h.Div(h.Class("card"),
		data.On("click", "@get('/api/modal/open?index="+idx+"')"),
		h.Div(h.Class("card-head"),
			h.H3(g.Text(c.Subject)),
			h.Span(h.Class("badge"), g.Text(c.Category)),
		),
		h.P(h.Class("phrase"), g.Text(loc.Greeting)),
		h.P(h.Class("preview"), g.Text(c.Preview)),
		h.P(h.Class("phrase"), g.Text(loc.Closing)),
		h.Div(h.Class("card-actions"),
			h.Button(h.Class("copy-btn"), h.Title(loc.CopyHint),
				data.On("click", copyExpr(c.CopyText, "$copied = "+idx, "$copied = -1")),
				h.Span(data.Show("$copied !== "+idx), g.Text("📋")),
				h.Span(data.Show("$copied === "+idx), g.Text("✓")),
			),
		),
	)
}

// ModalFragment renders the detail overlay for an open modal, or clears the
// mount point when view is nil.
func ModalFragment(view *ModalView, previewHTML string) string {
	if view == nil {
		return String(h.Div(h.ID("modal")))
	}

	prev := h.Button(g.Text("← Prev"),
		data.On("click", "event.stopPropagation(); @get('/api/modal/prev')"))
	if !view.HasPrev {
		prev = h.Button(h.Disabled(), g.Text("← Prev"))
	}
	next := h.Button(g.Text("Next →"),
		data.On("click", "event.stopPropagation(); @get('/api/modal/next')"))
	if !view.HasNext {
		next = h.Button(h.Disabled(), g.Text("Next →"))
	}

	var preview g.Node
	if previewHTML != "" {
		preview = h.IFrame(h.Class("preview-frame"), g.Attr("srcdoc", previewHTML))
	}

	return String(h.Div(h.ID("modal"),
		h.Div(h.Class("overlay"),
			// Clicking outside the surface closes; the surface swallows it.
			data.On("click", "@get('/api/modal/close')"),
			h.Div(h.Class("modal-surface"),
				data.On("click", "event.stopPropagation()"),
				h.Div(h.Class("modal-head"),
					h.Div(
						h.H2(g.Text(view.Subject)),
						h.Span(h.Class("badge"), g.Text(view.Category)),
					),
					h.Button(h.Class("close-btn"), g.Text("×"),
						data.On("click", "@get('/api/modal/close')"),
					),
				),
				h.P(h.Class("phrase"), g.Text(view.Greeting)),
				h.Div(h.Class("modal-body"), g.Text(view.Body)),
				h.P(h.Class("phrase"), g.Text(view.Closing)),
				preview,
				h.Div(h.Class("modal-nav"),
					prev,
					h.Button(
						data.On("click", copyExpr(view.CopyText, "$modalCopied = true", "$modalCopied = false")),
						h.Span(data.Show("!$modalCopied"), g.Text("📋 Copy")),
						h.Span(data.Show("$modalCopied"), g.Text("✓ Copied")),
					),
					next,
				),
			),
		),
	))
}

// copyExpr builds the clipboard click expression: write the email text, show
// the copied affordance for two seconds on success, alert on failure leaving
// the control unchanged.
func copyExpr(text, onCopied, onRevert string) string {
	return "event.stopPropagation(); navigator.clipboard.writeText(" + jsString(text) + ")" +
		".then(() => { " + onCopied + "; setTimeout(() => { " + onRevert + " }, 2000) })" +
		".catch((e) => alert('Copy failed: ' + e))"
}

// jsString encodes s as a JavaScript string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
