package render

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	data "maragu.dev/gomponents-datastar"

	"github.com/mailgallery/mailgallery/internal/locale"
)

// Layout wraps content in the base HTML layout.
func Layout(title string, content ...g.Node) g.Node {
	return h.HTML(
		h.Lang("en"),
		h.Head(
			h.Meta(h.Charset("utf-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.TitleEl(g.Text(title)),
			h.Script(h.Type("module"), h.Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js")),
			h.StyleEl(h.Type("text/css"), g.Raw(styles)),
		),
		h.Body(
			// Arrow/Escape shortcuts are only live while the modal is open.
			g.Attr("data-on-keydown__window",
				"$modalOpen && (evt.key === 'Escape' ? @get('/api/modal/close') : "+
					"evt.key === 'ArrowRight' ? @get('/api/modal/next') : "+
					"evt.key === 'ArrowLeft' ? @get('/api/modal/prev') : null)"),
			h.Nav(h.Class("navbar"),
				h.Div(h.Class("nav-brand"), g.Text("mailgallery")),
			),
			h.Main(h.Class("container"), g.Group(content)),
			h.Footer(h.Class("footer"),
				g.Text("mailgallery - Email Template Gallery"),
			),
		),
	)
}

// GalleryPage renders the single gallery page: toolbar, count readout, card
// grid, and the (initially empty) modal mount point.
func GalleryPage(categories []string, languages []locale.Language, defaultLang string) g.Node {
	var categoryOptions []g.Node
	for _, c := range categories {
		categoryOptions = append(categoryOptions, h.Option(h.Value(c), g.Text(c)))
	}

	var langOptions []g.Node
	for _, l := range languages {
		langOptions = append(langOptions, h.Option(h.Value(l.Code), g.Text(l.Label)))
	}

	loc := locale.For(defaultLang)

	return Layout("mailgallery",
		data.Signals(map[string]any{
			"category":    "All",
			"q":           "",
			"lang":        defaultLang,
			"loading":     true,
			"modalOpen":   false,
			"copied":      -1,
			"modalCopied": false,
		}),
		data.Init("@get('/api/gallery')"),

		h.H1(g.Text("Email Templates")),

		h.Div(h.Class("toolbar"),
			h.Select(h.ID("category"), data.Bind("category"),
				data.On("change", "@get('/api/gallery')"),
				g.Group(categoryOptions),
			),
			h.Input(h.ID("search"), h.Type("search"),
				h.Placeholder("Search templates..."),
				data.Bind("q"),
				data.On("input", "@get('/api/gallery')"),
			),
			h.Select(h.ID("language"), data.Bind("lang"),
				data.On("change", "$loading = true; @get('/api/gallery')"),
				g.Group(langOptions),
			),
			h.Span(h.ID("count"), h.Class("count"), g.Text("")),
		),

		h.Div(h.Class("loading"),
			data.Show("$loading"),
			h.Span(h.Class("loading-spinner")),
			g.Text(" "+loc.Loading),
		),

		h.Div(h.ID("gallery-list"), h.Class("card-grid"),
			data.Show("!$loading"),
		),

		h.Div(h.ID("modal")),
	)
}

const styles = `
:root {
	--primary: #6366f1;
	--primary-dark: #4f46e5;
	--success: #10b981;
	--danger: #ef4444;
	--bg: #f8fafc;
	--card-bg: #ffffff;
	--text: #1e293b;
	--text-muted: #64748b;
	--border: #e2e8f0;
}

* {
	box-sizing: border-box;
	margin: 0;
	padding: 0;
}

body {
	font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
	background: var(--bg);
	color: var(--text);
	line-height: 1.6;
}

.navbar {
	background: var(--primary);
	color: white;
	padding: 1rem 2rem;
	display: flex;
	justify-content: space-between;
	align-items: center;
	box-shadow: 0 2px 4px rgba(0,0,0,0.1);
}

.nav-brand {
	font-size: 1.5rem;
	font-weight: bold;
}

.container {
	max-width: 1100px;
	margin: 0 auto;
	padding: 2rem;
}

.footer {
	text-align: center;
	padding: 2rem;
	color: var(--text-muted);
	border-top: 1px solid var(--border);
	margin-top: 2rem;
}

h1 {
	margin-bottom: 1.5rem;
}

.toolbar {
	display: flex;
	gap: 0.75rem;
	align-items: center;
	margin-bottom: 1.5rem;
	flex-wrap: wrap;
}

.toolbar select,
.toolbar input {
	padding: 0.6rem 0.75rem;
	border: 1px solid var(--border);
	border-radius: 8px;
	font-size: 0.95rem;
	background: var(--card-bg);
}

.toolbar input {
	flex: 1;
	min-width: 200px;
}

.count {
	color: var(--text-muted);
	font-size: 0.875rem;
	white-space: nowrap;
}

.card-grid {
	display: grid;
	grid-template-columns: repeat(auto-fill, minmax(280px, 1fr));
	gap: 1.25rem;
}

.card {
	background: var(--card-bg);
	border: 1px solid var(--border);
	border-radius: 12px;
	padding: 1.25rem;
	cursor: pointer;
	transition: transform 0.15s, box-shadow 0.15s;
	display: flex;
	flex-direction: column;
	gap: 0.5rem;
}

.card:hover {
	transform: translateY(-2px);
	box-shadow: 0 4px 12px rgba(0,0,0,0.1);
}

.card-head {
	display: flex;
	justify-content: space-between;
	align-items: flex-start;
	gap: 0.5rem;
}

.card h3 {
	font-size: 1rem;
}

.badge {
	background: var(--bg);
	border: 1px solid var(--border);
	border-radius: 999px;
	padding: 0.1rem 0.6rem;
	font-size: 0.75rem;
	color: var(--text-muted);
	white-space: nowrap;
}

.card .preview {
	font-size: 0.875rem;
	color: var(--text-muted);
	flex: 1;
}

.card .phrase {
	font-size: 0.8rem;
	color: var(--text-muted);
	font-style: italic;
}

.card-actions {
	display: flex;
	justify-content: flex-end;
}

.copy-btn {
	background: none;
	border: 1px solid var(--border);
	border-radius: 8px;
	padding: 0.35rem 0.75rem;
	cursor: pointer;
	font-size: 0.9rem;
	color: var(--text);
}

.copy-btn:hover {
	border-color: var(--primary);
}

.empty {
	grid-column: 1 / -1;
	text-align: center;
	padding: 3rem;
	color: var(--text-muted);
	font-style: italic;
}

.loading {
	padding: 2rem;
	text-align: center;
	color: var(--text-muted);
}

.loading-spinner {
	display: inline-block;
	width: 16px;
	height: 16px;
	border: 2px solid var(--border);
	border-top-color: var(--primary);
	border-radius: 50%;
	animation: spin 1s linear infinite;
}

@keyframes spin {
	to { transform: rotate(360deg); }
}

.overlay {
	position: fixed;
	inset: 0;
	background: rgba(15, 23, 42, 0.55);
	display: flex;
	align-items: center;
	justify-content: center;
	padding: 2rem;
	z-index: 50;
}

.modal-surface {
	background: var(--card-bg);
	border-radius: 12px;
	max-width: 720px;
	width: 100%;
	max-height: 85vh;
	overflow-y: auto;
	padding: 2rem;
	display: flex;
	flex-direction: column;
	gap: 1rem;
}

.modal-head {
	display: flex;
	justify-content: space-between;
	align-items: flex-start;
	gap: 1rem;
}

.modal-body {
	white-space: pre-wrap;
	font-size: 0.95rem;
}

.modal-nav {
	display: flex;
	gap: 0.75rem;
	justify-content: space-between;
	border-top: 1px solid var(--border);
	padding-top: 1rem;
}

.modal-nav button {
	background: var(--primary);
	color: white;
	border: none;
	border-radius: 8px;
	padding: 0.6rem 1.2rem;
	cursor: pointer;
	font-size: 0.95rem;
}

.modal-nav button:hover {
	background: var(--primary-dark);
}

.modal-nav button:disabled {
	background: var(--text-muted);
	cursor: not-allowed;
}

.close-btn {
	background: none;
	border: none;
	font-size: 1.4rem;
	cursor: pointer;
	color: var(--text-muted);
	line-height: 1;
}

.preview-frame {
	width: 100%;
	height: 320px;
	border: 1px solid var(--border);
	border-radius: 8px;
}
`
