// Package ui provides the Datastar-based web UI for the template gallery.
package ui

import (
	"net/http"
	"strconv"

	"github.com/starfederation/datastar-go/datastar"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"

	"github.com/mailgallery/mailgallery/internal/gallery"
	"github.com/mailgallery/mailgallery/internal/locale"
	"github.com/mailgallery/mailgallery/internal/preview"
	"github.com/mailgallery/mailgallery/internal/render"
)

// Handlers provides HTTP handlers for the gallery UI.
type Handlers struct {
	app         *gallery.App
	previews    *preview.Renderer
	defaultLang string
}

// NewHandlers creates new UI handlers.
func NewHandlers(app *gallery.App, previews *preview.Renderer, defaultLang string) *Handlers {
	if !locale.Known(defaultLang) {
		defaultLang = locale.DefaultCode
	}
	return &Handlers{
		app:         app,
		previews:    previews,
		defaultLang: defaultLang,
	}
}

// Routes returns the standard UI routes for registration with rest.Server.
func (h *Handlers) Routes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/", Handler: h.handlePage},
	}
}

// SSERoutes returns the SSE-based routes (require rest.WithSSE option).
func (h *Handlers) SSERoutes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/api/gallery", Handler: h.handleGallery},
		{Method: http.MethodGet, Path: "/api/modal/open", Handler: h.handleModalOpen},
		{Method: http.MethodGet, Path: "/api/modal/next", Handler: h.handleModalNext},
		{Method: http.MethodGet, Path: "/api/modal/prev", Handler: h.handleModalPrev},
		{Method: http.MethodGet, Path: "/api/modal/close", Handler: h.handleModalClose},
	}
}

// gallerySignals mirrors the page's filter signals sent with every request.
type gallerySignals struct {
	Category string `json:"category"`
	Q        string `json:"q"`
	Lang     string `json:"lang"`
}

func (h *Handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	page := render.GalleryPage(h.app.Store().Categories(), locale.Supported(), h.defaultLang)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		logx.Errorf("render gallery page: %v", err)
	}
}

// handleGallery applies the current filter signals, re-translating the whole
// dataset first when the selected language changed. The loading signal is
// cleared unconditionally, translation fallback included.
func (h *Handlers) handleGallery(w http.ResponseWriter, r *http.Request) {
	signals := gallerySignals{Category: gallery.CategoryAll, Lang: h.defaultLang}
	if err := datastar.ReadSignals(r, &signals); err != nil {
		logx.Errorf("read gallery signals: %v", err)
	}
	if !locale.Known(signals.Lang) {
		signals.Lang = h.defaultLang
	}

	sse := datastar.NewSSE(w, r)

	if signals.Lang != h.app.Store().Language() {
		h.patchSignals(sse, map[string]any{"loading": true})
		h.app.Reload(r.Context(), signals.Lang)
	}

	displayed := h.app.SetFilter(signals.Category, signals.Q)
	loc := locale.For(signals.Lang)

	h.patchElement(sse, render.CardsFragment(render.Cards(displayed, signals.Lang), loc))
	h.patchElement(sse, render.CountFragment(h.app.Store().CountLabel()))

	// The rebuild may have clamped or closed an open modal.
	open, idx := h.app.Modal().State()
	if open {
		h.patchModal(sse, idx)
	} else {
		h.patchElement(sse, render.ModalFragment(nil, ""))
	}

	h.patchSignals(sse, map[string]any{
		"loading":   false,
		"modalOpen": open,
	})
}

func (h *Handlers) handleModalOpen(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	i, err := strconv.Atoi(r.URL.Query().Get("index"))
	if err != nil {
		return
	}

	// Invalid index is a silent no-op, state unchanged.
	if !h.app.Modal().Open(i, len(h.app.Store().Displayed())) {
		return
	}

	h.patchModal(sse, i)
	h.patchSignals(sse, map[string]any{"modalOpen": true, "modalCopied": false})
}

func (h *Handlers) handleModalNext(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)
	if !h.app.Modal().Next(len(h.app.Store().Displayed())) {
		return
	}
	_, idx := h.app.Modal().State()
	h.patchModal(sse, idx)
	h.patchSignals(sse, map[string]any{"modalCopied": false})
}

func (h *Handlers) handleModalPrev(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)
	if !h.app.Modal().Prev() {
		return
	}
	_, idx := h.app.Modal().State()
	h.patchModal(sse, idx)
	h.patchSignals(sse, map[string]any{"modalCopied": false})
}

func (h *Handlers) handleModalClose(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)
	h.app.Modal().Close()
	h.patchElement(sse, render.ModalFragment(nil, ""))
	h.patchSignals(sse, map[string]any{"modalOpen": false})
}

// patchModal renders the full-detail view for the displayed template at idx.
func (h *Handlers) patchModal(sse *datastar.ServerSentEventGenerator, idx int) {
	view, ok := render.Modal(h.app.Store().Displayed(), idx, h.language())
	if !ok {
		h.patchElement(sse, render.ModalFragment(nil, ""))
		return
	}

	previewHTML, err := h.previews.Email(view.Subject, view.Greeting, view.Body, view.Closing)
	if err != nil {
		// The preview pane is optional; the text detail still shows.
		logx.Errorf("render modal preview: %v", err)
		previewHTML = ""
	}

	h.patchElement(sse, render.ModalFragment(&view, previewHTML))
}

func (h *Handlers) language() string {
	if lang := h.app.Store().Language(); lang != "" {
		return lang
	}
	return h.defaultLang
}

func (h *Handlers) patchElement(sse *datastar.ServerSentEventGenerator, fragment string) {
	if err := sse.PatchElementf("%s", fragment); err != nil {
		logx.Errorf("datastar patch element: %v", err)
	}
}

func (h *Handlers) patchSignals(sse *datastar.ServerSentEventGenerator, signals map[string]any) {
	if err := sse.MarshalAndPatchSignals(signals); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}
