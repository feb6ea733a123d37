// Package preview renders a gallery template as a responsive HTML email via
// MJML, for the modal preview pane and for share delivery bodies.
package preview

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"

	"github.com/preslavrachev/gomjml/mjml"

	"github.com/mailgallery/mailgallery/internal/render"
)

// Renderer converts email text into MJML and compiles it to HTML. Rendered
// output is cached by content hash since the same template is previewed
// repeatedly while navigating the modal.
type Renderer struct {
	mu          sync.RWMutex
	cache       map[string]string
	enableCache bool
}

// Option configures the renderer.
type Option func(*Renderer)

// WithCache enables HTML output caching.
func WithCache(enabled bool) Option {
	return func(r *Renderer) { r.enableCache = enabled }
}

// NewRenderer creates a preview renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		cache: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Email renders one email (subject, localized greeting/closing, full body)
// to HTML. All text is escaped before it is embedded in MJML markup.
func (r *Renderer) Email(subject, greeting, body, closing string) (string, error) {
	doc := buildMJML(subject, greeting, body, closing)

	key := cacheKey(doc)
	if r.enableCache {
		r.mu.RLock()
		cached, found := r.cache[key]
		r.mu.RUnlock()
		if found {
			return cached, nil
		}
	}

	html, err := mjml.Render(doc)
	if err != nil {
		return "", fmt.Errorf("render email preview: %w", err)
	}

	if r.enableCache {
		r.mu.Lock()
		r.cache[key] = html
		r.mu.Unlock()
	}
	return html, nil
}

// CacheSize returns the number of cached renders.
func (r *Renderer) CacheSize() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}

// buildMJML wraps escaped email text in the gallery's MJML frame. Newlines in
// the body become explicit breaks since MJML collapses whitespace.
func buildMJML(subject, greeting, body, closing string) string {
	esc := func(s string) string {
		return strings.ReplaceAll(render.Escape(s), "\n", "<br />")
	}

	return fmt.Sprintf(`<mjml>
	<mj-head>
		<mj-title>%s</mj-title>
	</mj-head>
	<mj-body background-color="#f8fafc">
		<mj-section background-color="#ffffff" border-radius="8px">
			<mj-column>
				<mj-text font-size="18px" font-weight="bold">%s</mj-text>
				<mj-divider border-color="#e2e8f0" border-width="1px" />
				<mj-text>%s</mj-text>
				<mj-text>%s</mj-text>
				<mj-text>%s<br />%s</mj-text>
			</mj-column>
		</mj-section>
	</mj-body>
</mjml>`,
		esc(subject), esc(subject), esc(greeting), esc(body), esc(closing), esc(render.Signature))
}

func cacheKey(doc string) string {
	sum := sha256.Sum256([]byte(doc))
	return fmt.Sprintf("%x", sum[:8])
}
