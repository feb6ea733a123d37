// Package translate provides machine translation of template text via a
// LibreTranslate-compatible endpoint.
package translate

import "context"

// Translator turns text into the target language. Implementations are total:
// when translation is unavailable for any reason they return the input
// unchanged rather than an error, so callers never have to handle partial
// translation explicitly.
type Translator interface {
	Translate(ctx context.Context, text, target string) string
}

// Noop returns every input unchanged. Used when no endpoint is configured.
type Noop struct{}

func (Noop) Translate(_ context.Context, text, _ string) string {
	return text
}
