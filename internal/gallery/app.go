package gallery

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"

	"github.com/mailgallery/mailgallery/internal/translate"
)

// App is the application-state object tying the store, the modal, and the
// translator together. Reload fans out translation of the whole dataset;
// filter changes rebuild the displayed view and revalidate the modal.
type App struct {
	store      *Store
	modal      *Modal
	translator translate.Translator

	// generation guards against a slow reload overwriting the results of a
	// newer one after a rapid language switch.
	generation atomic.Int64

	mu       sync.Mutex
	category string
	query    string
}

// NewApp creates the gallery state over a source dataset.
func NewApp(source []Template, tr translate.Translator) *App {
	return &App{
		store:      NewStore(source),
		modal:      &Modal{},
		translator: tr,
		category:   CategoryAll,
	}
}

// Store exposes the template store.
func (a *App) Store() *Store {
	return a.store
}

// Modal exposes the modal state machine.
func (a *App) Modal() *Modal {
	return a.modal
}

// Filter returns the active category and search query.
func (a *App) Filter() (category, query string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.category, a.query
}

// SetFilter applies a category/search selection, rebuilds the displayed view,
// and revalidates the modal against the new list.
func (a *App) SetFilter(category, query string) []Template {
	if category == "" {
		category = CategoryAll
	}
	a.mu.Lock()
	a.category = category
	a.query = query
	a.mu.Unlock()

	displayed := a.store.Filter(category, query)
	a.modal.Revalidate(len(displayed))
	return displayed
}

// indexed pairs a translated record with its source position so the fan-out
// can settle out of order without losing dataset ordering.
type indexed struct {
	i int
	t Template
}

// Reload translates the entire dataset into the target language and swaps it
// in. All templates translate concurrently; each template's subject and body
// pair completes before its record is assembled. Per-call failures already
// degrade inside the translator; an aggregate failure falls back to the
// untranslated source set. Results of a stale reload (a newer one has
// started) are discarded.
func (a *App) Reload(ctx context.Context, language string) {
	generation := a.generation.Add(1)
	source := a.store.Source()
	start := time.Now()

	translated := make([]Template, len(source))

	err := mr.MapReduceVoid(func(sourceChan chan<- indexed) {
		for i, t := range source {
			sourceChan <- indexed{i: i, t: t}
		}
	}, func(item indexed, writer mr.Writer[indexed], cancel func(error)) {
		out := item.t
		finishErr := mr.Finish(func() error {
			out.Subject = a.translator.Translate(ctx, item.t.Subject, language)
			return nil
		}, func() error {
			out.Body = a.translator.Translate(ctx, item.t.Body, language)
			return nil
		})
		if finishErr != nil {
			cancel(finishErr)
			return
		}
		writer.Write(indexed{i: item.i, t: out})
	}, func(pipe <-chan indexed, _ func(error)) {
		for item := range pipe {
			translated[item.i] = item.t
		}
	}, mr.WithWorkers(fanoutWorkers(len(source))))

	result := "ok"
	if err != nil {
		// Whole-batch failure: show the untranslated dataset rather than
		// nothing.
		logx.WithContext(ctx).Errorf("reload to %s failed, using untranslated templates: %v", language, err)
		translated = append([]Template(nil), source...)
		result = "fallback"
	}

	if a.generation.Load() != generation {
		reloadsTotal.Inc(language, "stale")
		logx.WithContext(ctx).Infof("discarding stale reload for %s", language)
		return
	}

	if err := a.store.SetTranslated(language, translated); err != nil {
		logx.WithContext(ctx).Errorf("reload to %s: %v", language, err)
		return
	}

	category, query := a.Filter()
	displayed := a.store.Filter(category, query)
	a.modal.Revalidate(len(displayed))

	reloadsTotal.Inc(language, result)
	reloadDuration.ObserveFloat(time.Since(start).Seconds(), language)
	logx.WithContext(ctx).Infow("gallery reloaded",
		logx.Field("language", language),
		logx.Field("templates", len(translated)),
		logx.Field("result", result),
	)
}

func fanoutWorkers(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
