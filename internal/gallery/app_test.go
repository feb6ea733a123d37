package gallery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTranslator appends a language tag to every text, except texts listed in
// refuse, which come back unchanged the way the real client degrades.
type fakeTranslator struct {
	refuse  map[string]bool
	started chan string
	release chan struct{}
}

func (f *fakeTranslator) Translate(_ context.Context, text, target string) string {
	if f.started != nil {
		f.started <- text
		<-f.release
	}
	if text == "" || f.refuse[text] {
		return text
	}
	return text + " [" + target + "]"
}

func TestReloadTranslatesAllTemplates(t *testing.T) {
	app := NewApp(testDataset(), &fakeTranslator{})
	app.Reload(context.Background(), "de")

	displayed := app.SetFilter("All", "")
	require.Len(t, displayed, 4)
	for i, tpl := range displayed {
		assert.Equal(t, testDataset()[i].Subject+" [de]", tpl.Subject)
		assert.Equal(t, testDataset()[i].Body+" [de]", tpl.Body)
		assert.Equal(t, testDataset()[i].Category, tpl.Category, "category must not be translated")
	}
	assert.Equal(t, "de", app.Store().Language())
}

func TestReloadKeepsOriginalOnPerItemFailure(t *testing.T) {
	// One subject refuses to translate; its body and all other templates
	// still translate, and the batch completes.
	app := NewApp(testDataset(), &fakeTranslator{
		refuse: map[string]bool{"Invoice attached": true},
	})
	app.Reload(context.Background(), "de")

	displayed := app.SetFilter("All", "")
	require.Len(t, displayed, 4)
	assert.Equal(t, "Invoice attached", displayed[1].Subject)
	assert.Equal(t, "Please find your invoice attached. [de]", displayed[1].Body)
	assert.Equal(t, "Welcome aboard [de]", displayed[0].Subject)
}

func TestReloadRevalidatesOpenModal(t *testing.T) {
	app := NewApp(testDataset(), &fakeTranslator{})
	app.SetFilter("All", "")
	require.True(t, app.Modal().Open(3, 4))

	// Narrow the filter so the displayed list shrinks under the open modal.
	app.SetFilter("Sales", "")
	open, idx := app.Modal().State()
	assert.True(t, open)
	assert.Equal(t, 0, idx, "modal index clamped into the rebuilt list")

	app.SetFilter("All", "nothing matches this")
	open, _ = app.Modal().State()
	assert.False(t, open, "modal closes when the list empties")
}

func TestReloadDiscardsStaleGeneration(t *testing.T) {
	slow := &fakeTranslator{
		started: make(chan string, 16),
		release: make(chan struct{}),
	}
	dataset := []Template{{Subject: "Hello", Body: "World", Category: "Sales"}}
	app := NewApp(dataset, slow)

	done := make(chan struct{})
	go func() {
		app.Reload(context.Background(), "de")
		close(done)
	}()

	// Wait for the slow reload to be in flight, then supersede it.
	<-slow.started
	app.generation.Add(1)
	close(slow.release)
	<-done

	// The stale reload must not have touched the store.
	assert.Equal(t, "", app.Store().Language())
	displayed := app.Store().Displayed()
	require.Len(t, displayed, 1)
	assert.Equal(t, "Hello", displayed[0].Subject)
}

func TestSetFilterDefaultsToAll(t *testing.T) {
	app := NewApp(testDataset(), &fakeTranslator{})

	displayed := app.SetFilter("", "")
	assert.Len(t, displayed, 4)

	category, query := app.Filter()
	assert.Equal(t, CategoryAll, category)
	assert.Equal(t, "", query)
}

func TestReloadEmptyDataset(t *testing.T) {
	app := NewApp(nil, &fakeTranslator{})
	app.Reload(context.Background(), "de")

	shown, total := app.Store().Counts()
	assert.Equal(t, 0, shown)
	assert.Equal(t, 0, total)
}
