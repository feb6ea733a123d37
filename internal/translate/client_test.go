package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateSendsExpectedRequest(t *testing.T) {
	var got request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(response{TranslatedText: "Hallo Welt"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	out := c.Translate(context.Background(), "Hello world", "de")

	assert.Equal(t, "Hallo Welt", out)
	assert.Equal(t, request{Q: "Hello world", Source: "auto", Target: "de", Format: "text"}, got)
}

func TestTranslateEmptyTextSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	assert.Equal(t, "", c.Translate(context.Background(), "", "de"))
	assert.Equal(t, int32(0), calls.Load())
}

func TestTranslateDegradesToOriginal(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
		{
			name: "missing translation field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"detectedLanguage":"en"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClient(srv.URL)
			out := c.Translate(context.Background(), "original text", "de")
			assert.Equal(t, "original text", out)
		})
	}
}

func TestTranslateUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL)
	assert.Equal(t, "keep me", c.Translate(context.Background(), "keep me", "de"))
}

func TestNoopReturnsInput(t *testing.T) {
	var n Noop
	assert.Equal(t, "unchanged", n.Translate(context.Background(), "unchanged", "de"))
}
