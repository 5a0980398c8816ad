package ocr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "test-key", r.Header.Get("apikey"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "eng", r.PostFormValue("language"))
		assert.Equal(t, "2", r.PostFormValue("OCREngine"))
		assert.NotEmpty(t, r.PostFormValue("base64Image"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ParsedResults": [{
				"ParsedText": "Duke Energy\nAmount Due: $125.50",
				"TextOverlay": {"Lines": [{"LineText": "Duke Energy", "Words": [{"WordText": "Duke"}, {"WordText": "Energy"}]}]}
			}],
			"IsErroredOnProcessing": false
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", Endpoint: srv.URL, Timeout: 2 * time.Second}, nil)
	res, err := c.ParseImage(context.Background(), "data:image/jpeg;base64,Zm9v")
	require.NoError(t, err)
	assert.Equal(t, "Duke Energy\nAmount Due: $125.50", res.Text)
	require.NotNil(t, res.Overlay)
	require.Len(t, res.Overlay.Lines, 1)
	assert.Equal(t, "Duke", res.Overlay.Lines[0].Words[0].WordText)
}

func TestParseImageProcessingError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"IsErroredOnProcessing": true, "ErrorMessage": ["image unreadable"]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", Endpoint: srv.URL}, nil)
	_, err := c.ParseImage(context.Background(), "Zm9v")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image unreadable")
}

func TestParseImageNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", Endpoint: srv.URL}, nil)
	_, err := c.ParseImage(context.Background(), "Zm9v")
	require.Error(t, err)
}

func TestParseImageEmptyInput(t *testing.T) {
	c := NewClient(Config{APIKey: "k"}, nil)
	_, err := c.ParseImage(context.Background(), "   ")
	require.Error(t, err)
}
