package quote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motibot/motibot/internal/config"
	"github.com/motibot/motibot/internal/logger"
)

func testGenerator(apiURL, apiKey string) *GroqGenerator {
	cfg := config.GroqConfig{
		APIKey:      apiKey,
		APIURL:      apiURL,
		Model:       "llama-3.1-8b-instant",
		Temperature: 0.9,
		MaxTokens:   200,
	}
	return NewGroqGenerator(cfg, logger.New("disabled", "json"))
}

func completionResponse(content string) string {
	return `{"choices":[{"message":{"content":` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerateSuccess(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse(`"Tu es capable. — Jobs"`)))
	}))
	defer srv.Close()

	g := testGenerator(srv.URL, "gsk_test")
	got, err := g.Generate(context.Background())
	require.NoError(t, err)

	// Surrounding quotes are stripped before the text is returned.
	assert.Equal(t, "Tu es capable. — Jobs", got)

	assert.Equal(t, "Bearer gsk_test", gotAuth)
	assert.Equal(t, "llama-3.1-8b-instant", gotReq.Model)
	assert.Equal(t, 200, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
}

func TestGenerateMissingAPIKey(t *testing.T) {
	g := testGenerator("http://localhost:1", "")
	_, err := g.Generate(context.Background())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenerateUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := testGenerator(srv.URL, "gsk_test")
	_, err := g.Generate(context.Background())
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGenerateNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	g := testGenerator(srv.URL, "gsk_test")
	_, err := g.Generate(context.Background())
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGenerateMalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not JSON", body: "<html>oops</html>"},
		{name: "no choices", body: `{"choices":[]}`},
		{name: "empty content", body: completionResponse("  ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			g := testGenerator(srv.URL, "gsk_test")
			_, err := g.Generate(context.Background())
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestGenerateTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	g := testGenerator(srv.URL, "gsk_test")

	// The generator derives its own 30s bound from the caller's context, so
	// a tighter caller deadline stands in for a slow upstream.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := g.Generate(ctx)
	assert.ErrorIs(t, err, ErrTimeout)
}
