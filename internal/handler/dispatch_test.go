package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motibot/motibot/internal/config"
	"github.com/motibot/motibot/internal/email"
	"github.com/motibot/motibot/internal/logger"
	"github.com/motibot/motibot/internal/quote"
	"github.com/motibot/motibot/internal/service"
)

type stubGenerator struct {
	quote string
	err   error
}

func (s *stubGenerator) Generate(ctx context.Context) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.quote, nil
}

type stubSender struct {
	err  error
	sent []string
}

func (s *stubSender) Send(ctx context.Context, msg email.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg.To)
	return nil
}

func newTestHandler(gen quote.Generator, sender email.Sender, recipients string) *Handler {
	cfg := &config.Config{}
	cfg.Email.SenderName = "Mehdi"
	cfg.Email.Recipients = recipients

	log := logger.New("disabled", "json")
	svc := service.NewDispatchService(gen, sender, cfg, log)
	return New(log, cfg, svc)
}

func postDispatch(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Dispatch(rec, req)
	return rec
}

func TestDispatchHandlerOverride(t *testing.T) {
	sender := &stubSender{}
	h := newTestHandler(&stubGenerator{quote: "Tu es capable. — Jobs"}, sender, "b@x.com")

	rec := postDispatch(t, h, `{"to_email":"a@x.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "a@x.com", resp.SentTo)
	assert.Equal(t, "Tu es capable. — Jobs", resp.Quote)
	assert.Equal(t, []string{"a@x.com"}, sender.sent)
}

func TestDispatchHandlerMultipleRecipients(t *testing.T) {
	sender := &stubSender{}
	h := newTestHandler(&stubGenerator{quote: "Fonce. — Mandela"}, sender, "b@x.com,c@x.com")

	rec := postDispatch(t, h, `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "b@x.com,c@x.com", resp.SentTo)
}

func TestDispatchHandlerEmptyBody(t *testing.T) {
	sender := &stubSender{}
	h := newTestHandler(&stubGenerator{quote: "Fonce. — Mandela"}, sender, "b@x.com")

	// A trigger without a body is a valid "no override" request.
	rec := postDispatch(t, h, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDispatchHandlerNoRecipient(t *testing.T) {
	gen := &stubGenerator{err: errors.New("must not be called")}
	h := newTestHandler(gen, &stubSender{}, "")

	rec := postDispatch(t, h, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no_recipient")
}

func TestDispatchHandlerUpstreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		genErr     error
		wantStatus int
		wantCode   string
	}{
		{name: "timeout", genErr: quote.ErrTimeout, wantStatus: http.StatusBadGateway, wantCode: "quote_generation_failed"},
		{name: "upstream failure", genErr: quote.ErrUpstream, wantStatus: http.StatusBadGateway, wantCode: "quote_generation_failed"},
		{name: "malformed payload", genErr: quote.ErrMalformedResponse, wantStatus: http.StatusBadGateway, wantCode: "quote_generation_failed"},
		{name: "missing API key", genErr: quote.ErrMissingAPIKey, wantStatus: http.StatusInternalServerError, wantCode: "configuration_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &stubSender{}
			h := newTestHandler(&stubGenerator{err: tt.genErr}, sender, "b@x.com")

			rec := postDispatch(t, h, `{}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.Empty(t, sender.sent)
		})
	}
}

func TestDispatchHandlerAllDeliveriesFailed(t *testing.T) {
	sender := &stubSender{err: errors.New("smtp: authentication failed")}
	h := newTestHandler(&stubGenerator{quote: "Fonce. — Mandela"}, sender, "b@x.com,c@x.com")

	rec := postDispatch(t, h, `{}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "delivery_failed")
}

func TestDispatchHandlerMissingSMTPCredentials(t *testing.T) {
	sender := &stubSender{err: email.ErrMissingCredentials}
	h := newTestHandler(&stubGenerator{quote: "Fonce. — Mandela"}, sender, "b@x.com")

	rec := postDispatch(t, h, `{}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "delivery_failed")
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&stubGenerator{}, &stubSender{}, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}
