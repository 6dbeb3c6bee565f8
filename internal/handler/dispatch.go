package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/motibot/motibot/internal/email"
	"github.com/motibot/motibot/internal/quote"
	"github.com/motibot/motibot/internal/service"
)

// DispatchRequest is the trigger payload. The single optional field
// overrides the configured recipient list for this invocation.
type DispatchRequest struct {
	ToEmail string `json:"to_email"`
}

// DispatchResponse reports a successful (possibly partial) broadcast.
type DispatchResponse struct {
	Status string `json:"status"`
	SentTo string `json:"sent_to"`
	Quote  string `json:"quote"`
}

// Dispatch handles POST /api/v1/dispatch
// Generates a quote and emails it to the resolved recipients.
func (h *Handler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req DispatchRequest
	if err := readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	result, err := h.dispatchSvc.Dispatch(r.Context(), req.ToEmail)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoRecipient):
			writeError(w, http.StatusBadRequest, "no_recipient",
				"No recipient email found. Provide to_email in the request or configure recipients.")
		case errors.Is(err, quote.ErrMissingAPIKey), errors.Is(err, email.ErrMissingCredentials):
			h.log.Error().Err(err).Msg("dispatch rejected: missing credentials")
			writeError(w, http.StatusInternalServerError, "configuration_error", "Service credentials are not configured")
		case errors.Is(err, quote.ErrTimeout), errors.Is(err, quote.ErrUpstream), errors.Is(err, quote.ErrMalformedResponse):
			h.log.Error().Err(err).Msg("quote generation failed")
			writeError(w, http.StatusBadGateway, "quote_generation_failed", "Failed to generate quote")
		case errors.Is(err, service.ErrAllDeliveriesFailed):
			h.log.Error().Err(err).Msg("all deliveries failed")
			writeError(w, http.StatusInternalServerError, "delivery_failed", "Failed to send email to any recipient")
		default:
			h.log.Error().Err(err).Msg("dispatch failed")
			writeError(w, http.StatusInternalServerError, "internal_error", "Failed to send email")
		}
		return
	}

	writeJSON(w, http.StatusOK, DispatchResponse{
		Status: "ok",
		SentTo: strings.Join(result.Delivered(), ","),
		Quote:  result.Quote,
	})
}
