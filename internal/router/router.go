package router

import (
	"net/http"

	"github.com/motibot/motibot/internal/handler"
	"github.com/motibot/motibot/internal/middleware"
)

// New creates and configures the HTTP router
func New(h *handler.Handler, mw *middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no auth — inbound triggers are unauthenticated)
	mux.HandleFunc("GET /health", h.Health)

	// API banner
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"motibot API","version":"0.1.0"}`))
	})

	// Trigger endpoint
	mux.HandleFunc("POST /api/v1/dispatch", h.Dispatch)

	// Apply middleware stack
	var hdl http.Handler = mux

	// Request logging
	hdl = mw.Logger(hdl)

	// Request ID
	hdl = mw.RequestID(hdl)

	// Panic recovery (outermost)
	hdl = mw.Recover(hdl)

	return hdl
}
