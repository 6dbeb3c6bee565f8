package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/motibot/motibot/internal/config"
	"github.com/motibot/motibot/internal/logger"
	"github.com/motibot/motibot/internal/service"
)

// Handler holds all HTTP handlers
type Handler struct {
	log         *logger.Logger
	cfg         *config.Config
	dispatchSvc *service.DispatchService
}

// New creates a new Handler instance
func New(log *logger.Logger, cfg *config.Config, dispatchSvc *service.DispatchService) *Handler {
	return &Handler{
		log:         log,
		cfg:         cfg,
		dispatchSvc: dispatchSvc,
	}
}

// JSON helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	})
}

func readJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
