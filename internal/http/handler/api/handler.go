package api

import (
	"net/http"

	"github.com/bornholm/readings/internal/core/service"
)

type Handler struct {
	readingsManager *service.ReadingsManager
	mux             *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(readingsManager *service.ReadingsManager) *Handler {
	h := &Handler{
		readingsManager: readingsManager,
		mux:             &http.ServeMux{},
	}

	h.mux.HandleFunc("POST /get-readings", h.handleGetReadings)
	h.mux.HandleFunc("GET /healthz", h.handleHealthz)

	return h
}

var _ http.Handler = &Handler{}
