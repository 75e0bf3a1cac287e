package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/readings/internal/core/model"
	"github.com/bornholm/readings/internal/core/port"
	"github.com/bornholm/readings/internal/core/service"
	"github.com/bornholm/readings/internal/log"
	"github.com/pkg/errors"
)

const maxRequestBodySize = 1 << 20

type GetReadingsRequest struct {
	Item *string `json:"item"`
}

func (h *Handler) handleGetReadings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req GetReadingsRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err := decoder.Decode(&req); err != nil {
		slog.ErrorContext(ctx, "could not decode request", slog.Any("error", errors.WithStack(err)))
		writeError(w, r, http.StatusUnprocessableEntity, "request body must be a json object with an 'item' string field")
		return
	}

	if req.Item == nil {
		writeError(w, r, http.StatusUnprocessableEntity, "missing 'item' field")
		return
	}

	item := model.ItemName(*req.Item)

	ctx = log.WithAttrs(ctx, slog.String("item", string(item)))

	result, err := h.readingsManager.GetReadings(ctx, item)
	if err != nil {
		switch {
		case errors.Is(err, port.ErrNotFound):
			slog.WarnContext(ctx, "unknown item requested")
			writeError(w, r, http.StatusNotFound, "Invalid item: "+string(item))
		case errors.Is(err, service.ErrInvalidItem):
			writeError(w, r, http.StatusUnprocessableEntity, "'item' must not be empty")
		default:
			slog.ErrorContext(ctx, "could not retrieve readings", slog.Any("error", errors.WithStack(err)))
			writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	slog.DebugContext(ctx, "readings retrieved", slog.Int("count", result.Count))

	writeJSON(w, r, http.StatusOK, result)
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.readingsManager.Ping(ctx); err != nil {
		slog.ErrorContext(ctx, "could not reach store", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
