package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pollyapp/polly/internal/core/domain"
	"github.com/pollyapp/polly/internal/core/ports"
)

type ResultHandler struct {
	service ports.ResultService
}

func NewResultHandler(service ports.ResultService) *ResultHandler {
	return &ResultHandler{
		service: service,
	}
}

func (h *ResultHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID, err := pollIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid poll id")
		return
	}

	results, err := h.service.Results(r.Context(), pollID)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			writeError(w, http.StatusNotFound, "poll not found")
			return
		}
		slog.Error("failed to get results", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, results)
}
