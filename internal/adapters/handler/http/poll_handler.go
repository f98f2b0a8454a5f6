package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pollyapp/polly/internal/core/domain"
	"github.com/pollyapp/polly/internal/core/ports"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
)

type PollHandler struct {
	service ports.PollService
}

func NewPollHandler(service ports.PollService) *PollHandler {
	return &PollHandler{
		service: service,
	}
}

type createPollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var req createPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.CreatePollInput{
		Question: req.Question,
		Options:  req.Options,
		OwnerID:  userID,
	}

	poll, err := h.service.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create poll", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, poll)
}

func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	id, err := pollIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid poll id")
		return
	}

	poll, err := h.service.GetPoll(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			writeError(w, http.StatusNotFound, "poll not found")
			return
		}
		slog.Error("failed to get poll", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, poll)
}

func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip", defaultSkip)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid skip parameter")
		return
	}
	limit, err := queryInt(r, "limit", defaultLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit parameter")
		return
	}

	polls, err := h.service.ListPolls(r.Context(), skip, limit)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to list polls", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if polls == nil {
		polls = []*domain.Poll{}
	}
	writeJSON(w, http.StatusOK, polls)
}

func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	id, err := pollIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid poll id")
		return
	}

	if err := h.service.DeletePoll(r.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrPollNotFound):
			writeError(w, http.StatusNotFound, "poll not found")
		case errors.Is(err, domain.ErrNotPollOwner):
			writeError(w, http.StatusForbidden, err.Error())
		default:
			slog.Error("failed to delete poll", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pollIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
