package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pollyapp/polly/internal/core/domain"
	"github.com/pollyapp/polly/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type voteRequest struct {
	OptionID int64 `json:"option_id"`
}

func (h *VoteHandler) VoteOnPoll(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	pollID, err := pollIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid poll id")
		return
	}

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := ports.VoteInput{
		PollID:   pollID,
		OptionID: req.OptionID,
		VoterID:  userID,
	}

	vote, err := h.service.Vote(r.Context(), input)
	if err != nil {
		// An option belonging to a different poll is indistinguishable
		// from a missing one at this boundary.
		if errors.Is(err, domain.ErrPollNotFound) || errors.Is(err, domain.ErrOptionNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		slog.Error("failed to save vote", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, vote)
}
