package services

import (
	"context"

	"github.com/pollyapp/polly/internal/core/domain"
	"github.com/pollyapp/polly/internal/core/ports"
)

type resultService struct {
	pollRepo   ports.PollRepository
	resultRepo ports.ResultRepository
}

func NewResultService(pollRepo ports.PollRepository, resultRepo ports.ResultRepository) ports.ResultService {
	return &resultService{
		pollRepo:   pollRepo,
		resultRepo: resultRepo,
	}
}

// Results is a pure read: counts are computed from the votes stored at
// call time, one entry per option in creation order, zero-vote options
// included.
func (s *resultService) Results(ctx context.Context, pollID int64) (*domain.PollResults, error) {
	poll, err := s.pollRepo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}

	counts, err := s.resultRepo.CountVotesByOption(ctx, pollID)
	if err != nil {
		return nil, err
	}

	return &domain.PollResults{
		PollID:   poll.ID,
		Question: poll.Question,
		Results:  counts,
	}, nil
}
