package services

import (
	"context"

	"github.com/pollyapp/polly/internal/core/domain"
	"github.com/pollyapp/polly/internal/core/ports"
)

type voteService struct {
	pollRepo ports.PollRepository
	voteRepo ports.VoteRepository
}

func NewVoteService(pollRepo ports.PollRepository, voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		pollRepo: pollRepo,
		voteRepo: voteRepo,
	}
}

// Vote records that the voter picked the option. Repeat votes by the
// same user are accepted; the option must belong to the named poll even
// when the option id exists under some other poll.
func (s *voteService) Vote(ctx context.Context, input ports.VoteInput) (*domain.Vote, error) {
	poll, err := s.pollRepo.GetByID(ctx, input.PollID)
	if err != nil {
		return nil, err
	}

	validOption := false
	for _, opt := range poll.Options {
		if opt.ID == input.OptionID {
			validOption = true
			break
		}
	}
	if !validOption {
		return nil, domain.ErrOptionNotFound
	}

	vote := &domain.Vote{
		UserID:   input.VoterID,
		OptionID: input.OptionID,
	}

	// A concurrent poll deletion may remove the option between the check
	// above and the insert; the repository surfaces that integrity
	// failure as ErrOptionNotFound.
	if err := s.voteRepo.SaveVote(ctx, vote); err != nil {
		return nil, err
	}

	return vote, nil
}
