package ports

import (
	"context"

	"github.com/pollyapp/polly/internal/core/domain"
)

type VoteRepository interface {
	SaveVote(ctx context.Context, vote *domain.Vote) error
}

type VoteInput struct {
	PollID   int64
	OptionID int64
	VoterID  int64
}

type VoteService interface {
	Vote(ctx context.Context, input VoteInput) (*domain.Vote, error)
}
