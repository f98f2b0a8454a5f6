package ports

import (
	"context"

	"github.com/pollyapp/polly/internal/core/domain"
)

type ResultRepository interface {
	// CountVotesByOption returns one row per option of the poll in
	// creation order, counting zero for options nobody voted on.
	CountVotesByOption(ctx context.Context, pollID int64) ([]domain.OptionResult, error)
}

type ResultService interface {
	Results(ctx context.Context, pollID int64) (*domain.PollResults, error)
}
