package ports

import (
	"context"

	"github.com/pollyapp/polly/internal/core/domain"
)

type PollRepository interface {
	// Save persists the poll and its options atomically, assigning ids
	// and the creation timestamp on the poll and every option.
	Save(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id int64) (*domain.Poll, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Poll, error)
	// Delete removes the poll with its options and votes in one
	// transaction, votes first.
	Delete(ctx context.Context, id int64) error
}

type CreatePollInput struct {
	Question string
	Options  []string
	OwnerID  int64
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*domain.Poll, error)
	GetPoll(ctx context.Context, id int64) (*domain.Poll, error)
	ListPolls(ctx context.Context, skip, limit int) ([]*domain.Poll, error)
	DeletePoll(ctx context.Context, id, requesterID int64) error
}
