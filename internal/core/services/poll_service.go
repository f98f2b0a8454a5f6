package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pollyapp/polly/internal/core/domain"
	"github.com/pollyapp/polly/internal/core/ports"
)

type pollService struct {
	repo ports.PollRepository
}

func NewPollService(repo ports.PollRepository) ports.PollService {
	return &pollService{
		repo: repo,
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	if strings.TrimSpace(input.Question) == "" {
		return nil, fmt.Errorf("%w: question is required", domain.ErrValidation)
	}
	if len(input.Options) < 2 {
		return nil, fmt.Errorf("%w: at least two options are required", domain.ErrValidation)
	}
	for _, text := range input.Options {
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("%w: option text must not be empty", domain.ErrValidation)
		}
	}

	poll := &domain.Poll{
		Question: input.Question,
		OwnerID:  input.OwnerID,
	}
	for _, text := range input.Options {
		poll.Options = append(poll.Options, domain.Option{Text: text})
	}

	if err := s.repo.Save(ctx, poll); err != nil {
		return nil, err
	}

	return poll, nil
}

func (s *pollService) GetPoll(ctx context.Context, id int64) (*domain.Poll, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *pollService) ListPolls(ctx context.Context, skip, limit int) ([]*domain.Poll, error) {
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip must not be negative", domain.ErrValidation)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrValidation)
	}

	return s.repo.List(ctx, limit, skip)
}

func (s *pollService) DeletePoll(ctx context.Context, id, requesterID int64) error {
	poll, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if poll.OwnerID != requesterID {
		return domain.ErrNotPollOwner
	}

	return s.repo.Delete(ctx, id)
}
