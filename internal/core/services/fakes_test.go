package services

import (
	"context"
	"sync"
	"time"

	"github.com/pollyapp/polly/internal/core/domain"
)

// memStore backs the service tests with referential-integrity-faithful
// in-memory implementations of all repository ports.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
	polls  map[int64]*domain.Poll
	votes  map[int64]*domain.Vote
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[int64]*domain.User),
		polls: make(map[int64]*domain.Poll),
		votes: make(map[int64]*domain.Vote),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

// PollRepository

func (m *memStore) Save(_ context.Context, poll *domain.Poll) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	poll.ID = m.id()
	poll.CreatedAt = time.Now()
	for i := range poll.Options {
		poll.Options[i].ID = m.id()
		poll.Options[i].PollID = poll.ID
	}

	stored := *poll
	stored.Options = append([]domain.Option(nil), poll.Options...)
	m.polls[poll.ID] = &stored
	return nil
}

func (m *memStore) GetByID(_ context.Context, id int64) (*domain.Poll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	poll, ok := m.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	out := *poll
	out.Options = append([]domain.Option(nil), poll.Options...)
	return &out, nil
}

func (m *memStore) List(_ context.Context, limit, offset int) ([]*domain.Poll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ids []int64
	for id := range m.polls {
		ids = append(ids, id)
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ids[j] < ids[i] {
				ids[i], ids[j] = ids[j], ids[i]
			}
		}
	}

	var polls []*domain.Poll
	for i := offset; i < len(ids) && len(polls) < limit; i++ {
		poll := m.polls[ids[i]]
		out := *poll
		out.Options = append([]domain.Option(nil), poll.Options...)
		polls = append(polls, &out)
	}
	return polls, nil
}

func (m *memStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	poll, ok := m.polls[id]
	if !ok {
		return domain.ErrPollNotFound
	}
	for voteID, vote := range m.votes {
		for _, opt := range poll.Options {
			if vote.OptionID == opt.ID {
				delete(m.votes, voteID)
				break
			}
		}
	}
	delete(m.polls, id)
	return nil
}

// VoteRepository

func (m *memStore) SaveVote(_ context.Context, vote *domain.Vote) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Mirrors the FK constraint on votes.option_id.
	if m.findOptionLocked(vote.OptionID) == nil {
		return domain.ErrOptionNotFound
	}

	vote.ID = m.id()
	vote.CreatedAt = time.Now()
	stored := *vote
	m.votes[vote.ID] = &stored
	return nil
}

// ResultRepository

func (m *memStore) CountVotesByOption(_ context.Context, pollID int64) ([]domain.OptionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	poll, ok := m.polls[pollID]
	if !ok {
		return nil, nil
	}

	var results []domain.OptionResult
	for _, opt := range poll.Options {
		var count int64
		for _, vote := range m.votes {
			if vote.OptionID == opt.ID {
				count++
			}
		}
		results = append(results, domain.OptionResult{
			OptionID:  opt.ID,
			Text:      opt.Text,
			VoteCount: count,
		})
	}
	return results, nil
}

// UserRepository

func (m *memStore) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}

	user.ID = m.id()
	user.CreatedAt = time.Now()
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *memStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Username == username {
			out := *user
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memStore) findOptionLocked(optionID int64) *domain.Option {
	for _, poll := range m.polls {
		for i := range poll.Options {
			if poll.Options[i].ID == optionID {
				return &poll.Options[i]
			}
		}
	}
	return nil
}

func (m *memStore) voteCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.votes)
}
