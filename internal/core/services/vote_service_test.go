package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollyapp/polly/internal/core/domain"
	"github.com/pollyapp/polly/internal/core/ports"
)

func createTestPoll(t *testing.T, svc ports.PollService, question string) *domain.Poll {
	t.Helper()
	poll, err := svc.Create(context.Background(), ports.CreatePollInput{
		Question: question,
		Options:  []string{"Red", "Blue"},
		OwnerID:  1,
	})
	require.NoError(t, err)
	return poll
}

func TestVote(t *testing.T) {
	store := newMemStore()
	pollSvc := NewPollService(store)
	voteSvc := NewVoteService(store, store)

	poll := createTestPoll(t, pollSvc, "Best color?")

	vote, err := voteSvc.Vote(context.Background(), ports.VoteInput{
		PollID:   poll.ID,
		OptionID: poll.Options[1].ID,
		VoterID:  5,
	})
	require.NoError(t, err)

	assert.NotZero(t, vote.ID)
	assert.Equal(t, int64(5), vote.UserID)
	assert.Equal(t, poll.Options[1].ID, vote.OptionID)
}

func TestVotePollNotFound(t *testing.T) {
	store := newMemStore()
	voteSvc := NewVoteService(store, store)

	_, err := voteSvc.Vote(context.Background(), ports.VoteInput{
		PollID:   12345,
		OptionID: 1,
		VoterID:  5,
	})
	assert.ErrorIs(t, err, domain.ErrPollNotFound)
	assert.Zero(t, store.voteCount())
}

func TestVoteOptionOfAnotherPoll(t *testing.T) {
	store := newMemStore()
	pollSvc := NewPollService(store)
	voteSvc := NewVoteService(store, store)

	pollA := createTestPoll(t, pollSvc, "Poll A")
	pollB := createTestPoll(t, pollSvc, "Poll B")

	// The option id exists, but under poll B.
	_, err := voteSvc.Vote(context.Background(), ports.VoteInput{
		PollID:   pollA.ID,
		OptionID: pollB.Options[0].ID,
		VoterID:  5,
	})
	require.ErrorIs(t, err, domain.ErrOptionNotFound)
	assert.Zero(t, store.voteCount(), "no vote row may be created")
}

func TestRepeatVotingAllowed(t *testing.T) {
	store := newMemStore()
	pollSvc := NewPollService(store)
	voteSvc := NewVoteService(store, store)

	poll := createTestPoll(t, pollSvc, "Best color?")

	// Same user, same option, twice: both votes count.
	for i := 0; i < 2; i++ {
		_, err := voteSvc.Vote(context.Background(), ports.VoteInput{
			PollID:   poll.ID,
			OptionID: poll.Options[0].ID,
			VoterID:  5,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 2, store.voteCount())
}
