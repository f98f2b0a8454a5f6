package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollyapp/polly/internal/core/domain"
	"github.com/pollyapp/polly/internal/core/ports"
)

func TestResultsZeroVotes(t *testing.T) {
	store := newMemStore()
	pollSvc := NewPollService(store)
	resultSvc := NewResultService(store, store)

	poll, err := pollSvc.Create(context.Background(), ports.CreatePollInput{
		Question: "Best color?",
		Options:  []string{"Red", "Blue", "Green"},
		OwnerID:  1,
	})
	require.NoError(t, err)

	results, err := resultSvc.Results(context.Background(), poll.ID)
	require.NoError(t, err)

	assert.Equal(t, poll.ID, results.PollID)
	assert.Equal(t, "Best color?", results.Question)
	require.Len(t, results.Results, 3)
	for i, text := range []string{"Red", "Blue", "Green"} {
		assert.Equal(t, text, results.Results[i].Text)
		assert.Equal(t, poll.Options[i].ID, results.Results[i].OptionID)
		assert.Zero(t, results.Results[i].VoteCount)
	}
}

func TestResultsCountVotes(t *testing.T) {
	store := newMemStore()
	pollSvc := NewPollService(store)
	voteSvc := NewVoteService(store, store)
	resultSvc := NewResultService(store, store)

	poll, err := pollSvc.Create(context.Background(), ports.CreatePollInput{
		Question: "Best color?",
		Options:  []string{"Red", "Blue"},
		OwnerID:  1,
	})
	require.NoError(t, err)

	// Two different users vote Red.
	for _, voterID := range []int64{10, 11} {
		_, err := voteSvc.Vote(context.Background(), ports.VoteInput{
			PollID:   poll.ID,
			OptionID: poll.Options[0].ID,
			VoterID:  voterID,
		})
		require.NoError(t, err)
	}

	results, err := resultSvc.Results(context.Background(), poll.ID)
	require.NoError(t, err)
	require.Len(t, results.Results, 2)
	assert.Equal(t, int64(2), results.Results[0].VoteCount)
	assert.Zero(t, results.Results[1].VoteCount)
}

func TestResultsIsolatedPerPoll(t *testing.T) {
	store := newMemStore()
	pollSvc := NewPollService(store)
	voteSvc := NewVoteService(store, store)
	resultSvc := NewResultService(store, store)

	pollA := createTestPoll(t, pollSvc, "Poll A")
	pollB := createTestPoll(t, pollSvc, "Poll B")

	_, err := voteSvc.Vote(context.Background(), ports.VoteInput{
		PollID:   pollA.ID,
		OptionID: pollA.Options[0].ID,
		VoterID:  5,
	})
	require.NoError(t, err)

	resultsB, err := resultSvc.Results(context.Background(), pollB.ID)
	require.NoError(t, err)
	for _, res := range resultsB.Results {
		assert.Zero(t, res.VoteCount, "votes on poll A must not change poll B")
	}
}

func TestResultsPollNotFound(t *testing.T) {
	store := newMemStore()
	resultSvc := NewResultService(store, store)

	_, err := resultSvc.Results(context.Background(), 12345)
	assert.ErrorIs(t, err, domain.ErrPollNotFound)
}
