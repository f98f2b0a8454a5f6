package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pollyapp/polly/internal/core/domain"
	"github.com/pollyapp/polly/internal/core/ports"
)

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

// Save inserts the poll and all of its options in one transaction.
// Options are inserted in slice order so their serial ids preserve the
// caller-supplied order.
func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryPoll := `
		INSERT INTO polls (question, owner_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	if err := tx.QueryRowContext(ctx, queryPoll, poll.Question, poll.OwnerID).Scan(&poll.ID, &poll.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}

	queryOption := `
		INSERT INTO options (poll_id, text)
		VALUES ($1, $2)
		RETURNING id
	`
	stmt, err := tx.PrepareContext(ctx, queryOption)
	if err != nil {
		return fmt.Errorf("failed to prepare option statement: %w", err)
	}
	defer stmt.Close()

	for i := range poll.Options {
		poll.Options[i].PollID = poll.ID
		if err := stmt.QueryRowContext(ctx, poll.ID, poll.Options[i].Text).Scan(&poll.Options[i].ID); err != nil {
			return fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id int64) (*domain.Poll, error) {
	queryPoll := `
		SELECT id, question, owner_id, created_at
		FROM polls
		WHERE id = $1
	`

	var poll domain.Poll
	err := r.db.QueryRowContext(ctx, queryPoll, id).Scan(
		&poll.ID, &poll.Question, &poll.OwnerID, &poll.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}

	options, err := r.fetchOptions(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	poll.Options = options

	return &poll, nil
}

// List returns polls oldest first; a window past the end yields an
// empty result, not an error.
func (r *pollRepository) List(ctx context.Context, limit, offset int) ([]*domain.Poll, error) {
	query := `
		SELECT id, question, owner_id, created_at
		FROM polls
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	defer rows.Close()

	var polls []*domain.Poll
	for rows.Next() {
		var poll domain.Poll
		if err := rows.Scan(&poll.ID, &poll.Question, &poll.OwnerID, &poll.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}

		options, err := r.fetchOptions(ctx, poll.ID)
		if err != nil {
			return nil, err
		}
		poll.Options = options

		polls = append(polls, &poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polls: %w", err)
	}
	return polls, nil
}

// Delete removes the poll's votes, then its options, then the poll row,
// all inside one transaction. The schema's plain FK constraints make
// this the only ordering that can commit.
func (r *pollRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryVotes := `
		DELETE FROM votes
		WHERE option_id IN (SELECT id FROM options WHERE poll_id = $1)
	`
	if _, err := tx.ExecContext(ctx, queryVotes, id); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM options WHERE poll_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete options: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM polls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrPollNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *pollRepository) fetchOptions(ctx context.Context, pollID int64) ([]domain.Option, error) {
	queryOptions := `
		SELECT id, poll_id, text
		FROM options
		WHERE poll_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, queryOptions, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get poll options: %w", err)
	}
	defer rows.Close()

	var options []domain.Option
	for rows.Next() {
		var opt domain.Option
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating options: %w", err)
	}
	return options, nil
}
