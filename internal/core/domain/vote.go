package domain

import "time"

// A Vote is a fact record: never mutated, removed only when its poll is
// deleted. There is no uniqueness across (user, poll); the same user may
// vote any number of times.
type Vote struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	OptionID  int64     `json:"option_id"`
	CreatedAt time.Time `json:"created_at"`
}
