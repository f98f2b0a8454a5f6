package domain

import "time"

type Poll struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	OwnerID   int64     `json:"owner_id"`
	Options   []Option  `json:"options"`
	CreatedAt time.Time `json:"created_at"`
}

// Option order is creation order; the store assigns ids in insertion
// order so ordering by id reproduces it.
type Option struct {
	ID     int64  `json:"id"`
	PollID int64  `json:"poll_id"`
	Text   string `json:"text"`
}
