package domain

type PollResults struct {
	PollID   int64          `json:"poll_id"`
	Question string         `json:"question"`
	Results  []OptionResult `json:"results"`
}

type OptionResult struct {
	OptionID  int64  `json:"option_id"`
	Text      string `json:"text"`
	VoteCount int64  `json:"vote_count"`
}
