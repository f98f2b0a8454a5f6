package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrPollNotFound       = errors.New("poll not found")
	ErrOptionNotFound     = errors.New("option does not belong to this poll")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotPollOwner       = errors.New("only the poll owner may delete it")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
