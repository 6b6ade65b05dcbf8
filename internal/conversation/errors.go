package conversation

import "errors"

var (
	ErrEmptySessionID  = errors.New("session id is empty")
	ErrEmptyMessage    = errors.New("message text is empty")
	ErrSessionNotFound = errors.New("session not found")
	ErrResponderPanic  = errors.New("responder panicked")
)
