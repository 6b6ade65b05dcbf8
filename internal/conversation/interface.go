package conversation

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// HandleTurn routes one inbound message and always returns a Reply.
	HandleTurn(ctx context.Context, sessionID, rawText string) Reply

	// ClearConversation drops history and any pending slot of a session.
	ClearConversation(ctx context.Context, sessionID string) error

	// History returns the current state of a session.
	History(ctx context.Context, sessionID string) (Context, error)

	// Explain scores a message against every responder without touching any session.
	Explain(ctx context.Context, rawText string) ExplainOutput
}

// ContextStore holds conversation contexts keyed by session id.
type ContextStore interface {
	// Acquire returns exclusive access to a session, creating it on first use.
	Acquire(sessionID string) Lease

	// Snapshot reads a session without creating it.
	Snapshot(sessionID string) (Context, bool)
}

// Lease is exclusive access to one session's context. Release must be called exactly once.
type Lease interface {
	Context() Context
	Update(msg Message, reply Reply)
	Reset()
	Release()
}
