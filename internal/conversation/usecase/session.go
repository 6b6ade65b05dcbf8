package usecase

import (
	"context"
	"fmt"

	"customer-support/internal/conversation"
	"customer-support/internal/conversation/normalizer"
)

func (uc *implUseCase) ClearConversation(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return conversation.ErrEmptySessionID
	}
	if _, ok := uc.store.Snapshot(sessionID); !ok {
		return fmt.Errorf("%s: %s: %w", LogPrefixClear, sessionID, conversation.ErrSessionNotFound)
	}

	lease := uc.store.Acquire(sessionID)
	defer lease.Release()
	lease.Reset()

	uc.l.Infof(ctx, "%s: session %s cleared", LogPrefixClear, sessionID)
	return nil
}

func (uc *implUseCase) History(ctx context.Context, sessionID string) (conversation.Context, error) {
	if sessionID == "" {
		return conversation.Context{}, conversation.ErrEmptySessionID
	}
	c, ok := uc.store.Snapshot(sessionID)
	if !ok {
		uc.l.Debugf(ctx, "%s: session %s not found", LogPrefixHistory, sessionID)
		return conversation.Context{}, fmt.Errorf("%s: %s: %w", LogPrefixHistory, sessionID, conversation.ErrSessionNotFound)
	}
	return c, nil
}

// Explain shows how rawText would be routed in a fresh session.
func (uc *implUseCase) Explain(ctx context.Context, rawText string) conversation.ExplainOutput {
	msg := normalizer.Normalize(rawText)
	out := uc.router.Classify(ctx, msg, conversation.Context{})
	return conversation.ExplainOutput{
		Message:   msg,
		Scores:    out.Scores,
		Winner:    out.WinnerID(),
		Reasoning: out.Reasoning,
	}
}
