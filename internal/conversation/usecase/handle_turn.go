package usecase

import (
	"context"
	"fmt"
	"strings"

	"customer-support/internal/conversation"
	"customer-support/internal/conversation/normalizer"
	"customer-support/internal/responder"
)

// HandleTurn normalizes rawText, picks a responder and commits the turn.
// It never fails: a responder error or panic yields a generic failure reply
// and leaves the session untouched.
func (uc *implUseCase) HandleTurn(ctx context.Context, sessionID, rawText string) conversation.Reply {
	if sessionID == "" {
		sessionID = DefaultSessionID
	}
	msg := normalizer.Normalize(rawText)

	lease := uc.store.Acquire(sessionID)
	defer lease.Release()

	c := lease.Context()
	target, route := uc.selectResponder(ctx, msg, &c)
	id := target.Descriptor().ID

	reply, err := invoke(ctx, target, msg, c)
	if err != nil {
		uc.l.Errorf(ctx, "%s: session %s: %s failed: %v", LogPrefixHandleTurn, sessionID, id, err)
		return failureReply()
	}

	if reply.RespondingAgentID == "" {
		reply.RespondingAgentID = id
	}
	reply.Route = route
	lease.Update(msg, reply)

	uc.l.Infof(ctx, "%s: session %s turn %d routed to %s (%s)", LogPrefixHandleTurn, sessionID, c.TurnCount+1, id, route)
	return reply
}

// selectResponder applies the pending-slot rules before falling back to scoring.
// An escaped or orphaned slot is cleared on c so the responder sees a context without it.
func (uc *implUseCase) selectResponder(ctx context.Context, msg conversation.Message, c *conversation.Context) (responder.Responder, conversation.RouteReason) {
	if slot := c.PendingSlot; slot != nil {
		owner, ok := uc.router.Lookup(slot.Owner)
		switch {
		case !ok:
			uc.l.Warnf(ctx, "%s: dropping slot owned by unknown responder %s", LogPrefixHandleTurn, slot.Owner)
			c.PendingSlot = nil
		case msg.HasEntity(conversation.EntityKind(slot.Name)):
			return owner, conversation.RoutePendingSlot
		case isEscape(msg):
			uc.l.Debugf(ctx, "%s: slot %s/%s escaped", LogPrefixHandleTurn, slot.Owner, slot.Name)
			c.PendingSlot = nil
		default:
			return owner, conversation.RoutePendingSlot
		}
	}

	out := uc.router.Classify(ctx, msg, *c)
	return out.Winner, conversation.RouteScoring
}

func invoke(ctx context.Context, r responder.Responder, msg conversation.Message, c conversation.Context) (reply conversation.Reply, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", conversation.ErrResponderPanic, rec)
		}
	}()
	return r.Respond(ctx, msg, c)
}

func isEscape(msg conversation.Message) bool {
	if responder.ContainsAny(msg.Tokens, escapePhrases...) {
		return true
	}
	whole := strings.Join(msg.Tokens, " ")
	for _, m := range escapeMessages {
		if whole == m {
			return true
		}
	}
	return false
}

func failureReply() conversation.Reply {
	return conversation.Reply{
		Text:              MsgServiceUnavailable,
		RespondingAgentID: conversation.ResponderCoordinator,
		Category:          CategoryServiceUnavailable,
		Route:             conversation.RouteFailure,
	}
}
