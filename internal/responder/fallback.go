package responder

import (
	"context"

	"customer-support/internal/conversation"
	"customer-support/pkg/log"
)

type fallbackResponder struct {
	l log.Logger
}

var _ Responder = (*fallbackResponder)(nil)

// NewFallback creates the responder that handles greetings and anything unroutable.
func NewFallback(l log.Logger) Responder {
	return &fallbackResponder{l: l}
}

func (r *fallbackResponder) Descriptor() Descriptor {
	return Descriptor{
		ID:             conversation.ResponderFallback,
		PriorityRank:   RankFallback,
		AlwaysEligible: true,
	}
}

func (r *fallbackResponder) Score(conversation.Message, conversation.Context) float64 {
	return FallbackScore
}

func (r *fallbackResponder) Respond(ctx context.Context, msg conversation.Message, _ conversation.Context) (conversation.Reply, error) {
	reply := conversation.Reply{
		Suggestions:       fallbackSuggestions,
		RespondingAgentID: conversation.ResponderFallback,
	}

	if ContainsAny(msg.Tokens, greetingKeywords...) {
		reply.Text = msgGreeting
		reply.Category = CategoryGreeting
		return reply, nil
	}

	r.l.Infof(ctx, "%s: unroutable message %q", LogPrefixFallback, msg.Text)
	reply.Text = msgUnknown
	reply.Category = CategoryUnknown
	return reply, nil
}
