package responder

import (
	"context"

	"customer-support/internal/conversation"
)

// Responder is one specialized handler the coordinator can route a turn to.
// Score must be pure and deterministic. Respond returns an error only when a
// collaborator fails; business outcomes such as "order not found" are replies.
type Responder interface {
	Descriptor() Descriptor
	Score(msg conversation.Message, c conversation.Context) float64
	Respond(ctx context.Context, msg conversation.Message, c conversation.Context) (conversation.Reply, error)
}

// Descriptor is the static routing profile of a responder.
// Lower PriorityRank wins ties. AlwaysEligible responders ignore the router's minimum score.
type Descriptor struct {
	ID             conversation.ResponderID
	PriorityRank   int
	KeywordWeights map[string]float64
	RequiredEntity conversation.EntityKind
	EntityBonus    float64
	AlwaysEligible bool
}
