package router

import (
	"customer-support/internal/conversation"
	"customer-support/internal/responder"
)

// Config holds the routing thresholds.
type Config struct {
	// MinScore is the score a responder must exceed to be eligible.
	MinScore float64
}

// RouterOutput is the routing decision for one message.
type RouterOutput struct {
	Winner    responder.Responder
	Scores    []conversation.ScoreEntry // ordered by priority rank
	Reasoning string
}

// WinnerID returns the winning responder id, or "" when there is none.
func (o RouterOutput) WinnerID() conversation.ResponderID {
	if o.Winner == nil {
		return ""
	}
	return o.Winner.Descriptor().ID
}
