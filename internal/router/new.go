package router

import (
	"context"
	"sort"

	"customer-support/internal/conversation"
	"customer-support/internal/responder"
	"customer-support/pkg/log"
)

// Router picks the responder for a message that is not continuing a pending slot,
// and resolves the owner of a slot that is.
type Router interface {
	Classify(ctx context.Context, msg conversation.Message, c conversation.Context) RouterOutput
	Lookup(id conversation.ResponderID) (responder.Responder, bool)
}

// ScoringRouter scores every responder and takes the best one.
type ScoringRouter struct {
	responders []responder.Responder
	byID       map[conversation.ResponderID]responder.Responder
	cfg        Config
	l          log.Logger
}

var _ Router = (*ScoringRouter)(nil)

// New creates a ScoringRouter over responders. The slice is copied and kept in priority order.
func New(responders []responder.Responder, cfg Config, l log.Logger) *ScoringRouter {
	if len(responders) == 0 {
		panic("router: at least one responder is required")
	}
	if cfg.MinScore <= 0 {
		cfg.MinScore = DefaultMinScore
	}

	rs := append([]responder.Responder(nil), responders...)
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].Descriptor().PriorityRank < rs[j].Descriptor().PriorityRank
	})

	byID := make(map[conversation.ResponderID]responder.Responder, len(rs))
	for _, r := range rs {
		byID[r.Descriptor().ID] = r
	}

	return &ScoringRouter{
		responders: rs,
		byID:       byID,
		cfg:        cfg,
		l:          l,
	}
}

// Lookup returns the responder with id.
func (r *ScoringRouter) Lookup(id conversation.ResponderID) (responder.Responder, bool) {
	rs, ok := r.byID[id]
	return rs, ok
}
