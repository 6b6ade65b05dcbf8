package responder

import (
	"context"
	"fmt"

	"customer-support/internal/conversation"
	"customer-support/internal/knowledge"
	"customer-support/pkg/log"
)

type supportResponder struct {
	kb      *knowledge.Base
	weights map[string]float64
	l       log.Logger
}

var _ Responder = (*supportResponder)(nil)

// NewSupport creates the responder that answers from the knowledge base.
func NewSupport(kb *knowledge.Base, l log.Logger) Responder {
	weights := make(map[string]float64)
	for _, kw := range supportGeneralKeywords {
		weights[kw] = SupportGeneralWeight
	}
	for _, c := range knowledge.Categories() {
		for _, kw := range kb.Keywords(c) {
			weights[kw] = SupportCategoryWeight
		}
	}
	return &supportResponder{kb: kb, weights: weights, l: l}
}

func (r *supportResponder) Descriptor() Descriptor {
	return Descriptor{
		ID:             conversation.ResponderSupport,
		PriorityRank:   RankSupport,
		KeywordWeights: r.weights,
	}
}

func (r *supportResponder) Score(msg conversation.Message, _ conversation.Context) float64 {
	return Score(r.Descriptor(), msg)
}

func (r *supportResponder) Respond(ctx context.Context, msg conversation.Message, _ conversation.Context) (conversation.Reply, error) {
	category := r.classify(msg.Tokens)

	entry, err := r.kb.Lookup(category)
	if err != nil {
		r.l.Errorf(ctx, "%s: lookup %s: %v", LogPrefixSupport, category, err)
		return conversation.Reply{}, fmt.Errorf("%s: %w", LogPrefixSupport, err)
	}

	r.l.Debugf(ctx, "%s: matched category %s", LogPrefixSupport, category)
	return conversation.Reply{
		Text:              entry.Text,
		Suggestions:       entry.Suggestions,
		RespondingAgentID: conversation.ResponderSupport,
		Category:          string(category),
	}, nil
}

// classify returns the first category, in enumeration order, with a matching keyword.
func (r *supportResponder) classify(tokens []string) knowledge.Category {
	for _, c := range knowledge.Categories() {
		if ContainsAny(tokens, r.kb.Keywords(c)...) {
			return c
		}
	}
	return knowledge.CategoryGeneral
}
