package router

import (
	"context"
	"strings"
	"testing"

	"customer-support/internal/conversation"
	"customer-support/internal/conversation/normalizer"
	"customer-support/internal/knowledge"
	"customer-support/internal/responder"
	"customer-support/pkg/log"
)

type fakeResponder struct {
	d     responder.Descriptor
	score float64
}

func (f *fakeResponder) Descriptor() responder.Descriptor { return f.d }
func (f *fakeResponder) Score(conversation.Message, conversation.Context) float64 {
	return f.score
}
func (f *fakeResponder) Respond(context.Context, conversation.Message, conversation.Context) (conversation.Reply, error) {
	return conversation.Reply{RespondingAgentID: f.d.ID}, nil
}

func fake(id conversation.ResponderID, rank int, score float64) *fakeResponder {
	return &fakeResponder{d: responder.Descriptor{ID: id, PriorityRank: rank}, score: score}
}

func fakeFallback(score float64) *fakeResponder {
	f := fake(conversation.ResponderFallback, 4, score)
	f.d.AlwaysEligible = true
	return f
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		responders []responder.Responder
		want       conversation.ResponderID
		reasoning  string
	}{
		{
			name: "highest score wins",
			responders: []responder.Responder{
				fake(conversation.ResponderRefund, 1, 0.3),
				fake(conversation.ResponderOrder, 2, 0.6),
				fakeFallback(0.05),
			},
			want:      conversation.ResponderOrder,
			reasoning: "scored",
		},
		{
			name: "tie goes to lower priority rank",
			responders: []responder.Responder{
				fake(conversation.ResponderOrder, 2, 0.5),
				fake(conversation.ResponderRefund, 1, 0.5),
				fakeFallback(0.05),
			},
			want:      conversation.ResponderRefund,
			reasoning: "tie",
		},
		{
			name: "scores within epsilon tie",
			responders: []responder.Responder{
				fake(conversation.ResponderRefund, 1, 0.5),
				fake(conversation.ResponderOrder, 2, 0.5+1e-12),
				fakeFallback(0.05),
			},
			want:      conversation.ResponderRefund,
			reasoning: "tie",
		},
		{
			name: "scores at the threshold are ineligible",
			responders: []responder.Responder{
				fake(conversation.ResponderRefund, 1, 0.1),
				fake(conversation.ResponderSupport, 3, 0.05),
				fakeFallback(0.05),
			},
			want:      conversation.ResponderFallback,
			reasoning: "scored",
		},
		{
			name: "nothing eligible falls back to priority",
			responders: []responder.Responder{
				fake(conversation.ResponderSupport, 3, 0),
				fake(conversation.ResponderOrder, 2, 0),
			},
			want:      conversation.ResponderOrder,
			reasoning: "no responder scored above",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.responders, Config{MinScore: 0.1}, log.NewNop())
			out := r.Classify(context.Background(), conversation.Message{}, conversation.Context{})

			if out.WinnerID() != tt.want {
				t.Errorf("expected winner %s, got %s", tt.want, out.WinnerID())
			}
			if !strings.Contains(out.Reasoning, tt.reasoning) {
				t.Errorf("expected reasoning to mention %q, got %q", tt.reasoning, out.Reasoning)
			}
			if len(out.Scores) != len(tt.responders) {
				t.Fatalf("expected %d score rows, got %d", len(tt.responders), len(out.Scores))
			}
			for i := 1; i < len(out.Scores); i++ {
				if out.Scores[i-1].PriorityRank > out.Scores[i].PriorityRank {
					t.Errorf("score rows not in priority order: %+v", out.Scores)
				}
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	l := log.NewNop()
	r := New(defaultResponders(l), Config{}, l)
	msg := normalizer.Normalize("refund my order, where is my package")

	first := r.Classify(context.Background(), msg, conversation.Context{})
	for i := 0; i < 100; i++ {
		out := r.Classify(context.Background(), msg, conversation.Context{})
		if out.WinnerID() != first.WinnerID() {
			t.Fatalf("run %d: winner changed from %s to %s", i, first.WinnerID(), out.WinnerID())
		}
		for j := range out.Scores {
			if out.Scores[j] != first.Scores[j] {
				t.Fatalf("run %d: score row %d changed", i, j)
			}
		}
	}
}

func TestClassify_Responders(t *testing.T) {
	l := log.NewNop()
	r := New(defaultResponders(l), Config{MinScore: 0.1}, l)

	tests := []struct {
		text string
		want conversation.ResponderID
	}{
		{"refund my order", conversation.ResponderRefund},
		{"I want my money back", conversation.ResponderRefund},
		{"charge back", conversation.ResponderRefund},
		{"where is my package", conversation.ResponderOrder},
		{"12345", conversation.ResponderOrder},
		{"when will my package arrive", conversation.ResponderOrder},
		{"what are your shipping options", conversation.ResponderSupport},
		{"help", conversation.ResponderSupport},
		{"hello", conversation.ResponderFallback},
		{"purple elephants", conversation.ResponderFallback},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			out := r.Classify(context.Background(), normalizer.Normalize(tt.text), conversation.Context{})
			if out.WinnerID() != tt.want {
				t.Errorf("expected %s, got %s (%s)", tt.want, out.WinnerID(), out.Reasoning)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	l := log.NewNop()
	r := New(defaultResponders(l), Config{}, l)

	if _, ok := r.Lookup(conversation.ResponderRefund); !ok {
		t.Error("expected refund responder")
	}
	if _, ok := r.Lookup(conversation.ResponderCoordinator); ok {
		t.Error("coordinator is not a responder")
	}
	if got, _ := r.Lookup(conversation.ResponderFallback); got == nil || got.Descriptor().PriorityRank != responder.RankFallback {
		t.Error("expected fallback responder")
	}
}

func defaultResponders(l log.Logger) []responder.Responder {
	return []responder.Responder{
		responder.NewFallback(l),
		responder.NewSupport(knowledge.Default(), l),
		responder.NewOrder(nil, l),
		responder.NewRefund(nil, nil, nil, responder.RefundConfig{}, l),
	}
}
