package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support/internal/conversation"
	"customer-support/internal/conversation/normalizer"
	"customer-support/internal/responder"
)

func TestHandleTurn_RefundScenario(t *testing.T) {
	f := newFixture(10)
	ctx := context.Background()

	first := f.uc.HandleTurn(ctx, "s1", "Process a refund")
	assert.Equal(t, conversation.ResponderRefund, first.RespondingAgentID)
	assert.Equal(t, conversation.RouteScoring, first.Route)
	require.NotNil(t, first.DeclaredPendingSlot)

	c, err := f.uc.History(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, c.PendingSlot)
	assert.Equal(t, conversation.ResponderRefund, c.PendingSlot.Owner)
	assert.Equal(t, conversation.SlotOrderID, c.PendingSlot.Name)
	assert.Equal(t, 1, c.PendingSlot.PromptedAtTurn)

	second := f.uc.HandleTurn(ctx, "s1", "12345")
	assert.Equal(t, conversation.ResponderRefund, second.RespondingAgentID)
	assert.Equal(t, conversation.RoutePendingSlot, second.Route)
	assert.Equal(t, responder.CategoryRefundProcessed, second.Category)
	assert.Equal(t, "txn-fixed", second.TransactionID)
	assert.Contains(t, second.Text, "txn-fixed")

	c, err = f.uc.History(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, c.PendingSlot)
	assert.Equal(t, 2, c.TurnCount)
	assert.Len(t, c.History, 2)
	assert.Equal(t, conversation.ResponderRefund, c.LastResponderID)
	assert.Equal(t, 1, f.txlog.count)
}

func TestHandleTurn_SecondRefundIsRejected(t *testing.T) {
	f := newFixture(10)
	ctx := context.Background()

	first := f.uc.HandleTurn(ctx, "s1", "refund 12345")
	second := f.uc.HandleTurn(ctx, "s1", "refund 12345")
	other := f.uc.HandleTurn(ctx, "s2", "refund 12345")

	assert.Equal(t, responder.CategoryRefundProcessed, first.Category)
	assert.Equal(t, responder.CategoryRefundIneligible, second.Category)
	assert.Equal(t, responder.CategoryRefundIneligible, other.Category, "refund history is per order, not per session")
	assert.Equal(t, 1, f.txlog.count)
}

func TestHandleTurn_PendingSlotContinuation(t *testing.T) {
	f := newFixture(10)
	ctx := context.Background()

	// Without a pending slot a bare order number belongs to the order responder.
	explain := f.uc.Explain(ctx, "20010")
	require.Equal(t, conversation.ResponderOrder, explain.Winner)

	f.uc.HandleTurn(ctx, "s1", "I want a refund")
	reply := f.uc.HandleTurn(ctx, "s1", "20010")

	assert.Equal(t, conversation.ResponderRefund, reply.RespondingAgentID)
	assert.Equal(t, conversation.RoutePendingSlot, reply.Route)
	assert.Equal(t, responder.CategoryRefundProcessed, reply.Category)
}

func TestHandleTurn_RepromptUntilFilled(t *testing.T) {
	f := newFixture(10)
	ctx := context.Background()

	f.uc.HandleTurn(ctx, "s1", "refund please")
	for i := 0; i < 3; i++ {
		reply := f.uc.HandleTurn(ctx, "s1", "what do you need?")
		assert.Equal(t, conversation.ResponderRefund, reply.RespondingAgentID)
		assert.Equal(t, conversation.RoutePendingSlot, reply.Route)
		require.NotNil(t, reply.DeclaredPendingSlot)
	}

	c, err := f.uc.History(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, c.PendingSlot)
	assert.Equal(t, 4, c.PendingSlot.PromptedAtTurn)

	reply := f.uc.HandleTurn(ctx, "s1", "it's 12345")
	assert.Equal(t, responder.CategoryRefundProcessed, reply.Category)
}

func TestHandleTurn_SlotEscape(t *testing.T) {
	escapes := []string{"never mind", "Nevermind!", "forget it", "cancel that", "no thanks", "cancel", "STOP"}

	for _, text := range escapes {
		t.Run(text, func(t *testing.T) {
			f := newFixture(10)
			ctx := context.Background()

			f.uc.HandleTurn(ctx, "s1", "I need a refund")
			reply := f.uc.HandleTurn(ctx, "s1", text)
			assert.Equal(t, conversation.RouteScoring, reply.Route)
			assert.Nil(t, reply.DeclaredPendingSlot)

			c, err := f.uc.History(ctx, "s1")
			require.NoError(t, err)
			assert.Nil(t, c.PendingSlot)

			next := f.uc.HandleTurn(ctx, "s1", "12345")
			assert.Equal(t, conversation.ResponderOrder, next.RespondingAgentID)
			assert.Equal(t, conversation.RouteScoring, next.Route)
		})
	}
}

func TestHandleTurn_EscapeWordInsideSentence(t *testing.T) {
	f := newFixture(10)
	ctx := context.Background()

	f.uc.HandleTurn(ctx, "s1", "where is my order")
	reply := f.uc.HandleTurn(ctx, "s1", "stop the package")

	assert.Equal(t, conversation.ResponderOrder, reply.RespondingAgentID)
	assert.Equal(t, conversation.RoutePendingSlot, reply.Route)
}

func TestHandleTurn_HistoryBound(t *testing.T) {
	f := newFixture(3)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		f.uc.HandleTurn(ctx, "s1", fmt.Sprintf("hello %d", i))
	}

	c, err := f.uc.History(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, c.History, 3)
	assert.Equal(t, 7, c.TurnCount)
	assert.Equal(t, "hello 6", c.History[2].Message.Text)
	assert.Equal(t, "hello 4", c.History[0].Message.Text)
}

func TestHandleTurn_AtomicFailure(t *testing.T) {
	tests := []struct {
		name   string
		panics bool
	}{
		{"responder error", false},
		{"responder panic", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(10, &brokenResponder{panics: tt.panics})
			ctx := context.Background()

			f.uc.HandleTurn(ctx, "s1", "hello")
			before, err := f.uc.History(ctx, "s1")
			require.NoError(t, err)

			reply := f.uc.HandleTurn(ctx, "s1", "please explode")
			assert.Equal(t, conversation.RouteFailure, reply.Route)
			assert.Equal(t, conversation.ResponderCoordinator, reply.RespondingAgentID)
			assert.Equal(t, MsgServiceUnavailable, reply.Text)

			after, err := f.uc.History(ctx, "s1")
			require.NoError(t, err)
			if diff := cmp.Diff(before, after); diff != "" {
				t.Errorf("context changed after failed turn (-before +after):\n%s", diff)
			}
		})
	}
}

func TestHandleTurn_FailureKeepsEscapedSlot(t *testing.T) {
	f := newFixture(10, &brokenResponder{})
	ctx := context.Background()

	f.uc.HandleTurn(ctx, "s1", "refund")
	reply := f.uc.HandleTurn(ctx, "s1", "never mind, explode")
	require.Equal(t, conversation.RouteFailure, reply.Route)

	c, err := f.uc.History(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, c.PendingSlot)
	assert.Equal(t, conversation.ResponderRefund, c.PendingSlot.Owner)
}

func TestHandleTurn_Deterministic(t *testing.T) {
	script := []string{"hi", "where is my order", "11111", "refund 67890", "help", "purple elephants", "refund", "54321"}

	run := func() []conversation.Reply {
		f := newFixture(10)
		out := make([]conversation.Reply, 0, len(script))
		for _, text := range script {
			out = append(out, f.uc.HandleTurn(context.Background(), "s1", text))
		}
		return out
	}

	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("replies differ between identical runs:\n%s", diff)
	}
}

func TestHandleTurn_DefaultSession(t *testing.T) {
	f := newFixture(10)
	ctx := context.Background()

	f.uc.HandleTurn(ctx, "", "hello")

	c, err := f.uc.History(ctx, DefaultSessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, c.TurnCount)
}

func TestHandleTurn_SessionsAreIndependent(t *testing.T) {
	f := newFixture(10)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", i)
			f.uc.HandleTurn(ctx, id, "I need a refund")
			f.uc.HandleTurn(ctx, id, "11111")
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		c, err := f.uc.History(ctx, fmt.Sprintf("s%d", i))
		require.NoError(t, err)
		assert.Equal(t, 2, c.TurnCount)
		assert.Nil(t, c.PendingSlot)
		assert.Equal(t, conversation.ResponderRefund, c.LastResponderID)
	}
	assert.Equal(t, 20, f.txlog.count)
}

func TestHandleTurn_SlotOwnerResolvedThroughRouter(t *testing.T) {
	t.Run("unknown owner is dropped", func(t *testing.T) {
		f := newFixture(10)
		ctx := context.Background()

		l := f.store.Acquire("s1")
		l.Update(normalizer.Normalize("hi"), conversation.Reply{
			RespondingAgentID:   "RetiredAgent",
			DeclaredPendingSlot: &conversation.SlotDeclaration{Owner: "RetiredAgent", Name: conversation.SlotOrderID},
		})
		l.Release()

		reply := f.uc.HandleTurn(ctx, "s1", "12345")
		assert.Equal(t, conversation.ResponderOrder, reply.RespondingAgentID)
		assert.Equal(t, conversation.RouteScoring, reply.Route)
	})

	t.Run("extra responder owns its slot", func(t *testing.T) {
		f := newFixture(10, &brokenResponder{})
		ctx := context.Background()

		l := f.store.Acquire("s1")
		l.Update(normalizer.Normalize("hi"), conversation.Reply{
			RespondingAgentID:   "BrokenAgent",
			DeclaredPendingSlot: &conversation.SlotDeclaration{Owner: "BrokenAgent", Name: conversation.SlotOrderID},
		})
		l.Release()

		reply := f.uc.HandleTurn(ctx, "s1", "hello")
		assert.Equal(t, conversation.RouteFailure, reply.Route, "slot dispatch reached the registered owner")
	})
}
