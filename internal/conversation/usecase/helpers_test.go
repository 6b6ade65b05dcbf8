package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"customer-support/internal/commerce"
	"customer-support/internal/commerce/repository"
	"customer-support/internal/commerce/repository/memory"
	"customer-support/internal/conversation"
	"customer-support/internal/conversation/session"
	"customer-support/internal/knowledge"
	"customer-support/internal/responder"
	"customer-support/internal/router"
	"customer-support/pkg/log"
)

var errBroken = errors.New("broken responder")

var testNow = time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

type mockTxLog struct {
	mu       sync.Mutex
	count    int
	refunded map[string]bool
}

func (m *mockTxLog) RecordRefund(_ context.Context, opt repository.RecordRefundOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count++
	if m.refunded == nil {
		m.refunded = make(map[string]bool)
	}
	m.refunded[opt.OrderID] = true
	return "txn-fixed", nil
}

func (m *mockTxLog) FindRefundByOrder(_ context.Context, orderID string) (commerce.RefundLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.refunded[orderID] {
		return commerce.RefundLog{}, commerce.ErrRefundNotFound
	}
	return commerce.RefundLog{TransactionID: "txn-fixed", OrderID: orderID, Status: commerce.RefundCompleted, CompletedAt: testNow}, nil
}

func (m *mockTxLog) GetRefund(context.Context, string) (commerce.RefundLog, error) {
	return commerce.RefundLog{}, commerce.ErrRefundNotFound
}

// brokenResponder outscores everything on the word "explode" and then fails.
type brokenResponder struct {
	panics bool
}

func (b *brokenResponder) Descriptor() responder.Descriptor {
	return responder.Descriptor{
		ID:             "BrokenAgent",
		PriorityRank:   0,
		KeywordWeights: map[string]float64{"explode": 4},
	}
}

func (b *brokenResponder) Score(msg conversation.Message, _ conversation.Context) float64 {
	return responder.Score(b.Descriptor(), msg)
}

func (b *brokenResponder) Respond(context.Context, conversation.Message, conversation.Context) (conversation.Reply, error) {
	if b.panics {
		panic("boom")
	}
	return conversation.Reply{}, errBroken
}

type fixture struct {
	uc    *implUseCase
	store *session.Store
	txlog *mockTxLog
}

func newFixture(maxHistory int, extra ...responder.Responder) fixture {
	l := log.NewNop()
	clock := func() time.Time { return testNow }
	repo := memory.New(l, clock)
	policy := commerce.NewPolicy(commerce.PolicyConfig{WindowDays: 30, ProcessingFee: 2.99, FeeThreshold: 50}, clock)
	txlog := &mockTxLog{}

	responders := []responder.Responder{
		responder.NewRefund(repo, policy, txlog, responder.RefundConfig{WindowDays: 30, ProcessingFee: 2.99, FeeThreshold: 50}, l),
		responder.NewOrder(repo, l),
		responder.NewSupport(knowledge.Default(), l),
		responder.NewFallback(l),
	}
	responders = append(responders, extra...)

	store := session.New(session.Config{MaxHistory: maxHistory})
	return fixture{
		uc:    New(l, store, responders, router.Config{MinScore: 0.1}),
		store: store,
		txlog: txlog,
	}
}
