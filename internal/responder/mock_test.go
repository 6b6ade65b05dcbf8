package responder_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"customer-support/internal/commerce"
	"customer-support/internal/commerce/repository"
	"customer-support/internal/commerce/repository/memory"
	"customer-support/pkg/log"
)

var errBackend = errors.New("backend unavailable")

var testNow = time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

type mockTxLog struct {
	mu      sync.Mutex
	records []repository.RecordRefundOptions
	err     error
	findErr error
}

func (m *mockTxLog) RecordRefund(_ context.Context, opt repository.RecordRefundOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.records = append(m.records, opt)
	return "txn-0001", nil
}

func (m *mockTxLog) GetRefund(context.Context, string) (commerce.RefundLog, error) {
	return commerce.RefundLog{}, commerce.ErrRefundNotFound
}

func (m *mockTxLog) FindRefundByOrder(_ context.Context, orderID string) (commerce.RefundLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return commerce.RefundLog{}, m.findErr
	}
	for _, rec := range m.records {
		if rec.OrderID == orderID {
			return commerce.RefundLog{
				TransactionID: "txn-0001",
				OrderID:       orderID,
				Amount:        rec.Amount,
				Status:        commerce.RefundCompleted,
				CompletedAt:   testNow,
			}, nil
		}
	}
	return commerce.RefundLog{}, commerce.ErrRefundNotFound
}

type failingRepo struct{}

func (failingRepo) FindOrder(context.Context, string) (commerce.Order, error) {
	return commerce.Order{}, errBackend
}

func (failingRepo) FindCustomer(context.Context, string) (commerce.Customer, error) {
	return commerce.Customer{}, errBackend
}

// customerlessRepo serves seeded orders but fails every customer lookup.
type customerlessRepo struct {
	repository.OrderRepository
}

func (customerlessRepo) FindCustomer(context.Context, string) (commerce.Customer, error) {
	return commerce.Customer{}, errBackend
}

func seededRepo() repository.Repository {
	return memory.New(log.NewNop(), testClock)
}

func testPolicy() *commerce.Policy {
	return commerce.NewPolicy(commerce.PolicyConfig{
		WindowDays:    30,
		ProcessingFee: 2.99,
		FeeThreshold:  50,
	}, testClock)
}
