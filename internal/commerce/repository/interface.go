package repository

import (
	"context"

	"customer-support/internal/commerce"
)

// Repository is the composed read interface over orders and customers.
type Repository interface {
	OrderRepository
	CustomerRepository
}

// OrderRepository looks up orders. Unknown ids return commerce.ErrOrderNotFound.
type OrderRepository interface {
	FindOrder(ctx context.Context, orderID string) (commerce.Order, error)
}

// CustomerRepository looks up customers. Unknown ids return commerce.ErrCustomerNotFound.
type CustomerRepository interface {
	FindCustomer(ctx context.Context, customerID string) (commerce.Customer, error)
}

// TransactionLog persists refund transactions.
type TransactionLog interface {
	RecordRefund(ctx context.Context, opt RecordRefundOptions) (string, error)
	GetRefund(ctx context.Context, transactionID string) (commerce.RefundLog, error)
	// FindRefundByOrder returns the latest completed refund of an order,
	// or commerce.ErrRefundNotFound when it has none.
	FindRefundByOrder(ctx context.Context, orderID string) (commerce.RefundLog, error)
}
