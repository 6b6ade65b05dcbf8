package commerce

import "errors"

// Not-found errors are business outcomes and are rendered as replies, not failures.
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrRefundNotFound   = errors.New("refund not found")
)
