package repository

// RecordRefundOptions holds the refund to write to the transaction log.
type RecordRefundOptions struct {
	OrderID string
	Amount  float64
	Fee     float64
	Reason  string
	Method  string
}
