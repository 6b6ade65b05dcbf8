package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"customer-support/internal/commerce"
	repo "customer-support/internal/commerce/repository"
)

// RecordRefund writes the refund in two steps: an initiated row, then the completed
// row with its transaction id. A failed second step leaves the initiated row behind.
func (r *implRepository) RecordRefund(ctx context.Context, opt repo.RecordRefundOptions) (string, error) {
	const insert = `
		INSERT INTO refund_logs (log_id, order_id, amount, fee, reason, method, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	logID := uuid.NewString()
	createdAt := r.now().UTC()
	if _, err := r.db.ExecContext(ctx, insert,
		logID, opt.OrderID, opt.Amount, opt.Fee, opt.Reason, opt.Method,
		string(commerce.RefundInitiated), formatTime(createdAt),
	); err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("RecordRefund"), err)
		return "", repo.ErrFailedToInsert
	}

	const complete = `
		UPDATE refund_logs SET status = ?, transaction_id = ?, completed_at = ?
		WHERE log_id = ?`

	txnID := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, complete,
		string(commerce.RefundCompleted), txnID, formatTime(r.now().UTC()), logID,
	); err != nil {
		r.l.Errorf(ctx, "%s complete %s: %v", r.dsn("RecordRefund"), logID, err)
		return "", repo.ErrFailedToUpdate
	}

	r.l.Infof(ctx, "%s: order %s refunded %.2f, transaction %s", r.dsn("RecordRefund"), opt.OrderID, opt.Amount, txnID)
	return txnID, nil
}

const selectRefund = `
	SELECT log_id, transaction_id, order_id, amount, fee, reason, method, status, created_at, completed_at
	FROM refund_logs`

// GetRefund returns commerce.ErrRefundNotFound for unknown transaction ids.
func (r *implRepository) GetRefund(ctx context.Context, transactionID string) (commerce.RefundLog, error) {
	row := r.db.QueryRowContext(ctx, selectRefund+` WHERE transaction_id = ? LIMIT 1`, transactionID)
	return r.scanRefund(ctx, "GetRefund", row)
}

// FindRefundByOrder only considers completed rows; an initiated row left by a
// failed second step does not block a retry.
func (r *implRepository) FindRefundByOrder(ctx context.Context, orderID string) (commerce.RefundLog, error) {
	row := r.db.QueryRowContext(ctx,
		selectRefund+` WHERE order_id = ? AND status = ? ORDER BY completed_at DESC LIMIT 1`,
		orderID, string(commerce.RefundCompleted))
	return r.scanRefund(ctx, "FindRefundByOrder", row)
}

func (r *implRepository) scanRefund(ctx context.Context, method string, row *sql.Row) (commerce.RefundLog, error) {
	var (
		out         commerce.RefundLog
		status      string
		txnID       sql.NullString
		createdAt   string
		completedAt sql.NullString
	)
	err := row.Scan(
		&out.LogID, &txnID, &out.OrderID, &out.Amount, &out.Fee,
		&out.Reason, &out.Method, &status, &createdAt, &completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return commerce.RefundLog{}, commerce.ErrRefundNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return commerce.RefundLog{}, repo.ErrFailedToGet
	}

	out.TransactionID = txnID.String
	out.Status = commerce.RefundLogStatus(status)
	out.CreatedAt = parseTime(createdAt)
	if completedAt.Valid {
		out.CompletedAt = parseTime(completedAt.String)
	}
	return out, nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
