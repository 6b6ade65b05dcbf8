package responder

import (
	"context"
	"errors"
	"fmt"

	"customer-support/internal/commerce"
	"customer-support/internal/commerce/repository"
	"customer-support/internal/conversation"
	"customer-support/pkg/log"
)

// RefundConfig supplies the figures quoted in the refund policy text.
type RefundConfig struct {
	WindowDays    int
	ProcessingFee float64
	FeeThreshold  float64
}

type refundResponder struct {
	orders repository.OrderRepository
	policy commerce.RefundEligibility
	txlog  repository.TransactionLog
	cfg    RefundConfig
	l      log.Logger
}

var _ Responder = (*refundResponder)(nil)

// NewRefund creates the responder that checks eligibility and records refunds.
func NewRefund(orders repository.OrderRepository, policy commerce.RefundEligibility, txlog repository.TransactionLog, cfg RefundConfig, l log.Logger) Responder {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = commerce.DefaultRefundWindowDays
	}
	return &refundResponder{orders: orders, policy: policy, txlog: txlog, cfg: cfg, l: l}
}

func (r *refundResponder) Descriptor() Descriptor {
	return Descriptor{
		ID:             conversation.ResponderRefund,
		PriorityRank:   RankRefund,
		KeywordWeights: refundKeywords,
		RequiredEntity: conversation.EntityOrderID,
		EntityBonus:    RefundEntityBonus,
	}
}

func (r *refundResponder) Score(msg conversation.Message, _ conversation.Context) float64 {
	return Score(r.Descriptor(), msg)
}

func (r *refundResponder) Respond(ctx context.Context, msg conversation.Message, c conversation.Context) (conversation.Reply, error) {
	orderID, ok := msg.Entity(conversation.EntityOrderID)
	if !ok {
		return r.askForOrder(), nil
	}

	order, err := r.orders.FindOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, commerce.ErrOrderNotFound) {
			reply := r.askForOrder()
			reply.Text = fmt.Sprintf(msgRefundNotFound, orderID)
			reply.Category = CategoryOrderNotFound
			return reply, nil
		}
		r.l.Errorf(ctx, "%s: find order %s: %v", LogPrefixRefund, orderID, err)
		return conversation.Reply{}, fmt.Errorf("%s: %w", LogPrefixRefund, err)
	}

	prior, err := r.txlog.FindRefundByOrder(ctx, order.ID)
	switch {
	case err == nil:
		r.l.Infof(ctx, "%s: order %s already refunded by %s", LogPrefixRefund, order.ID, prior.TransactionID)
		return conversation.Reply{
			Text: fmt.Sprintf(msgRefundAlreadyRefunded,
				order.ID, prior.Amount, prior.CompletedAt.Format(DateFormat), prior.TransactionID),
			Suggestions:       []string{"Contact information", "Check my order status"},
			RespondingAgentID: conversation.ResponderRefund,
			Category:          CategoryRefundIneligible,
			TransactionID:     prior.TransactionID,
		}, nil
	case !errors.Is(err, commerce.ErrRefundNotFound):
		r.l.Errorf(ctx, "%s: find refund for %s: %v", LogPrefixRefund, order.ID, err)
		return conversation.Reply{}, fmt.Errorf("%s: %w", LogPrefixRefund, err)
	}

	eligibility := r.policy.Evaluate(order)
	if !eligibility.Eligible {
		r.l.Infof(ctx, "%s: order %s not eligible: %s", LogPrefixRefund, order.ID, eligibility.Reason)
		return conversation.Reply{
			Text:              ineligibleText(order, eligibility),
			Suggestions:       []string{"Contact information", "Check my order status"},
			RespondingAgentID: conversation.ResponderRefund,
			Category:          CategoryRefundIneligible,
		}, nil
	}

	quote := r.policy.Quote(order)
	reason := refundReason(msg, c)

	txnID, err := r.txlog.RecordRefund(ctx, repository.RecordRefundOptions{
		OrderID: order.ID,
		Amount:  quote.Amount,
		Fee:     quote.Fee,
		Reason:  reason,
		Method:  RefundMethodOriginal,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: record refund for %s: %v", LogPrefixRefund, order.ID, err)
		return conversation.Reply{}, fmt.Errorf("%s: %w", LogPrefixRefund, err)
	}

	return conversation.Reply{
		Text: fmt.Sprintf(msgRefundProcessed,
			order.ID, quote.Original, quote.Fee, quote.Amount, txnID, reason, order.PaymentMethod),
		Suggestions:       []string{"Check my order status", "Contact information"},
		RespondingAgentID: conversation.ResponderRefund,
		Category:          CategoryRefundProcessed,
		TransactionID:     txnID,
	}, nil
}

func (r *refundResponder) askForOrder() conversation.Reply {
	return conversation.Reply{
		Text:        fmt.Sprintf(msgRefundPolicy, r.cfg.WindowDays, r.cfg.ProcessingFee, r.cfg.FeeThreshold),
		Suggestions: refundSuggestions,
		DeclaredPendingSlot: &conversation.SlotDeclaration{
			Owner: conversation.ResponderRefund,
			Name:  conversation.SlotOrderID,
		},
		RespondingAgentID: conversation.ResponderRefund,
		Category:          CategoryRefundRequest,
	}
}

func ineligibleText(order commerce.Order, e commerce.Eligibility) string {
	switch e.Reason {
	case commerce.ReasonOutsideWindow:
		return fmt.Sprintf(msgRefundOutsideWindow, order.ID, e.DaysSinceOrder, e.WindowDays)
	case commerce.ReasonAlreadyCancelled:
		return fmt.Sprintf(msgRefundCancelled, order.ID)
	case commerce.ReasonAlreadyRefunded:
		return fmt.Sprintf(msgRefundStatusRefunded, order.ID)
	case commerce.ReasonNotShipped:
		return fmt.Sprintf(msgRefundNotShipped, order.ID, order.Status)
	default:
		return fmt.Sprintf(msgRefundWrongStatus, order.ID, order.Status)
	}
}

// refundReason looks at the current message and then at every message since the
// refund prompt, newest first.
func refundReason(msg conversation.Message, c conversation.Context) string {
	if reason, ok := matchReason(msg.Tokens); ok {
		return reason
	}
	if c.PendingSlot == nil || c.PendingSlot.Owner != conversation.ResponderRefund {
		return defaultRefundReason
	}

	first := c.TurnCount - len(c.History) + 1
	for i := len(c.History) - 1; i >= 0; i-- {
		if first+i < c.PendingSlot.PromptedAtTurn {
			break
		}
		if reason, ok := matchReason(c.History[i].Message.Tokens); ok {
			return reason
		}
	}
	return defaultRefundReason
}

func matchReason(tokens []string) (string, bool) {
	for _, rule := range refundReasons {
		if ContainsAny(tokens, rule.phrases...) {
			return rule.reason, true
		}
	}
	return "", false
}
