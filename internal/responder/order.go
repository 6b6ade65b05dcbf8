package responder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"customer-support/internal/commerce"
	"customer-support/internal/commerce/repository"
	"customer-support/internal/conversation"
	"customer-support/pkg/log"
)

type orderResponder struct {
	repo repository.Repository
	l    log.Logger
}

var _ Responder = (*orderResponder)(nil)

// NewOrder creates the responder that reports order status and tracking.
func NewOrder(repo repository.Repository, l log.Logger) Responder {
	return &orderResponder{repo: repo, l: l}
}

func (r *orderResponder) Descriptor() Descriptor {
	return Descriptor{
		ID:             conversation.ResponderOrder,
		PriorityRank:   RankOrder,
		KeywordWeights: orderKeywords,
		RequiredEntity: conversation.EntityOrderID,
		EntityBonus:    OrderEntityBonus,
	}
}

func (r *orderResponder) Score(msg conversation.Message, _ conversation.Context) float64 {
	return Score(r.Descriptor(), msg)
}

func (r *orderResponder) Respond(ctx context.Context, msg conversation.Message, _ conversation.Context) (conversation.Reply, error) {
	orderID, ok := msg.Entity(conversation.EntityOrderID)
	if !ok {
		return r.askForOrder(msgOrderAsk, CategoryOrderRequest), nil
	}

	order, err := r.repo.FindOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, commerce.ErrOrderNotFound) {
			return r.askForOrder(fmt.Sprintf(msgOrderNotFound, orderID), CategoryOrderNotFound), nil
		}
		r.l.Errorf(ctx, "%s: find order %s: %v", LogPrefixOrder, orderID, err)
		return conversation.Reply{}, fmt.Errorf("%s: %w", LogPrefixOrder, err)
	}

	var customer *commerce.Customer
	cust, err := r.repo.FindCustomer(ctx, order.CustomerID)
	switch {
	case err == nil:
		customer = &cust
	case errors.Is(err, commerce.ErrCustomerNotFound):
		r.l.Warnf(ctx, "%s: order %s has unknown customer %s", LogPrefixOrder, order.ID, order.CustomerID)
	default:
		r.l.Errorf(ctx, "%s: find customer %s: %v", LogPrefixOrder, order.CustomerID, err)
		return conversation.Reply{}, fmt.Errorf("%s: %w", LogPrefixOrder, err)
	}

	return conversation.Reply{
		Text:              formatOrder(order, customer),
		Suggestions:       orderSuggestions,
		RespondingAgentID: conversation.ResponderOrder,
		Category:          CategoryOrderDetails,
	}, nil
}

func (r *orderResponder) askForOrder(text, category string) conversation.Reply {
	return conversation.Reply{
		Text: text,
		DeclaredPendingSlot: &conversation.SlotDeclaration{
			Owner: conversation.ResponderOrder,
			Name:  conversation.SlotOrderID,
		},
		RespondingAgentID: conversation.ResponderOrder,
		Category:          category,
	}
}

func formatOrder(o commerce.Order, c *commerce.Customer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order %s details\n\n", o.ID)
	if c != nil {
		fmt.Fprintf(&b, "Customer: %s\nEmail: %s\n", c.Name, c.Email)
	}

	b.WriteString("Items:\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "- %s (Qty: %d) - $%.2f", it.Name, it.Quantity, it.Price)
		if it.Brand != "" {
			fmt.Fprintf(&b, " by %s", it.Brand)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nSubtotal: $%.2f\nShipping: $%.2f\nTax: $%.2f\nDiscount: -$%.2f\nTotal: $%.2f\n\n",
		o.Subtotal(), o.ShippingCost, o.Tax, o.Discount, o.Total)

	fmt.Fprintf(&b, "Status: %s\nOrder date: %s\n", o.Status, o.OrderDate.Format(DateFormat))
	if o.PaymentMethod != "" {
		fmt.Fprintf(&b, "Payment: %s\n", o.PaymentMethod)
	}
	if o.ShippingAddress != "" {
		fmt.Fprintf(&b, "Shipping address: %s\n", o.ShippingAddress)
	}

	b.WriteString("\n")
	b.WriteString(statusInfo(o))
	return b.String()
}

func statusInfo(o commerce.Order) string {
	switch o.Status {
	case commerce.StatusPending:
		return msgStatusPending
	case commerce.StatusProcessing:
		return msgStatusProcessing
	case commerce.StatusShipped:
		var b strings.Builder
		b.WriteString(msgStatusShipped)
		if o.TrackingNumber != "" {
			fmt.Fprintf(&b, "\nTracking number: %s", o.TrackingNumber)
		}
		if !o.EstimatedDelivery.IsZero() {
			fmt.Fprintf(&b, "\nEstimated delivery: %s", o.EstimatedDelivery.Format(DateFormat))
		}
		return b.String()
	case commerce.StatusDelivered:
		var b strings.Builder
		b.WriteString(msgStatusDelivered)
		if !o.DeliveryDate.IsZero() {
			fmt.Fprintf(&b, "\nDelivered: %s", o.DeliveryDate.Format(DateFormat))
		}
		if o.DeliveryConfirmation != "" {
			fmt.Fprintf(&b, "\nLocation: %s", o.DeliveryConfirmation)
		}
		return b.String()
	case commerce.StatusCancelled:
		return msgStatusCancelled
	default:
		return fmt.Sprintf(msgStatusOther, o.Status)
	}
}
