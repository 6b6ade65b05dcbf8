package commerce

import (
	"math"
	"time"
)

// Refund policy defaults.
const (
	DefaultRefundWindowDays = 30
	DefaultProcessingFee    = 2.99
	DefaultFeeThreshold     = 50.00
)

// RefundEligibility decides whether an order may be refunded.
type RefundEligibility interface {
	Evaluate(order Order) Eligibility
	Quote(order Order) RefundQuote
}

// PolicyConfig holds the refund business rules.
type PolicyConfig struct {
	WindowDays    int
	ProcessingFee float64
	FeeThreshold  float64
}

// Policy is the rule-based RefundEligibility.
type Policy struct {
	cfg PolicyConfig
	now func() time.Time
}

var _ RefundEligibility = (*Policy)(nil)

// NewPolicy creates a Policy. A zero window falls back to the default.
func NewPolicy(cfg PolicyConfig, now func() time.Time) *Policy {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = DefaultRefundWindowDays
	}
	if now == nil {
		now = time.Now
	}
	return &Policy{cfg: cfg, now: now}
}

// Evaluate allows refunds only for shipped or delivered orders placed within the window.
func (p *Policy) Evaluate(order Order) Eligibility {
	days := int(p.now().Sub(order.OrderDate).Hours() / 24)
	out := Eligibility{DaysSinceOrder: days, WindowDays: p.cfg.WindowDays}

	switch order.Status {
	case StatusShipped, StatusDelivered:
		if days > p.cfg.WindowDays {
			out.Reason = ReasonOutsideWindow
			return out
		}
		out.Eligible = true
		out.Reason = ReasonEligible
	case StatusCancelled:
		out.Reason = ReasonAlreadyCancelled
	case StatusRefunded:
		out.Reason = ReasonAlreadyRefunded
	case StatusPending, StatusProcessing:
		out.Reason = ReasonNotShipped
	default:
		out.Reason = ReasonWrongStatus
	}
	return out
}

// Quote charges the processing fee only above the fee threshold.
func (p *Policy) Quote(order Order) RefundQuote {
	fee := 0.0
	if order.Total > p.cfg.FeeThreshold {
		fee = p.cfg.ProcessingFee
	}
	return RefundQuote{
		Original: order.Total,
		Fee:      fee,
		Amount:   roundCents(order.Total - fee),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
